package content

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/redirmap/pkg/errors"
)

const frontMatterDelimiter = "---"

// FrontMatter holds the metadata block at the top of a document file.
type FrontMatter struct {
	Title string `yaml:"title"`
	Slug  string `yaml:"slug"`
}

// ParseFrontMatter extracts the YAML metadata block from raw document
// content. Documents without a front matter block return an empty
// FrontMatter and no error; a malformed block is an error.
func ParseFrontMatter(raw []byte) (FrontMatter, error) {
	var fm FrontMatter

	content := strings.ReplaceAll(string(raw), "\r\n", "\n")
	if !strings.HasPrefix(content, frontMatterDelimiter+"\n") {
		return fm, nil
	}

	rest := content[len(frontMatterDelimiter)+1:]
	end := strings.Index(rest, "\n"+frontMatterDelimiter)
	if end < 0 {
		return fm, errors.New(errors.ErrInvalidInput, "unterminated front matter block")
	}

	if err := yaml.Unmarshal([]byte(rest[:end]), &fm); err != nil {
		return fm, errors.Wrap(err, errors.ErrInvalidInput, "cannot parse front matter")
	}
	return fm, nil
}
