package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/redirmap/pkg/content"
	"github.com/arthur-debert/redirmap/pkg/filesystem"
	"github.com/arthur-debert/redirmap/pkg/locales"
	"github.com/arthur-debert/redirmap/pkg/types"
)

// Corpus is an in-memory content root for tests: locale directories with
// documents and redirect tables, backed by an afero memory filesystem.
type Corpus struct {
	FS   types.FS
	Root string
}

// NewCorpus creates an empty corpus rooted at /content.
func NewCorpus(t *testing.T) *Corpus {
	t.Helper()
	return &Corpus{
		FS:   filesystem.NewMemory(),
		Root: "/content",
	}
}

// TablePath returns the redirect table path for a locale.
func (c *Corpus) TablePath(locale string) string {
	return filepath.Join(c.Root, locales.Dir(locale), "_redirects.txt")
}

// AddDocument creates a markdown document for the given locale and slug,
// with a front matter block declaring that slug.
func (c *Corpus) AddDocument(t *testing.T, locale, slug string) {
	t.Helper()
	c.AddDocumentWithSlug(t, locale, slug, slug)
}

// AddDocumentWithSlug creates a document whose front matter declares
// frontSlug, which may differ from the slug the folder is derived from.
func (c *Corpus) AddDocumentWithSlug(t *testing.T, locale, slug, frontSlug string) {
	t.Helper()

	dir := filepath.Join(c.Root, locales.Dir(locale), content.SlugToFolder(slug))
	body := "---\ntitle: " + frontSlug + "\nslug: " + frontSlug + "\n---\n\nSome content.\n"
	c.writeFile(t, filepath.Join(dir, "index.md"), body)
}

// AddHTMLDocument creates a document stored as index.html instead of
// index.md.
func (c *Corpus) AddHTMLDocument(t *testing.T, locale, slug string) {
	t.Helper()

	dir := filepath.Join(c.Root, locales.Dir(locale), content.SlugToFolder(slug))
	body := "---\ntitle: " + slug + "\nslug: " + slug + "\n---\n<p>Some content.</p>\n"
	c.writeFile(t, filepath.Join(dir, "index.html"), body)
}

// WriteTable writes a redirect table for a locale in canonical form.
func (c *Corpus) WriteTable(t *testing.T, locale string, pairs []types.Pair) {
	t.Helper()

	table := "# FROM-URL\tTO-URL\n"
	for _, p := range pairs {
		table += p.From + "\t" + p.To + "\n"
	}
	c.WriteRawTable(t, locale, table)
}

// WriteRawTable writes verbatim table content for a locale, useful for
// malformed or legacy fixtures.
func (c *Corpus) WriteRawTable(t *testing.T, locale, raw string) {
	t.Helper()
	c.writeFile(t, c.TablePath(locale), raw)
}

// ReadTable returns the raw table content for a locale.
func (c *Corpus) ReadTable(t *testing.T, locale string) string {
	t.Helper()

	raw, err := c.FS.ReadFile(c.TablePath(locale))
	AssertNoError(t, err, "reading table for %s", locale)
	return string(raw)
}

// Locator returns a document locator over this corpus.
func (c *Corpus) Locator(t *testing.T) *content.Locator {
	t.Helper()

	locator, err := content.NewLocator(c.FS, c.Root)
	AssertNoError(t, err)
	return locator
}

func (c *Corpus) writeFile(t *testing.T, path, body string) {
	t.Helper()

	AssertNoError(t, c.FS.MkdirAll(filepath.Dir(path), 0o755))
	AssertNoError(t, c.FS.WriteFile(path, []byte(body), 0o644))
}
