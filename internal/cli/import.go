package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/redirmap/pkg/errors"
	"github.com/arthur-debert/redirmap/pkg/redirects"
	"github.com/arthur-debert/redirmap/pkg/types"
)

// tomlImport is the shape of a .toml import file: an array of
// [[redirect]] entries with from and to keys.
type tomlImport struct {
	Redirects []tomlRedirect `toml:"redirect"`
}

type tomlRedirect struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// readImportFile reads redirect pairs from path. Files ending in .toml
// hold [[redirect]] entries; everything else is read as tab-separated
// table rows, comments and header included.
func readImportFile(path string) ([]types.Pair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(MsgErrReadImport, path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		var parsed tomlImport
		if err := toml.Unmarshal(data, &parsed); err != nil {
			return nil, errors.Wrapf(err, errors.ErrTableFormat, "failed to parse %s", path)
		}
		pairs := make([]types.Pair, 0, len(parsed.Redirects))
		for _, r := range parsed.Redirects {
			pairs = append(pairs, types.Pair{From: r.From, To: r.To})
		}
		return pairs, nil
	}

	pairs, err := redirects.ParseTableStrict(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTableFormat, "failed to parse %s", path)
	}
	return pairs, nil
}
