package redirects

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/redirmap/pkg/errors"
	"github.com/arthur-debert/redirmap/pkg/types"
)

// Serialize renders pairs in canonical table form: the header line plus
// one tab-separated row per pair, sorted ascending by (from, to). The
// input slice is not modified.
func Serialize(pairs []types.Pair) []byte {
	sorted := make([]types.Pair, len(pairs))
	copy(sorted, pairs)
	types.SortPairs(sorted)

	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')
	for _, p := range sorted {
		b.WriteString(p.From)
		b.WriteByte('\t')
		b.WriteString(p.To)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// WriteTable rewrites the table at path with the canonical rendering of
// pairs. The content goes to a temporary file first and is renamed into
// place, so a crash mid-write cannot leave a truncated table behind.
func WriteTable(fsys types.FS, path string, pairs []types.Pair) error {
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrTableWrite, "cannot create directory for %s", path)
	}

	tmp := path + ".tmp"
	if err := fsys.WriteFile(tmp, Serialize(pairs), 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrTableWrite, "cannot write %s", tmp)
	}
	if err := fsys.Rename(tmp, path); err != nil {
		_ = fsys.Remove(tmp)
		return errors.Wrapf(err, errors.ErrTableWrite, "cannot replace %s", path)
	}
	return nil
}
