package content

import (
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/arthur-debert/redirmap/pkg/errors"
	"github.com/arthur-debert/redirmap/pkg/locales"
	"github.com/arthur-debert/redirmap/pkg/types"
	"github.com/arthur-debert/redirmap/pkg/urls"
)

// locateCacheSize bounds the positive-hit cache. Validation stats the same
// document folders over and over; misses are not cached because documents
// appear on disk while a fix run is in flight.
const locateCacheSize = 4096

// indexFileNames are the recognized document index files, in lookup order.
var indexFileNames = []string{"index.md", "index.html"}

// Locator finds document index files inside a content root.
type Locator struct {
	fs    types.FS
	root  string
	cache *lru.Cache[string, string]
}

var _ types.DocumentLocator = (*Locator)(nil)

// NewLocator creates a Locator over the given filesystem and content root.
func NewLocator(fsys types.FS, contentRoot string) (*Locator, error) {
	return NewLocatorSize(fsys, contentRoot, locateCacheSize)
}

// NewLocatorSize creates a Locator with an explicit locate-cache size.
func NewLocatorSize(fsys types.FS, contentRoot string, cacheSize int) (*Locator, error) {
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot create locate cache")
	}

	return &Locator{
		fs:    fsys,
		root:  contentRoot,
		cache: cache,
	}, nil
}

// Locate returns the index file path for the document with the given locale
// and slug, if one exists. Lookup is case-insensitive because folders on
// disk are lowercase.
func (l *Locator) Locate(locale, slug string) (string, bool) {
	dir := filepath.Join(l.root, locales.Dir(locale), SlugToFolder(slug))
	if path, ok := l.cache.Get(dir); ok {
		return path, true
	}

	for _, name := range indexFileNames {
		path := filepath.Join(dir, name)
		info, err := l.fs.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		l.cache.Add(dir, path)
		return path, true
	}
	return "", false
}

// LocateURL reports whether u points at an existing document. URLs that do
// not have document shape locate nothing.
func (l *Locator) LocateURL(u string) (string, bool) {
	locale, slug, err := urls.ParseDocURL(u)
	if err != nil {
		return "", false
	}
	return l.Locate(locale, slug)
}

// CheckSlug verifies that the document behind u declares the same slug in
// its front matter as the URL carries. Comparison ignores case, matching
// how documents are located.
func (l *Locator) CheckSlug(u string) error {
	locale, slug, err := urls.ParseDocURL(u)
	if err != nil {
		return err
	}

	path, ok := l.Locate(locale, slug)
	if !ok {
		return errors.Newf(errors.ErrTargetNotFound, "%s does not locate a document", u)
	}

	raw, err := l.fs.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path)
	}

	fm, err := ParseFrontMatter(raw)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "bad front matter in %s", path)
	}

	if fm.Slug != "" && !strings.EqualFold(fm.Slug, slug) {
		return errors.Newf(errors.ErrSlugMismatch,
			"document at %s declares slug %q, URL says %q", path, fm.Slug, slug)
	}
	return nil
}
