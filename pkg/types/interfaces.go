package types

import (
	"io/fs"
)

// FS is the filesystem interface required for redirmap operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Remove(name string) error
	Rename(oldpath, newpath string) error
}

// DocumentLocator maps a decoded document URL to its on-disk location.
// Implementations never fail: a URL that does not correspond to a document
// simply reports ok=false.
type DocumentLocator interface {
	// LocateURL returns the path of the document the URL addresses,
	// or ok=false if no such document exists.
	LocateURL(url string) (path string, ok bool)
}

// URLResolver resolves a URL to its final destination. A URL with no
// known redirect resolves to itself.
type URLResolver interface {
	Resolve(url string) string
}

// RedirectChecker reports whether a URL is already registered as a
// redirect source somewhere in the corpus. Validation uses it to reject
// sources and targets that would layer one redirect on top of another.
type RedirectChecker interface {
	IsRedirected(url string) bool
}

// SlugChecker verifies that a document URL agrees with the slug the
// document itself declares. Locators that can read documents implement
// this in addition to DocumentLocator; strict validation uses it when
// available.
type SlugChecker interface {
	CheckSlug(url string) error
}
