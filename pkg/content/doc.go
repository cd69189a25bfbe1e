// Package content maps document URLs to files inside a content root.
//
// Documents live at <root>/<locale-dir>/<folder>/index.md (or index.html),
// where the folder is derived from the document slug by SlugToFolder. The
// Locator answers "does this URL point at a real document" for validation
// and orphan cleanup, with a small LRU cache in front of the filesystem.
package content
