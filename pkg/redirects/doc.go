// Package redirects implements the per-locale redirect table engine.
//
// A table maps document URLs to their destinations, one file per locale,
// tab-separated and sorted. The engine validates candidate entries,
// merges update batches into existing tables (dropping conflicting and
// superseded pairs), flattens multi-hop chains into direct single-hop
// mappings with cycle detection, removes orphaned entries against the
// content tree, and persists the canonical rendering atomically.
//
// Graph work happens on lowercased URLs; a casing map restores the
// first-seen original casing on output, so human-authored URLs survive
// round trips.
package redirects
