package types

import (
	"sort"
	"strings"
)

// Pair is a single redirect entry: a request for From is answered with To.
// From is always an in-corpus document URL; To is an in-corpus URL, an
// external https URL, or a bare locale root.
type Pair struct {
	From string
	To   string
}

// String renders the pair the way it appears in a redirect table.
func (p Pair) String() string {
	return p.From + "\t" + p.To
}

// SortPairs orders pairs ascending by (From, To). Tables are persisted in
// this order so that identical inputs produce byte-identical files.
func SortPairs(pairs []Pair) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].From != pairs[j].From {
			return pairs[i].From < pairs[j].From
		}
		return pairs[i].To < pairs[j].To
	})
}

// PairsEqual reports whether two pair slices are identical in order and content.
func PairsEqual(a, b []Pair) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SourceSet returns the set of lowercased From URLs in pairs.
func SourceSet(pairs []Pair) map[string]struct{} {
	set := make(map[string]struct{}, len(pairs))
	for _, p := range pairs {
		set[strings.ToLower(p.From)] = struct{}{}
	}
	return set
}
