package redirects

import (
	"sort"
	"strings"

	"github.com/arthur-debert/redirmap/pkg/errors"
	"github.com/arthur-debert/redirmap/pkg/types"
)

// FlattenResult is the output of collapsing a pair set: direct single-hop
// pairs plus any cycles that were detected and dropped. Each cycle lists
// the looping URLs in walk order, closed by repeating the entry node.
type FlattenResult struct {
	Pairs  []types.Pair
	Cycles [][]string
}

// walkOutcome is the tagged result of following the chain from one source:
// the chain either terminates at Target, or loops and Cycle holds the
// repeating segment. A walk that joins an already-failed chain has neither.
type walkOutcome struct {
	Target string
	Cycle  []string
}

// Flatten collapses multi-hop redirect chains into direct pairs: A→B→C
// becomes {A→C, B→C}. Graph work happens on lowercased URLs; output is
// mapped back to the first-seen original casing and sorted ascending by
// (from, to), so flattening its own output is a no-op.
//
// Cyclic chains contribute no pairs and are reported in the result. Two
// pairs sharing a source are a hard error: a redirect table can answer a
// source with only one target.
func Flatten(pairs []types.Pair) (FlattenResult, error) {
	casing := make(map[string]string, len(pairs)*2)
	note := func(u string) string {
		key := strings.ToLower(u)
		if _, ok := casing[key]; !ok {
			casing[key] = u
		}
		return key
	}

	edges := make(map[string]string, len(pairs))
	sources := make([]string, 0, len(pairs))
	for _, p := range pairs {
		from := note(p.From)
		to := note(p.To)
		if other, ok := edges[from]; ok {
			return FlattenResult{}, errors.Newf(errors.ErrEdgeConflict,
				"%s redirects to both %s and %s", casing[from], casing[other], p.To)
		}
		edges[from] = to
		sources = append(sources, from)
	}
	sort.Strings(sources)

	// resolved maps a source to its ultimate target; failed marks sources
	// whose chain ends in a cycle. One walk settles every node it visits,
	// so chains sharing a tail are not re-walked.
	resolved := make(map[string]string, len(sources))
	failed := make(map[string]bool)
	var cycles [][]string

	for _, src := range sources {
		if _, done := resolved[src]; done || failed[src] {
			continue
		}

		path, outcome := walkChain(src, edges, resolved, failed)
		if outcome.Target != "" {
			for _, node := range path {
				if _, hasEdge := edges[node]; hasEdge {
					resolved[node] = outcome.Target
				}
			}
			continue
		}

		for _, node := range path {
			failed[node] = true
		}
		if outcome.Cycle != nil {
			cased := make([]string, len(outcome.Cycle))
			for i, node := range outcome.Cycle {
				cased[i] = casing[node]
			}
			cycles = append(cycles, cased)
		}
	}

	out := make([]types.Pair, 0, len(resolved))
	for src, target := range resolved {
		out = append(out, types.Pair{From: casing[src], To: casing[target]})
	}
	types.SortPairs(out)

	return FlattenResult{Pairs: out, Cycles: cycles}, nil
}

// walkChain follows outgoing edges from start, keeping the visited path
// and a membership set. It stops at a node with no outgoing edge (the
// ultimate target), at a node already settled by an earlier walk, or when
// the next hop is already on the current path, which is a cycle.
func walkChain(start string, edges, resolved map[string]string, failed map[string]bool) ([]string, walkOutcome) {
	path := make([]string, 0, 8)
	onPath := make(map[string]bool)
	node := start

	for {
		path = append(path, node)
		onPath[node] = true

		if target, ok := resolved[node]; ok {
			return path, walkOutcome{Target: target}
		}
		if failed[node] {
			// Joins a chain already known to loop; nothing new to report.
			return path, walkOutcome{}
		}

		next, ok := edges[node]
		if !ok {
			return path, walkOutcome{Target: node}
		}
		if onPath[next] {
			return path, walkOutcome{Cycle: cyclePath(path, next)}
		}
		node = next
	}
}

// cyclePath extracts the looping segment of path, from the first
// occurrence of entry to the end, and closes it by repeating entry.
func cyclePath(path []string, entry string) []string {
	for i, node := range path {
		if node == entry {
			cycle := make([]string, 0, len(path)-i+1)
			cycle = append(cycle, path[i:]...)
			return append(cycle, entry)
		}
	}
	return append([]string{}, entry)
}

// CycleError converts detected cycles into a fatal error, used when strict
// cycle checking is requested. Returns nil when there are none.
func (r FlattenResult) CycleError() error {
	if len(r.Cycles) == 0 {
		return nil
	}
	rendered := make([]string, len(r.Cycles))
	for i, cycle := range r.Cycles {
		rendered[i] = strings.Join(cycle, " -> ")
	}
	return errors.Newf(errors.ErrRedirectCycle,
		"redirect cycles detected: %s", strings.Join(rendered, "; "))
}
