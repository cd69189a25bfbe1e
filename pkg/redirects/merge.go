package redirects

import (
	"strings"

	"github.com/arthur-debert/redirmap/pkg/types"
	"github.com/arthur-debert/redirmap/pkg/urls"
)

// RemoveConflictingOldRedirects drops old pairs whose source matches,
// ignoring case, the target of an incoming update. Such an update is about
// to turn that URL into a redirect source, so the old pair pointing at it
// would become a redirect to a redirect the moment the update lands.
func RemoveConflictingOldRedirects(old, updates []types.Pair) (kept, removed []types.Pair) {
	targets := make(map[string]bool, len(updates))
	for _, u := range updates {
		targets[strings.ToLower(u.To)] = true
	}

	for _, p := range old {
		if targets[strings.ToLower(p.From)] {
			removed = append(removed, p)
			continue
		}
		kept = append(kept, p)
	}
	return kept, removed
}

// removeSuperseded drops old pairs re-registered by an update with the
// same source, ignoring case. The update carries the current intent.
func removeSuperseded(old, updates []types.Pair) (kept, removed []types.Pair) {
	sources := types.SourceSet(updates)

	for _, p := range old {
		if _, ok := sources[strings.ToLower(p.From)]; ok {
			removed = append(removed, p)
			continue
		}
		kept = append(kept, p)
	}
	return kept, removed
}

// MergeUpdates merges an update batch into an existing pair set: stale old
// pairs are dropped by the conflict and supersede rules, then the combined
// set is flattened. The returned removed slice lists every old pair that
// was dropped.
func MergeUpdates(old, updates []types.Pair) (FlattenResult, []types.Pair, error) {
	kept, conflicting := RemoveConflictingOldRedirects(old, updates)
	kept, superseded := removeSuperseded(kept, updates)
	removed := append(conflicting, superseded...)

	merged := make([]types.Pair, 0, len(kept)+len(updates))
	merged = append(merged, kept...)
	merged = append(merged, updates...)

	result, err := Flatten(merged)
	if err != nil {
		return FlattenResult{}, nil, err
	}
	return result, removed, nil
}

// RemoveOrphanedRedirects drops pairs made moot by the content tree: a
// source where a real document now lives, or an internal target that no
// longer locates one. Vanity and external targets are exempt from the
// target check.
func RemoveOrphanedRedirects(pairs []types.Pair, locator types.DocumentLocator) (kept, orphaned []types.Pair) {
	for _, p := range pairs {
		if _, ok := locator.LocateURL(p.From); ok {
			orphaned = append(orphaned, p)
			continue
		}
		if strings.HasPrefix(p.To, "/") && !urls.IsVanity(p.To) {
			if _, ok := locator.LocateURL(p.To); !ok {
				orphaned = append(orphaned, p)
				continue
			}
		}
		kept = append(kept, p)
	}
	return kept, orphaned
}
