// Package resolver answers single-hop redirect lookups across every
// locale's persisted table. Tables are pre-flattened on write, so a
// lookup is one map access with no chain walking. A Resolver owns its
// own state and is safe for concurrent use; construct one and inject it
// wherever lookups are needed.
package resolver

import (
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/redirmap/pkg/errors"
	"github.com/arthur-debert/redirmap/pkg/locales"
	"github.com/arthur-debert/redirmap/pkg/logging"
	"github.com/arthur-debert/redirmap/pkg/redirects"
	"github.com/arthur-debert/redirmap/pkg/types"
	"github.com/arthur-debert/redirmap/pkg/urls"
)

// Resolver caches the merged redirect tables and resolves URLs against
// them. Loading is lazy: the first lookup pulls in every locale's table.
type Resolver struct {
	mu     sync.RWMutex
	store  *redirects.Store
	tables map[string]map[string]string // locale -> lowercased from -> to
	merged map[string]string            // combined view, earlier locales win
	logger zerolog.Logger
}

var (
	_ types.URLResolver     = (*Resolver)(nil)
	_ types.RedirectChecker = (*Resolver)(nil)
)

// New creates a Resolver over the given store. No tables are read until
// the first lookup or an explicit Load.
func New(store *redirects.Store) *Resolver {
	return &Resolver{
		store:  store,
		tables: make(map[string]map[string]string),
		logger: logging.GetLogger("resolver"),
	}
}

// Load reads the given locales' tables into the cache, replacing any
// previously cached entries for them. With no arguments, every known
// locale is loaded. Tables are read tolerantly, so a damaged row never
// blocks lookups for the rest of its locale.
func (r *Resolver) Load(locs ...string) error {
	if len(locs) == 0 {
		locs = locales.All()
	}

	fresh := make(map[string]map[string]string, len(locs))
	for _, loc := range locs {
		canonical, ok := locales.Canonical(loc)
		if !ok {
			return errors.Newf(errors.ErrLocaleUnknown, "'%s' not a valid locale", loc)
		}
		pairs, err := r.store.Load(canonical)
		if err != nil {
			return err
		}
		table := make(map[string]string, len(pairs))
		for _, p := range pairs {
			table[strings.ToLower(p.From)] = p.To
		}
		fresh[canonical] = table
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for loc, table := range fresh {
		r.tables[loc] = table
	}
	r.rebuild()

	total := len(r.merged)
	r.logger.Debug().Int("locales", len(locs)).Int("entries", total).Msg("Loaded redirect tables")
	return nil
}

// Reload drops the cache and loads every locale's table again.
func (r *Resolver) Reload() error {
	r.mu.Lock()
	r.tables = make(map[string]map[string]string)
	r.merged = nil
	r.mu.Unlock()
	return r.Load()
}

// rebuild recomputes the merged view. Caller holds the write lock.
// Locales merge in canonical order; on a cross-locale source collision
// the earlier locale keeps the entry.
func (r *Resolver) rebuild() {
	merged := make(map[string]string)
	for _, loc := range locales.All() {
		for from, to := range r.tables[loc] {
			if _, ok := merged[from]; !ok {
				merged[from] = to
			}
		}
	}
	r.merged = merged
}

// ensure lazily populates the cache before the first lookup.
func (r *Resolver) ensure() error {
	r.mu.RLock()
	ready := r.merged != nil
	r.mu.RUnlock()
	if ready {
		return nil
	}
	return r.Load()
}

// Resolve maps a URL to its redirect target. The fixed rewrite rules
// for legacy locales run first, then the decoded, lowercased URL is
// looked up once. On a miss the (possibly rewritten) input comes back
// unchanged; Resolve never fails.
func (r *Resolver) Resolve(url string) string {
	if err := r.ensure(); err != nil {
		r.logger.Warn().Err(err).Msg("Resolving without redirect tables")
	}

	if rewritten, ok := urls.ResolveFundamental(url); ok {
		url = rewritten
	}

	lookup := url
	if decoded, err := urls.DecodePath(url); err == nil {
		lookup = decoded
	}

	r.mu.RLock()
	target, ok := r.merged[strings.ToLower(lookup)]
	r.mu.RUnlock()
	if ok {
		return target
	}
	return url
}

// IsRedirected reports whether a URL is registered as a redirect source.
func (r *Resolver) IsRedirected(url string) bool {
	if err := r.ensure(); err != nil {
		r.logger.Warn().Err(err).Msg("Checking redirects without tables")
		return false
	}

	if decoded, err := urls.DecodePath(url); err == nil {
		url = decoded
	}

	r.mu.RLock()
	_, ok := r.merged[strings.ToLower(url)]
	r.mu.RUnlock()
	return ok
}

// Len returns the number of cached redirect entries across all locales.
func (r *Resolver) Len() int {
	if err := r.ensure(); err != nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.merged)
}
