package redirects

import (
	"bytes"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/redirmap/pkg/errors"
	"github.com/arthur-debert/redirmap/pkg/locales"
	"github.com/arthur-debert/redirmap/pkg/logging"
	"github.com/arthur-debert/redirmap/pkg/paths"
	"github.com/arthur-debert/redirmap/pkg/types"
	"github.com/arthur-debert/redirmap/pkg/urls"
)

// Store owns the persisted redirect tables under one content root. All
// mutations go through it: load, merge, repair, validate, persist. It
// keeps two validators, a shape-only one for loading (no corpus access)
// and a full one for writes.
type Store struct {
	fs      types.FS
	paths   paths.Paths
	locator types.DocumentLocator
	shape   *Validator
	full    *Validator
	logger  zerolog.Logger
}

// NewStore creates a Store over the given collaborators. The checker may
// be nil; then already-redirected checks are skipped during validation.
func NewStore(fsys types.FS, p paths.Paths, locator types.DocumentLocator, checker types.RedirectChecker) *Store {
	return &Store{
		fs:      fsys,
		paths:   p,
		locator: locator,
		shape:   NewValidator(nil, nil),
		full:    NewValidator(locator, checker),
		logger:  logging.GetLogger("redirects.store"),
	}
}

// TablePath returns the table location for a locale.
func (s *Store) TablePath(locale string) string {
	return s.paths.TablePath(locale)
}

// LocalesWithTables returns the locales that currently have a table on
// disk, in canonical locale order.
func (s *Store) LocalesWithTables() []string {
	var found []string
	for _, locale := range locales.All() {
		if info, err := s.fs.Stat(s.paths.TablePath(locale)); err == nil && !info.IsDir() {
			found = append(found, locale)
		}
	}
	return found
}

// Load reads a locale's table tolerantly: structurally broken, encoded,
// duplicated, or shape-invalid rows are logged and dropped so the table
// can heal on the next write. A missing table is an empty table.
func (s *Store) Load(locale string) ([]types.Pair, error) {
	tablePath := s.paths.TablePath(locale)
	raw, err := s.fs.ReadFile(tablePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrTableRead, "cannot read %s", tablePath)
	}

	pairs, _ := s.parseRelaxed(raw, locale)
	return pairs, nil
}

// LoadStrict reads a locale's table and fails on the first integrity or
// shape violation. A missing table is an empty table.
func (s *Store) LoadStrict(locale string) ([]types.Pair, error) {
	tablePath := s.paths.TablePath(locale)
	raw, err := s.fs.ReadFile(tablePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrTableRead, "cannot read %s", tablePath)
	}

	pairs, err := ParseTableStrict(raw)
	if err != nil {
		return nil, err
	}
	for _, p := range pairs {
		if err := s.shape.CheckPair(p, false, false); err != nil {
			return nil, err
		}
	}
	return pairs, nil
}

// parseRelaxed parses raw table content, logging and dropping whatever
// does not hold up. The second return is the number of data rows seen,
// including dropped ones.
func (s *Store) parseRelaxed(raw []byte, locale string) ([]types.Pair, int) {
	pairs, issues := ParseTable(raw)
	rows := len(pairs) + len(issues)
	for _, issue := range issues {
		s.logger.Warn().Err(issue).Str("locale", locale).Msg("Dropping broken table row")
	}

	kept := make([]types.Pair, 0, len(pairs))
	for _, p := range pairs {
		if err := s.shape.CheckPair(p, false, false); err != nil {
			s.logger.Warn().Err(err).Str("locale", locale).Str("from", p.From).
				Msg("Dropping invalid redirect")
			continue
		}
		kept = append(kept, p)
	}
	return kept, rows
}

// Add merges an update batch into a locale's table and persists the
// result. Updates are validated first; the merged set is flattened, with
// cycles logged and dropped; with fix, orphaned entries are dropped too.
// The final set must pass full validation before it is written, so a
// table that needs repair fails Add rather than persisting a violation.
func (s *Store) Add(locale string, updates []types.Pair, fix bool) (*types.AddResult, error) {
	logger := s.logger.With().Str("locale", locale).Logger()
	done := logging.LogOperationStart(logger, "add")
	defer done()

	for _, u := range updates {
		if err := s.full.CheckFromURL(u.From, false); err != nil {
			return nil, err
		}
		if err := s.full.CheckToURL(u.To, false, true); err != nil {
			return nil, err
		}
	}

	old, err := s.Load(locale)
	if err != nil {
		return nil, err
	}

	result, removed, err := MergeUpdates(old, updates)
	if err != nil {
		return nil, err
	}
	for _, cycle := range result.Cycles {
		logger.Warn().Strs("cycle", cycle).Msg("Dropping redirect cycle")
	}
	for _, p := range removed {
		logger.Debug().Str("from", p.From).Str("to", p.To).Msg("Dropping stale redirect")
	}

	final := result.Pairs
	var orphaned []types.Pair
	if fix {
		final, orphaned = RemoveOrphanedRedirects(final, s.locator)
		for _, p := range orphaned {
			logger.Info().Str("from", p.From).Str("to", p.To).Msg("Dropping orphaned redirect")
		}
	}

	for _, p := range final {
		if err := s.full.CheckPair(p, false, true); err != nil {
			return nil, err
		}
	}

	tablePath := s.paths.TablePath(locale)
	if err := WriteTable(s.fs, tablePath, final); err != nil {
		return nil, err
	}

	res := &types.AddResult{
		Locale:    locale,
		TablePath: tablePath,
		Added:     len(updates),
		Removed:   len(removed),
		Orphaned:  len(orphaned),
		Cycles:    len(result.Cycles),
		Total:     len(final),
	}
	logger.Info().
		Int("added", res.Added).
		Int("removed", res.Removed).
		Int("total", res.Total).
		Msg("Merged redirects")
	return res, nil
}

// Fix repairs a locale's table in place: broken rows, cycles, chains, and
// orphans all go, and the file is rewritten in canonical form if anything
// changed. With dryRun the result reports what would change but the file
// is left alone.
func (s *Store) Fix(locale string, dryRun bool) (*types.FixResult, error) {
	logger := s.logger.With().Str("locale", locale).Logger()
	done := logging.LogOperationStart(logger, "fix")
	defer done()

	tablePath := s.paths.TablePath(locale)
	res := &types.FixResult{Locale: locale, TablePath: tablePath}

	raw, err := s.fs.ReadFile(tablePath)
	if err != nil {
		if os.IsNotExist(err) {
			return res, nil
		}
		return nil, errors.Wrapf(err, errors.ErrTableRead, "cannot read %s", tablePath)
	}

	pairs, rows := s.parseRelaxed(raw, locale)
	res.Before = rows

	flat, err := Flatten(pairs)
	if err != nil {
		return nil, err
	}
	for _, cycle := range flat.Cycles {
		logger.Warn().Strs("cycle", cycle).Msg("Dropping redirect cycle")
	}

	kept, orphaned := RemoveOrphanedRedirects(flat.Pairs, s.locator)
	for _, p := range orphaned {
		logger.Info().Str("from", p.From).Str("to", p.To).Msg("Dropping orphaned redirect")
	}

	after := Serialize(kept)
	res.After = len(kept)
	res.Orphaned = len(orphaned)
	res.Cycles = len(flat.Cycles)
	res.Changed = !bytes.Equal(raw, after)
	res.Diff = Diff(string(raw), string(after))

	if res.Changed && !dryRun {
		if err := WriteTable(s.fs, tablePath, kept); err != nil {
			return nil, err
		}
		logger.Info().Int("before", res.Before).Int("after", res.After).Msg("Repaired table")
	}
	return res, nil
}

// ValidateSource verifies that a URL could be registered as a new
// redirect source: well-formed, inside a known locale's docs tree, not
// shadowing a document, and not already redirected.
func (s *Store) ValidateSource(url string) error {
	return s.full.CheckFromURL(url, true)
}

// ValidateTarget verifies that a URL is acceptable as a redirect
// target: a vanity locale home, an https external URL, or an internal
// docs URL that locates a document and is not itself redirected.
func (s *Store) ValidateTarget(url string) error {
	return s.full.CheckToURL(url, true, true)
}

// ValidateLocale checks that a locale's persisted table is already in
// canonical form: strictly parseable, shape-valid, flattened, and sorted.
// Strict mode also verifies the table against the content tree: sources
// must not shadow documents, internal targets must exist and agree with
// the slug their document declares.
func (s *Store) ValidateLocale(locale string, strict bool) *types.ValidateResult {
	tablePath := s.paths.TablePath(locale)
	res := &types.ValidateResult{Locale: locale, TablePath: tablePath}

	raw, err := s.fs.ReadFile(tablePath)
	if err != nil {
		if !os.IsNotExist(err) {
			res.Err = errors.Wrapf(err, errors.ErrTableRead, "cannot read %s", tablePath)
		}
		return res
	}

	pairs, err := ParseTableStrict(raw)
	if err != nil {
		res.Err = err
		return res
	}
	res.Entries = len(pairs)

	for _, p := range pairs {
		if err := s.shape.CheckPair(p, false, false); err != nil {
			res.Err = err
			return res
		}
	}

	flat, err := Flatten(pairs)
	if err != nil {
		res.Err = err
		return res
	}
	if err := flat.CycleError(); err != nil {
		res.Err = err
		return res
	}
	if !types.PairsEqual(flat.Pairs, pairs) {
		res.Err = errors.Newf(errors.ErrTableNotCanonical,
			"table for %s is not flattened and sorted", locale)
		return res
	}

	if !strict {
		return res
	}

	slugChecker, _ := s.locator.(types.SlugChecker)
	for _, p := range pairs {
		if err := s.full.CheckPair(p, false, true); err != nil {
			res.Err = err
			return res
		}
		if strings.HasPrefix(p.To, "/") && !urls.IsVanity(p.To) && slugChecker != nil {
			if err := slugChecker.CheckSlug(p.To); err != nil {
				res.Err = err
				return res
			}
		}
	}
	return res
}
