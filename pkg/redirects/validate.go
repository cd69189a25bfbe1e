package redirects

import (
	"strings"

	"github.com/arthur-debert/redirmap/pkg/errors"
	"github.com/arthur-debert/redirmap/pkg/types"
	"github.com/arthur-debert/redirmap/pkg/urls"
)

// Validator checks the legality of redirect sources and targets. Both
// collaborators are optional: without a locator the on-disk checks are
// skipped, without a checker the already-redirected checks are skipped,
// which is what lets tables be validated without a live corpus.
type Validator struct {
	locator types.DocumentLocator
	checker types.RedirectChecker
}

// NewValidator creates a Validator. Either collaborator may be nil.
func NewValidator(locator types.DocumentLocator, checker types.RedirectChecker) *Validator {
	return &Validator{locator: locator, checker: checker}
}

// CheckFromURL verifies that url may be registered as a redirect source.
// With resolveCheck, sources that are already redirected elsewhere are
// rejected too.
func (v *Validator) CheckFromURL(url string, resolveCheck bool) error {
	if !strings.HasPrefix(url, "/") {
		return errors.Newf(errors.ErrURLMalformed,
			"we only accept URLs starting with /, was %s", url)
	}
	if !strings.Contains(url, "/docs/") {
		return errors.Newf(errors.ErrURLMalformed,
			"we only accept URLs under /docs/, was %s", url)
	}
	if _, _, err := urls.ParseDocURL(url); err != nil {
		return err
	}
	if err := urls.CheckInvalidChars(url); err != nil {
		return err
	}
	if v.locator != nil {
		if path, ok := v.locator.LocateURL(url); ok {
			return errors.Newf(errors.ErrSourceIsDocument,
				"%s is already a document at %s", url, path)
		}
	}
	if resolveCheck && v.checker != nil && v.checker.IsRedirected(url) {
		return errors.Newf(errors.ErrAlreadyRedirected,
			"%s is already in the redirect table", url)
	}
	return nil
}

// CheckToURL verifies that url may serve as a redirect target. Vanity
// locale roots pass unconditionally; external URLs must be https; internal
// URLs must have document shape and, with pathCheck, point at an existing
// document.
func (v *Validator) CheckToURL(url string, resolveCheck, pathCheck bool) error {
	if urls.IsVanity(url) {
		return nil
	}

	if urls.HasScheme(url) {
		scheme := url[:strings.Index(url, "://")]
		if strings.ToLower(scheme) != "https" {
			return errors.Newf(errors.ErrSchemeForbidden,
				"we only redirect to https://, not %s://", scheme)
		}
		return nil
	}

	if !strings.HasPrefix(url, "/") {
		return errors.Newf(errors.ErrURLMalformed,
			"invalid target URL: %s", url)
	}

	if _, _, err := urls.ParseDocURL(url); err != nil {
		return err
	}
	if err := urls.CheckInvalidChars(url); err != nil {
		return err
	}
	if resolveCheck && v.checker != nil && v.checker.IsRedirected(url) {
		return errors.Newf(errors.ErrAlreadyRedirected,
			"%s is itself a redirect, cannot redirect to a redirect", url)
	}
	if pathCheck && v.locator != nil {
		if _, ok := v.locator.LocateURL(url); !ok {
			return errors.Newf(errors.ErrTargetNotFound,
				"%s does not exist in the content tree", url)
		}
	}
	return nil
}

// CheckPair runs both checks on a pair.
func (v *Validator) CheckPair(p types.Pair, resolveCheck, pathCheck bool) error {
	if err := v.CheckFromURL(p.From, resolveCheck); err != nil {
		return err
	}
	return v.CheckToURL(p.To, resolveCheck, pathCheck)
}
