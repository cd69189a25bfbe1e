package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arthur-debert/redirmap/pkg/style"
	"github.com/arthur-debert/redirmap/pkg/types"
)

// resolution is one resolve lookup and its outcome.
type resolution struct {
	URL        string `json:"url"`
	Target     string `json:"target"`
	Redirected bool   `json:"redirected"`
}

// urlCheck is one single-URL validation and its outcome.
type urlCheck struct {
	URL  string
	Rule string
	Err  error
}

// listing is one locale's table content for the list command.
type listing struct {
	Locale    string
	TablePath string
	Pairs     []types.Pair
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf(MsgErrEncodeResults, err)
	}
	return nil
}

func printAddResults(f style.Format, results []*types.AddResult) error {
	if f == style.FormatJSON {
		return printJSON(results)
	}

	for _, r := range results {
		status := style.StatusOK
		if r.Removed > 0 || r.Orphaned > 0 || r.Cycles > 0 {
			status = style.StatusChanged
		}
		fmt.Printf("%s %s  added %d, removed %d, total %d",
			style.Label(status, f), r.Locale, r.Added, r.Removed, r.Total)
		if r.Orphaned > 0 {
			fmt.Printf(", dropped %d orphans", r.Orphaned)
		}
		if r.Cycles > 0 {
			fmt.Printf(", broke %d cycles", r.Cycles)
		}
		fmt.Println()
	}
	return nil
}

func printFixResults(f style.Format, results []*types.FixResult) error {
	if f == style.FormatJSON {
		return printJSON(results)
	}

	for _, r := range results {
		if !r.Changed {
			fmt.Printf("%s %s  %d entries\n",
				style.Label(style.StatusOK, f), r.Locale, r.After)
			continue
		}
		fmt.Printf("%s %s  %d entries in, %d out\n",
			style.Label(style.StatusChanged, f), r.Locale, r.Before, r.After)
		if r.Diff != "" {
			fmt.Print(style.RenderDiff(r.Diff, f))
		}
	}
	return nil
}

// printValidateResults reports per-locale outcomes and returns how many
// locales failed.
func printValidateResults(f style.Format, results []*types.ValidateResult) (int, error) {
	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
		}
	}

	if f == style.FormatJSON {
		rows := make([]validationJSON, 0, len(results))
		for _, r := range results {
			rows = append(rows, newValidationJSON(r))
		}
		return failed, printJSON(rows)
	}

	for _, r := range results {
		if r.OK() {
			fmt.Printf("%s %s  %d entries\n",
				style.Label(style.StatusOK, f), r.Locale, r.Entries)
			continue
		}
		fmt.Printf("%s %s  %v\n",
			style.Label(style.StatusError, f), r.Locale, r.Err)
	}
	return failed, nil
}

// validationJSON mirrors types.ValidateResult with the error flattened
// to a string, which the struct's json tags cannot express.
type validationJSON struct {
	Locale    string `json:"locale"`
	TablePath string `json:"tablePath"`
	Entries   int    `json:"entries"`
	OK        bool   `json:"ok"`
	Error     string `json:"error,omitempty"`
}

func newValidationJSON(r *types.ValidateResult) validationJSON {
	row := validationJSON{
		Locale:    r.Locale,
		TablePath: r.TablePath,
		Entries:   r.Entries,
		OK:        r.OK(),
	}
	if r.Err != nil {
		row.Error = r.Err.Error()
	}
	return row
}

// printURLChecks reports single-URL validations and returns how many
// failed.
func printURLChecks(f style.Format, checks []urlCheck) (int, error) {
	failed := 0
	for _, c := range checks {
		if c.Err != nil {
			failed++
		}
	}

	if f == style.FormatJSON {
		rows := make([]urlCheckJSON, 0, len(checks))
		for _, c := range checks {
			row := urlCheckJSON{URL: c.URL, Rule: c.Rule, OK: c.Err == nil}
			if c.Err != nil {
				row.Error = c.Err.Error()
			}
			rows = append(rows, row)
		}
		return failed, printJSON(rows)
	}

	for _, c := range checks {
		if c.Err == nil {
			fmt.Printf("%s %s\n", style.Label(style.StatusOK, f), c.URL)
			continue
		}
		fmt.Printf("%s %s  %v\n", style.Label(style.StatusError, f), c.URL, c.Err)
	}
	return failed, nil
}

type urlCheckJSON struct {
	URL   string `json:"url"`
	Rule  string `json:"rule"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func printResolutions(f style.Format, resolutions []resolution) error {
	switch f {
	case style.FormatJSON:
		return printJSON(resolutions)
	case style.FormatTerminal:
		for _, r := range resolutions {
			fmt.Printf(MsgResolveItemTerm, style.Muted.Render(r.URL), r.Target)
		}
	default:
		// Plain output is just the targets, one per line, for piping.
		for _, r := range resolutions {
			fmt.Printf(MsgResolveItem, r.Target)
		}
	}
	return nil
}

func printListings(f style.Format, listings []listing) error {
	if f == style.FormatJSON {
		rows := make([]listingJSON, 0, len(listings))
		for _, l := range listings {
			entries := make([]pairJSON, 0, len(l.Pairs))
			for _, p := range l.Pairs {
				entries = append(entries, pairJSON{From: p.From, To: p.To})
			}
			rows = append(rows, listingJSON{
				Locale:    l.Locale,
				TablePath: l.TablePath,
				Entries:   entries,
			})
		}
		return printJSON(rows)
	}

	for _, l := range listings {
		// The header is a table comment, so the output stays valid
		// table format.
		header := fmt.Sprintf("# %s: %d entries", l.Locale, len(l.Pairs))
		if f == style.FormatTerminal {
			header = style.Header.Render(header)
		}
		fmt.Println(header)
		for _, p := range l.Pairs {
			fmt.Println(p.String())
		}
	}
	return nil
}

type listingJSON struct {
	Locale    string     `json:"locale"`
	TablePath string     `json:"tablePath"`
	Entries   []pairJSON `json:"entries"`
}

type pairJSON struct {
	From string `json:"from"`
	To   string `json:"to"`
}
