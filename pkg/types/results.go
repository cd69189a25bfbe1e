package types

// AddResult holds the result of merging updates into a locale's table.
type AddResult struct {
	Locale    string `json:"locale"`
	TablePath string `json:"tablePath"`
	Added     int    `json:"added"`    // update pairs merged in
	Removed   int    `json:"removed"`  // old pairs dropped by conflict/supersede rules
	Orphaned  int    `json:"orphaned"` // pairs dropped as orphans (fix mode only)
	Cycles    int    `json:"cycles"`   // cycles detected and dropped while flattening
	Total     int    `json:"total"`    // pairs persisted
}

// FixResult holds the result of repairing a locale's table.
type FixResult struct {
	Locale    string `json:"locale"`
	TablePath string `json:"tablePath"`
	Before    int    `json:"before"`   // pairs loaded
	After     int    `json:"after"`    // pairs persisted
	Orphaned  int    `json:"orphaned"` // pairs dropped as orphans
	Cycles    int    `json:"cycles"`   // cycles detected and dropped
	Changed   bool   `json:"changed"`  // table content changed
	Diff      string `json:"diff"`     // human-readable old vs new summary
}

// ValidateResult holds the outcome of validating one locale's table.
type ValidateResult struct {
	Locale    string `json:"locale"`
	TablePath string `json:"tablePath"`
	Entries   int    `json:"entries"`
	Err       error  `json:"-"`
}

// OK reports whether the locale's table passed validation.
func (r ValidateResult) OK() bool {
	return r.Err == nil
}
