// Package testutil provides test helpers for redirmap.
//
// It contains lightweight assertion helpers and a Corpus builder that
// assembles an in-memory content root (documents plus redirect tables)
// for exercising validation, merging, and resolution without touching
// the real filesystem.
package testutil
