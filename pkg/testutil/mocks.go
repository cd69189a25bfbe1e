package testutil

import (
	"github.com/arthur-debert/redirmap/pkg/types"
)

// MockLocator is a mock implementation of the types.DocumentLocator
// interface for testing.
type MockLocator struct {
	LocateURLFunc func(url string) (string, bool)
}

// LocateURL runs the mock's locate function.
func (m *MockLocator) LocateURL(url string) (string, bool) {
	if m.LocateURLFunc != nil {
		return m.LocateURLFunc(url)
	}
	return "", false
}

// MockChecker is a mock implementation of the types.RedirectChecker
// interface for testing.
type MockChecker struct {
	IsRedirectedFunc func(url string) bool
}

// IsRedirected runs the mock's check function.
func (m *MockChecker) IsRedirected(url string) bool {
	if m.IsRedirectedFunc != nil {
		return m.IsRedirectedFunc(url)
	}
	return false
}

var (
	_ types.DocumentLocator = (*MockLocator)(nil)
	_ types.RedirectChecker = (*MockChecker)(nil)
)
