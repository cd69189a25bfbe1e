package testutil

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

// Small assertion helpers for table-driven tests that don't pull in
// testify. Each takes optional trailing message arguments: a lone string,
// a format string plus operands, or a list joined with spaces.

func AssertEqual(t *testing.T, expected, actual interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		fail(t, msgAndArgs, "Expected: %+v\nActual: %+v", expected, actual)
	}
}

func AssertTrue(t *testing.T, value bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !value {
		fail(t, msgAndArgs, "Expected true, got false")
	}
}

func AssertFalse(t *testing.T, value bool, msgAndArgs ...interface{}) {
	t.Helper()
	if value {
		fail(t, msgAndArgs, "Expected false, got true")
	}
}

func AssertError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err == nil {
		fail(t, msgAndArgs, "Expected an error but got nil")
	}
}

func AssertNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		fail(t, msgAndArgs, "Unexpected error: %v", err)
	}
}

func AssertNotNil(t *testing.T, value interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if isNil(value) {
		fail(t, msgAndArgs, "Expected non-nil value")
	}
}

func AssertNotEmpty(t *testing.T, value string, msgAndArgs ...interface{}) {
	t.Helper()
	if value == "" {
		fail(t, msgAndArgs, "Expected non-empty string")
	}
}

func fail(t *testing.T, msgAndArgs []interface{}, format string, args ...interface{}) {
	t.Helper()
	t.Errorf("%s%s", formatMessage(msgAndArgs...), fmt.Sprintf(format, args...))
}

// isNil sees through interfaces holding typed nil pointers, which a plain
// == nil comparison would miss.
func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	}
	return false
}

func formatMessage(msgAndArgs ...interface{}) string {
	switch len(msgAndArgs) {
	case 0:
		return ""
	case 1:
		return fmt.Sprint(msgAndArgs[0]) + "\n"
	}

	if format, ok := msgAndArgs[0].(string); ok && strings.Contains(format, "%") {
		return fmt.Sprintf(format, msgAndArgs[1:]...) + "\n"
	}

	parts := make([]string, len(msgAndArgs))
	for i, arg := range msgAndArgs {
		parts[i] = fmt.Sprint(arg)
	}
	return strings.Join(parts, " ") + "\n"
}
