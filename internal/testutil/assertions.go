package testutil

import (
	"strings"
	"testing"
)

// AssertNoError checks that an error is nil
func AssertNoError(t *testing.T, err error, context string) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: expected no error, got: %v", context, err)
	}
}

// AssertError checks that an error is not nil
func AssertError(t *testing.T, err error, context string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected an error, got nil", context)
	}
}

// AssertOutput compares printed output line by line
func AssertOutput(t *testing.T, actual string, expected []string, context string) {
	t.Helper()
	want := strings.Join(expected, "\n") + "\n"
	if len(expected) == 0 {
		want = ""
	}
	if actual != want {
		t.Errorf("%s: output mismatch\nexpected:\n%s\ngot:\n%s", context, want, actual)
	}
}

// AssertLineCount checks the number of newline-terminated lines in output
func AssertLineCount(t *testing.T, actual string, expected int, context string) {
	t.Helper()
	if got := strings.Count(actual, "\n"); got != expected {
		t.Errorf("%s: expected %d lines, got %d", context, expected, got)
	}
}
