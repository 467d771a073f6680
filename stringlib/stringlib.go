// Package stringlib compares multi-line output ignoring blank lines and
// surrounding spaces.
package stringlib

import (
	"strings"
	"testing"

	"github.com/elliotchance/pie/v2"
	"github.com/kylelemons/godebug/diff"
)

// AssertSimilar strings by comparing its content after normalization
func AssertSimilar(t *testing.T, want string, got string) {
	t.Helper()

	if !Similar(want, got) {
		t.Errorf(
			"Strings doesn't match after normalization:\n%s",
			diff.Diff(Normalize(want), Normalize(got)))
	}
}

// Normalize trims every line and drops the empty ones
func Normalize(s string) string {
	var lines = pie.Map(strings.Split(s, "\n"), strings.TrimSpace)

	return strings.Join(pie.Filter(lines, func(line string) bool {
		return line != ""
	}), "\n")
}

// Similar compares if two strings are similar after normalization
func Similar(x, y string) bool {
	return Normalize(x) == Normalize(y)
}
