// Package tracediff renders unified diffs between expected and actual
// simulation traces so that a mismatch shows the diverging interrupt blocks
// instead of two full trace dumps.
package tracediff

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Unified returns a GNU unified diff between the expected and actual trace
// text. If the two inputs are identical, an empty string is returned.
func Unified(expected, actual string) string {
	if expected == actual {
		return ""
	}
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	}
	patch, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return err.Error()
	}
	return patch
}
