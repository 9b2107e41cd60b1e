package utils

import (
	"strings"

	"golang.org/x/text/cases"
)

// FoldCase returns the Unicode case folding of s. A fresh Caser is used per call
// because cases.Caser is stateful and must not be shared between goroutines.
func FoldCase(s string) string {
	if s == "" {
		return ""
	}
	return cases.Fold().String(s)
}

// ContainsFold reports whether needle occurs in haystack ignoring case.
// An empty needle matches everything.
func ContainsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(FoldCase(haystack), FoldCase(needle))
}
