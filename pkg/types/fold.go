package types

import (
	"strings"

	"golang.org/x/text/cases"
)

// SameText reports whether a and b are equal under Unicode case folding,
// ignoring surrounding whitespace.
func SameText(a, b string) bool {
	fold := cases.Fold()
	return fold.String(strings.TrimSpace(a)) == fold.String(strings.TrimSpace(b))
}
