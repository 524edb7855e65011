package inventory

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName returns the NFC form of s with surrounding whitespace removed.
// Names are stored in this form so that visually identical input compares
// equal in searches regardless of how it was composed.
func NormalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// NormalizeTerm returns the NFC form of a search term. Unlike NormalizeName it
// keeps surrounding whitespace, which is part of the substring being matched.
func NormalizeTerm(s string) string {
	return norm.NFC.String(s)
}
