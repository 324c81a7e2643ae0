// Package helpers holds small presentation utilities used by callers that
// render loan and book data.
package helpers

import (
	"time"
	"unicode"
)

// FormatDate renders a timestamp as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// CapitalizeFirst upper-cases the first letter of s.
func CapitalizeFirst(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
