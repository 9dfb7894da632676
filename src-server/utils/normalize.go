package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeSport cleans up a sport label coming from a query parameter so
// "basketball " still hits the "Basketball" category shortcut.
func NormalizeSport(s string) string {
	s = strings.TrimSpace(s)
	s = cases.Title(language.English).String(s)
	return s
}
