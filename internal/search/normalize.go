package search

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// nameFolder lower-cases names and queries for containment checks. Text is
// not normalized, so a decomposed name only matches a decomposed query. A
// Caser is stateful, so each search gets its own folder.
type nameFolder struct {
	lower cases.Caser
}

func newNameFolder() *nameFolder {
	return &nameFolder{lower: cases.Lower(language.Und)}
}

func (f *nameFolder) fold(s string) string {
	if s == "" {
		return s
	}
	if isASCIILower(s) {
		return s
	}
	return f.lower.String(s)
}

func isASCIILower(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 || (c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}
