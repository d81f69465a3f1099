package extractor

import (
	"strings"
	"unicode"

	"github.com/umisama/go-regexpcache"
)

// Normalize collapses whitespace runs to a single space, trims the result
// and drops non-printable control characters, so the value fits one CSV cell.
// Normalizing an already normalized string returns it unchanged.
func Normalize(value string) string {
	// Drop control characters that are not whitespace
	value = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, value)

	// Collapse whitespace runs, incl. newlines and tabs
	value = regexpcache.MustCompile(`\s+`).ReplaceAllString(value, " ")

	return strings.TrimSpace(value)
}
