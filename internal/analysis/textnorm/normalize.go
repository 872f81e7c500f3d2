// Package textnorm produces the canonical comparison form of free text.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lower-cases s, strips diacritics, drops everything that is not
// an ASCII letter, a digit or whitespace, and trims the result.
// It never fails: empty or all-punctuation input yields "".
func Normalize(s string) string {
	lowered := strings.ToLower(s)

	// transform.Chain keeps state, build one per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	decomposed, _, err := transform.String(t, lowered)
	if err != nil {
		decomposed = lowered
	}

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(b.String())
}
