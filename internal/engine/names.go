package engine

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeName reduces a display name to its lookup key: case folded, diacritics
// stripped, and every rune that is not a letter or digit dropped.
func NormalizeName(name string) string {
	// Transformers and Casers carry state and must not be shared across goroutines.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, name)
	if err != nil {
		stripped = name
	}

	var b strings.Builder
	for _, r := range cases.Fold().String(stripped) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func SameName(a, b string) bool {
	return NormalizeName(a) == NormalizeName(b)
}

// Lookup returns the first roster entry whose name matches.
func Lookup(roster []RosterEntry, name string) (RosterEntry, bool) {
	key := NormalizeName(name)
	for _, e := range roster {
		if NormalizeName(e.Name) == key {
			return e, true
		}
	}
	return RosterEntry{}, false
}
