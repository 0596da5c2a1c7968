package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NFD does not decompose the Polish stroked l, so it needs an explicit mapping.
var strokedL = strings.NewReplacer("ł", "l", "Ł", "l")

// Fold lowers casing, strips diacritics and collapses internal whitespace,
// producing a key suitable for fuzzy name comparison.
func Fold(s string) string {
	stripped, _, err := transform.String(stripMarks, s)
	if err != nil {
		stripped = s
	}
	stripped = strokedL.Replace(strings.ToLower(stripped))
	return strings.Join(strings.Fields(stripped), " ")
}
