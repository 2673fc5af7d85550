// Package translit canonicalizes transliterated cuneiform spellings so that
// orthographic variants of the same attestation compare equal. Normalized
// forms are comparison keys only; the raw spelling stays in the corpus record
// for display.
package translit

import "strings"

// markerReplacer strips determinative classifiers and numeral-subscript
// glyphs, unifies sign separators, and folds ŋ to g. Patterns are matched
// against the lowercased spelling.
var markerReplacer = strings.NewReplacer(
	"{uru}", "",
	"{kur}", "",
	"{ki}", "",
	"₀", "",
	"₁", "",
	"₂", "",
	"₃", "",
	"₄", "",
	"₅", "",
	"₆", "",
	"₇", "",
	"₈", "",
	"₉", "",
	".", "-",
	"(", "",
	")", "",
	"ŋ", "g",
)

// Normalize returns the canonical comparison form of a transliteration.
// The transformation is deterministic and idempotent: lowercase, strip the
// {URU}/{KUR}/{KI} determinatives and subscript digits, replace "." with "-",
// drop parentheses, and map ŋ to g.
func Normalize(spelling string) string {
	return markerReplacer.Replace(strings.ToLower(spelling))
}

// NormalizeAll maps Normalize over a spelling list.
func NormalizeAll(spellings []string) []string {
	out := make([]string, len(spellings))
	for i, s := range spellings {
		out[i] = Normalize(s)
	}
	return out
}
