// Package match provides locale-aware string matching primitives for the
// date grammar: diacritic folding, name dictionaries with ambiguity
// detection, unambiguous partial-prefix lookup, collator-backed fuzzy
// comparison, and a regex pattern compiler for name alternations.
//
// Three lookup layers are provided:
//
//   - Dict: a folded surface-form → integer table built from ordered name
//     arrays. Conflicting duplicate keys resolve to the Ambiguous sentinel.
//   - Find / FindPartial: exact-first lookup with an unambiguous-prefix
//     fallback, retried with case/diacritic folding.
//   - Folder: collation-based equality and prefix tests with configurable
//     case, numeric, and punctuation sensitivity.
//
// All exported types are immutable after construction and safe for
// concurrent use by multiple goroutines.
package match

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Ambiguous is the sentinel value stored for a dictionary key that was
// inserted twice with different values. Lookups treat it as "no single
// answer": it is returned as-is so callers can distinguish ambiguity
// from absence, but FindPartial never resolves a multi-hit prefix to it.
const Ambiguous = math.MinInt32

// stripper removes combining marks after canonical decomposition.
var stripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripDiacritics returns s with all combining marks removed
// ("février" → "fevrier"). Invalid UTF-8 is passed through unchanged.
func StripDiacritics(s string) string {
	out, _, err := transform.String(stripper, s)
	if err != nil {
		return s
	}
	return out
}

// Fold lowercases s with the casing rules of tag and strips diacritics.
// This is the canonical key form used by Dict for loose lookups.
func Fold(tag language.Tag, s string) string {
	return StripDiacritics(cases.Lower(tag).String(s))
}

// FoldSpace is Fold plus inner-whitespace normalization: runs of spaces
// collapse to a single space. Multi-word surface forms ("bazar ertəsi"
// style compounds) fold to a stable key regardless of source spacing.
func FoldSpace(tag language.Tag, s string) string {
	return strings.Join(strings.Fields(Fold(tag, s)), " ")
}
