// Package normalize provides the text-normalization primitives the scoring
// engine treats as an external collaborator (spec §6 "Normalizer"):
// original/cleaned/no-space forms and a French phonetic code.
//
// Casefold and accent stripping are adapted from
// github.com/fulmenhq/gofulmen's foundry/similarity/normalize.go.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Casefold lowercases a string with strings.ToLower (Unicode lower-case
// mapping, not full Unicode case folding).
func Casefold(value string) string {
	return strings.ToLower(value)
}

// StripAccents removes diacritical marks from a string by decomposing to
// NFD, filtering combining marks (Unicode category Mn), and recomposing
// to NFC.
//
// Examples:
//   - StripAccents("café") returns "cafe"
//   - StripAccents("Zürich") returns "Zurich"
func StripAccents(value string) string {
	decomposed := norm.NFD.String(value)

	var builder strings.Builder
	builder.Grow(len(decomposed))
	for _, r := range decomposed {
		if !unicode.Is(unicode.Mn, r) {
			builder.WriteRune(r)
		}
	}

	return norm.NFC.String(builder.String())
}

// collapseSpaces replaces any run of whitespace with a single space and
// trims the result.
func collapseSpaces(value string) string {
	fields := strings.Fields(value)
	return strings.Join(fields, " ")
}

// NormalizeQuery produces the "original" query form: outer whitespace
// trimmed and internal whitespace runs collapsed, case and accents
// preserved.
func NormalizeQuery(s string) string {
	return collapseSpaces(s)
}

// CleanQuery produces the "cleaned" query form: lowercased, accent-folded,
// whitespace-collapsed.
func CleanQuery(s string) string {
	return collapseSpaces(StripAccents(Casefold(s)))
}

// NoSpace strips every whitespace character from the cleaned form.
func NoSpace(s string) string {
	cleaned := CleanQuery(s)
	var b strings.Builder
	b.Grow(len(cleaned))
	for _, r := range cleaned {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EqualsIgnoreCase compares a and b after Casefold + StripAccents.
func EqualsIgnoreCase(a, b string) bool {
	return StripAccents(Casefold(a)) == StripAccents(Casefold(b))
}
