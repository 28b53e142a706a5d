// Package query implements the QueryPreprocessor (spec §4.1): it turns a raw
// user string into model.QueryForms.
package query

import (
	"strings"
	"unicode/utf8"

	"github.com/fulmenhq/meilirank/model"
)

// Normalizer is the narrow surface the preprocessor needs from the engine's
// Normalizer collaborator (spec §6).
type Normalizer interface {
	NormalizeQuery(s string) string
	CleanQuery(s string) string
	SoundexFR(s string) string
}

// Preprocessor builds QueryForms from raw input.
type Preprocessor struct {
	normalizer Normalizer
}

// New constructs a Preprocessor backed by the given Normalizer.
func New(normalizer Normalizer) Preprocessor {
	return Preprocessor{normalizer: normalizer}
}

// Process builds the QueryForms for raw. Trims outer whitespace; if the
// trimmed string is empty, returns a QueryForms with OriginalLength == 0 and
// every sequence empty (callers detect this and short-circuit per spec
// §4.1).
func (p Preprocessor) Process(raw string) model.QueryForms {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return model.QueryForms{
			WordsOriginal: []string{},
			WordsCleaned:  []string{},
			WordsNoSpace:  []string{},
		}
	}

	original := p.normalizer.NormalizeQuery(trimmed)
	cleaned := p.normalizer.CleanQuery(trimmed)
	noSpace := removeWhitespace(cleaned)
	soundex := p.normalizer.SoundexFR(trimmed)

	return model.QueryForms{
		Original:       original,
		Cleaned:        cleaned,
		NoSpace:        noSpace,
		Soundex:        soundex,
		WordsOriginal:  tokenize(original),
		WordsCleaned:   tokenize(cleaned),
		WordsNoSpace:   []string{noSpace},
		OriginalLength: utf8.RuneCountInString(original),
		CleanedLength:  utf8.RuneCountInString(cleaned),
		NoSpaceLength:  utf8.RuneCountInString(noSpace),
	}
}

// tokenize splits on runs of whitespace, discarding empty tokens, and
// lowercases every token (spec §4.1, §3 invariant "all tokens... lowercased").
func tokenize(s string) []string {
	fields := strings.Fields(s)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, strings.ToLower(f))
	}
	return tokens
}

func removeWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
