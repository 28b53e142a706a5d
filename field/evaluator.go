// Package field implements the FieldEvaluator (spec §4.3): it turns an
// Aligner result into the aggregate distances, ratios, and penalty view the
// scoring packages consume.
package field

import (
	"unicode/utf8"

	"github.com/fulmenhq/meilirank/align"
	"github.com/fulmenhq/meilirank/model"
)

// Evaluate computes a FieldEval for one field (spec §4.3). candidateTokens
// is the tokenized candidate field; queryText is the reference string used
// to compute extra_length_ratio (e.g. "cleaned" for name_search).
func Evaluate(aligned align.Result, candidateTokens []string, queryText string) model.FieldEval {
	totalDistance := 0
	for _, m := range aligned.Matches {
		totalDistance += m.Distance
	}

	foundCount := len(aligned.Matches)
	averageDistance := 0.0
	if foundCount > 0 {
		averageDistance = float64(totalDistance) / float64(foundCount)
	}

	q := foundCount + len(aligned.NotFound)
	r := len(candidateTokens)
	lengthRatio := 1.0
	if q > 0 && r > 0 {
		lengthRatio = ratio(minInt(q, r), maxInt(q, r))
	}

	extraLength := 0
	for pos, tok := range candidateTokens {
		if !aligned.UsedPositions[pos] {
			extraLength += utf8.RuneCountInString(tok)
		}
	}

	extraLengthRatio := 0.0
	if qlen := utf8.RuneCountInString(queryText); qlen > 0 {
		extraLengthRatio = float64(extraLength) / float64(qlen)
	}

	missing := len(aligned.NotFound)

	eval := model.FieldEval{
		Found:            aligned.Matches,
		NotFound:         aligned.NotFound,
		TotalDistance:    totalDistance,
		AverageDistance:  averageDistance,
		FoundCount:       foundCount,
		QueryCount:       q,
		ResultCount:      r,
		ExtraLength:      extraLength,
		ExtraLengthRatio: extraLengthRatio,
		LengthRatio:      lengthRatio,
	}
	eval.Penalties = model.Penalties{
		Missing:          missing,
		AverageDistance:  averageDistance,
		LengthRatio:      lengthRatio,
		ExtraLengthRatio: extraLengthRatio,
	}
	return eval
}

func ratio(a, b int) float64 {
	if b == 0 {
		return 1.0
	}
	return float64(a) / float64(b)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
