// Package align implements the WordAligner (spec §4.2): greedy one-to-one
// alignment of query tokens to candidate tokens using exact, synonym, and
// bounded-Levenshtein matching.
package align

import (
	"github.com/fulmenhq/meilirank/model"
)

// SynonymChecker is the narrow surface the aligner needs from the engine's
// SynonymTable collaborator.
type SynonymChecker interface {
	SameClass(a, b string) bool
}

// EditDistance is the narrow surface the aligner needs from the engine's
// EditDistance collaborator (spec §6).
type EditDistance interface {
	Distance(a, b string, ceiling int) int
	DynamicMax(word string) int
}

// Aligner aligns query tokens against candidate tokens.
type Aligner struct {
	synonyms SynonymChecker
	distance EditDistance
}

// New constructs an Aligner backed by the given collaborators.
func New(synonyms SynonymChecker, distance EditDistance) Aligner {
	return Aligner{synonyms: synonyms, distance: distance}
}

// Result is the output of Align: the matches found and the set of
// candidate-token positions each one consumed.
type Result struct {
	Matches      []model.WordMatch
	NotFound     []string
	UsedPositions map[int]bool
}

// Align aligns queryTokens against candidateTokens under a per-request
// ceiling maxDistance (L). Each candidate position is consumed by at most
// one query token (spec §3 invariant "token alignment is one-to-one").
func (a Aligner) Align(queryTokens, candidateTokens []string, maxDistance int) Result {
	result := Result{
		Matches:       make([]model.WordMatch, 0, len(queryTokens)),
		NotFound:      make([]string, 0),
		UsedPositions: make(map[int]bool, len(queryTokens)),
	}

	for _, q := range queryTokens {
		bestPos := -1
		bestDist := -1
		bestKind := model.MatchLevenshtein

	scan:
		for pos, c := range candidateTokens {
			if result.UsedPositions[pos] {
				continue
			}

			if q == c {
				bestPos, bestDist, bestKind = pos, 0, model.MatchExact
				break scan
			}
			if a.synonyms.SameClass(q, c) {
				bestPos, bestDist, bestKind = pos, 0, model.MatchSynonym
				break scan
			}

			bound := maxDistance
			if dyn := a.distance.DynamicMax(q); dyn < bound {
				bound = dyn
			}
			d := a.distance.Distance(q, c, bound)
			if bestDist == -1 || d < bestDist {
				bestPos, bestDist, bestKind = pos, d, model.MatchLevenshtein
			}
		}

		if bestPos == -1 || bestDist > maxDistance {
			result.NotFound = append(result.NotFound, q)
			continue
		}

		result.UsedPositions[bestPos] = true
		result.Matches = append(result.Matches, model.WordMatch{
			QueryWord:   q,
			MatchedWord: candidateTokens[bestPos],
			Distance:    bestDist,
			Type:        bestKind,
			Position:    bestPos,
		})
	}

	return result
}
