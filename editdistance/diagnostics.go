package editdistance

import "github.com/antzucaro/matchr"

// TranspositionDistance reports the unrestricted Damerau-Levenshtein distance
// (insertions, deletions, substitutions, and transpositions), which scores
// adjacent-letter typos ("hte" vs "the") one edit cheaper than plain
// Levenshtein. Neither the scoring pipeline nor engine.DiagnoseQuery calls
// it; both use the plain Levenshtein distance.
func TranspositionDistance(a, b string) int {
	return matchr.DamerauLevenshtein(a, b)
}

// Similarity returns the Jaro-Winkler similarity of a and b in [0.0, 1.0].
// No other package in this module calls it.
func Similarity(a, b string) float64 {
	return matchr.JaroWinkler(a, b, false)
}
