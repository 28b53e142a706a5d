package normalize

import "strings"

// frCode maps a lowercase consonant to its French Soundex digit. Letters not
// present here (vowels, h, w, x) are silent: they never contribute a digit,
// and they break run-length collapsing of a repeated consonant code, exactly
// like a vowel does in the classic American Soundex. French orthography
// frequently silences a trailing or medial "x" ("Bordeaux", "deux", "prix"),
// so unlike American Soundex it is treated as silent rather than coded.
var frCode = map[rune]byte{
	'b': '1', 'f': '1', 'p': '1', 'v': '1',
	'c': '2', 'g': '2', 'j': '2', 'k': '2', 'q': '2', 's': '2', 'z': '2',
	'd': '3', 't': '3',
	'l': '4',
	'm': '5', 'n': '5',
	'r': '6',
}

func isSilent(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y', 'h', 'w', 'x':
		return true
	}
	return false
}

// soundexFRWord computes the French Soundex code for a single word: the
// uppercased first letter followed by three digits (zero-padded), derived
// from the remaining consonants with vowels/h/w/x silent and breaking
// adjacent-duplicate collapsing.
func soundexFRWord(word string) string {
	runes := []rune(strings.ToLower(word))
	// keep only ASCII letters a-z; accented and other non-ASCII letters are dropped
	filtered := runes[:0:0]
	for _, r := range runes {
		if r >= 'a' && r <= 'z' {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == 0 {
		return ""
	}

	first := filtered[0]
	var digits []byte
	var lastCode byte

	for _, r := range filtered[1:] {
		if isSilent(r) {
			lastCode = 0
			continue
		}
		code, ok := frCode[r]
		if !ok {
			lastCode = 0
			continue
		}
		if code == lastCode {
			continue
		}
		digits = append(digits, code)
		lastCode = code
		if len(digits) == 3 {
			break
		}
	}

	for len(digits) < 3 {
		digits = append(digits, '0')
	}

	return strings.ToUpper(string(first)) + string(digits)
}

// SoundexFR computes a whitespace-separated sequence of French Soundex codes,
// one per whitespace-delimited token of s. Tokens that normalize to no
// letters at all are dropped, so SoundexFR may return "" for a string with
// no alphabetic content.
func SoundexFR(s string) string {
	tokens := strings.Fields(s)
	codes := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if code := soundexFRWord(tok); code != "" {
			codes = append(codes, code)
		}
	}
	return strings.Join(codes, " ")
}
