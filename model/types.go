// Package model holds the shared data types passed between the engine's
// components: QueryForms, Candidate, WordMatch, FieldEval, ScoredHit, and
// the public Options/Reply shapes (spec §3 "Data Model").
package model

// QueryForms is the output of the QueryPreprocessor (spec §4.1).
type QueryForms struct {
	Original string
	Cleaned  string
	NoSpace  string
	Soundex  string

	WordsOriginal []string
	WordsCleaned  []string
	WordsNoSpace  []string

	OriginalLength int
	CleanedLength  int
	NoSpaceLength  int
}

// Candidate is a raw hit returned by the external index, modeled as a
// tagged struct with the engine's four required string fields plus an
// opaque attribute bag for everything else (spec §9 "Attribute bags as
// candidates"). Missing attributes read as "".
type Candidate struct {
	Name         string
	NameSearch   string
	NameNoSpace  string
	NameSoundex  string
	ID           string
	IDEtab       string
	Attrs        map[string]string
	DiscoveryStrategy string
	// MatchTypeOverride carries a pre-tagged exact_full hit from an upstream
	// exact-match path (spec §4.9 Open Questions): the engine never
	// synthesizes this tag, only recognizes it for the cap exception.
	MatchTypeOverride string
}

// Get reads an arbitrary attribute, returning "" when absent.
func (c Candidate) Get(name string) string {
	switch name {
	case "name":
		return c.Name
	case "name_search":
		return c.NameSearch
	case "name_no_space":
		return c.NameNoSpace
	case "name_soundex":
		return c.NameSoundex
	case "id":
		return c.ID
	case "id_etab":
		return c.IDEtab
	}
	if c.Attrs == nil {
		return ""
	}
	return c.Attrs[name]
}

// Identifier returns the id attribute, preferring "id" over "id_etab", and
// reports whether either was present (spec §7 "Missing identifier").
func (c Candidate) Identifier() (string, bool) {
	if c.ID != "" {
		return c.ID, true
	}
	if c.IDEtab != "" {
		return c.IDEtab, true
	}
	return "", false
}

// MatchKind enumerates the WordMatch classification.
type MatchKind string

const (
	MatchExact       MatchKind = "exact"
	MatchSynonym     MatchKind = "synonym"
	MatchLevenshtein MatchKind = "levenshtein"
)

// WordMatch is one query token aligned to one candidate token (spec §3).
type WordMatch struct {
	QueryWord   string
	MatchedWord string
	Distance    int
	Type        MatchKind
	Position    int
}

// Penalties is the convenience view of a FieldEval's penalty-relevant
// numbers, also used as the Ranker's tie-breaking key (spec §3, §4.8).
type Penalties struct {
	Missing           int
	AverageDistance   float64
	LengthRatio       float64
	ExtraLengthRatio  float64
}

// FieldEval is the output of scoring one field (spec §4.3).
type FieldEval struct {
	Found             []WordMatch
	NotFound          []string
	TotalDistance      int
	AverageDistance    float64
	FoundCount         int
	QueryCount         int
	ResultCount        int
	ExtraLength        int
	ExtraLengthRatio   float64
	LengthRatio        float64
	Penalties          Penalties
}

// MatchType is the engine's classification of a scored hit (spec §4.4 table
// plus the reserved upstream-only tag).
type MatchType string

const (
	MatchTypeExactFull        MatchType = "exact_full"
	MatchTypePartial          MatchType = "partial"
	MatchTypeNoSpaceMatch     MatchType = "no_space_match"
	MatchTypeExactWithExtras  MatchType = "exact_with_extras"
	MatchTypeExactWithMissing MatchType = "exact_with_missing"
	MatchTypeNearPerfect      MatchType = "near_perfect"
	MatchTypeFuzzyFull        MatchType = "fuzzy_full"
	MatchTypeFuzzyPartial     MatchType = "fuzzy_partial"
	MatchTypePhoneticStrict   MatchType = "phonetic_strict"
	MatchTypePhoneticTolerant MatchType = "phonetic_tolerant"
	MatchTypeHybrid           MatchType = "hybrid"
)

// MatchPriority maps a MatchType to its sort priority (spec §4.4 table; lower
// sorts first among ties on other keys is NOT implied — priority is used
// only where the spec calls it out, score comparisons dominate ranking).
var MatchPriority = map[MatchType]int{
	MatchTypeExactFull:        0,
	MatchTypeNoSpaceMatch:     1,
	MatchTypeExactWithExtras:  1,
	MatchTypeNearPerfect:      2,
	MatchTypePhoneticStrict:   3,
	MatchTypeExactWithMissing: 4,
	MatchTypeFuzzyFull:        5,
	MatchTypeHybrid:           6,
	MatchTypePhoneticTolerant: 7,
	MatchTypeFuzzyPartial:     8,
	MatchTypePartial:          9,
}

// ScoringMethod records which branch of the FinalCombiner produced the
// score (spec §4.6).
type ScoringMethod string

const (
	ScoringTextOnly        ScoringMethod = "text_only"
	ScoringWeighted        ScoringMethod = "weighted"
	ScoringPhoneticFallback ScoringMethod = "phonetic_fallback"
)

// ScoringWeights records the hybrid blend weights when ScoringMethod is
// ScoringWeighted.
type ScoringWeights struct {
	Text     float64
	Phonetic float64
}

// PhoneticDetails is an optional debug view of the phonetic sub-score.
type PhoneticDetails struct {
	MatchedCount int
	QueryCount   int
	Ratio        float64
	Tolerant     bool
}

// ScoredHit is a Candidate enriched with the engine's scoring output
// (spec §3).
type ScoredHit struct {
	Candidate Candidate

	Score            float64
	MatchType        MatchType
	MatchPriority    int
	ScoringMethod    ScoringMethod
	ScoringWeights   *ScoringWeights
	PhoneticDetails  *PhoneticDetails
	Capped           bool
	PenaltyIndices   Penalties

	// inputPosition is the hit's index in the deduplicated candidate list
	// before sorting, used as the final stability tie-breaker (spec §4.8).
	inputPosition int
}

// InputPosition returns the pre-sort position used for stable ordering.
func (h ScoredHit) InputPosition() int { return h.inputPosition }

// WithInputPosition returns a copy of h with its stability tie-breaker set.
func (h ScoredHit) WithInputPosition(pos int) ScoredHit {
	h.inputPosition = pos
	return h
}

// Options configures a Search call (spec §6).
type Options struct {
	Limit       int
	MaxDistance int
	Filters     interface{}
}

// DefaultOptions returns {Limit: 10, MaxDistance: 4}.
func DefaultOptions() Options {
	return Options{Limit: 10, MaxDistance: 4}
}

// Normalize clamps Options to their documented defaults/bounds (spec §7
// "Invalid options... are clamped, not rejected").
func (o Options) Normalize() Options {
	if o.Limit <= 0 {
		o.Limit = 10
	}
	if o.MaxDistance < 0 {
		o.MaxDistance = 0
	}
	return o
}

// Reply is the engine's Search response (spec §6).
type Reply struct {
	Hits              []ScoredHit
	Total             int
	HasExactResults   bool
	ExactCount        int
	TotalBeforeFilter int
	QueryTimeMs       int64
	Preprocessing     QueryForms
	FromCache         bool
	Error             string
}

// EmptyQueryReply is the sentinel reply for an empty user query (spec §6).
func EmptyQueryReply() Reply {
	return Reply{
		Hits:            []ScoredHit{},
		Total:           0,
		QueryTimeMs:     0,
		FromCache:       false,
		HasExactResults: false,
		Error:           "Empty query",
	}
}
