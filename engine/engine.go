// Package engine wires the preprocessing, alignment, scoring, strategy,
// ranking, cache, and synonym packages into the public Search and Admin
// API (spec §6).
package engine

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/fulmenhq/meilirank/align"
	"github.com/fulmenhq/meilirank/apperrors"
	"github.com/fulmenhq/meilirank/cache"
	"github.com/fulmenhq/meilirank/editdistance"
	"github.com/fulmenhq/meilirank/field"
	"github.com/fulmenhq/meilirank/model"
	"github.com/fulmenhq/meilirank/query"
	"github.com/fulmenhq/meilirank/rank"
	"github.com/fulmenhq/meilirank/score"
	"github.com/fulmenhq/meilirank/strategy"
	"github.com/fulmenhq/meilirank/synonym"
)

// IndexSearchOptions is the options shape passed to the Index oracle for
// one strategy call (spec §6). It is a type alias for strategy.SearchOptions
// so that any Index implementation satisfies strategy.Index without an
// adapter shim.
type IndexSearchOptions = strategy.SearchOptions

// Index is the external index oracle collaborator (spec §6).
type Index = strategy.Index

// Normalizer is the external normalizer collaborator (spec §6). Its
// methods use only builtin parameter types, so any concrete normalizer
// also satisfies query.Normalizer without adaptation.
type Normalizer interface {
	NormalizeQuery(s string) string
	CleanQuery(s string) string
	SoundexFR(s string) string
}

// EditDistance is the external edit-distance collaborator (spec §6). Its
// methods use only builtin parameter types, so any concrete implementation
// also satisfies align.EditDistance and score.EditDistance.
type EditDistance interface {
	Distance(a, b string, ceiling int) int
	DynamicMax(word string) int
}

// Engine wires every component together behind the Search and Admin API.
type Engine struct {
	index        Index
	normalizer   Normalizer
	distance     EditDistance
	synonyms     *synonym.Table
	resultCache  *cache.Cache
	preprocessor query.Preprocessor
	aligner      align.Aligner
	runner       strategy.Runner

	recentNamesMu sync.Mutex
	recentNames   []string
	recentCap     int

	nowFn func() time.Time
}

// New constructs an Engine from its required collaborators (spec §6:
// "engine.New accepts all three plus a *synonym.Table and *cache.Cache").
func New(index Index, normalizer Normalizer, distance EditDistance, synonyms *synonym.Table, resultCache *cache.Cache) *Engine {
	if synonyms == nil {
		synonyms = synonym.New()
	}
	if resultCache == nil {
		resultCache = cache.New(time.Hour, 1000)
	}

	return &Engine{
		index:        index,
		normalizer:   normalizer,
		distance:     distance,
		synonyms:     synonyms,
		resultCache:  resultCache,
		preprocessor: query.New(normalizer),
		aligner:      align.New(synonyms, distance),
		runner:       strategy.New(index),
		recentCap:    256,
		nowFn:        time.Now,
	}
}

func tokenizeField(s string) []string {
	fields := strings.Fields(s)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, strings.ToLower(f))
	}
	return tokens
}

// Search is the public Search API (spec §6).
func (e *Engine) Search(ctx context.Context, userQuery string, opts model.Options) (model.Reply, error) {
	start := e.nowFn()
	opts = opts.Normalize()

	forms := e.preprocessor.Process(userQuery)
	if forms.OriginalLength == 0 {
		return model.EmptyQueryReply(), nil
	}

	key := cache.Key(userQuery, opts)
	if cached, ok := e.resultCache.Get(key); ok {
		return cached, nil
	}

	hits, totalBeforeFilter, err := e.runner.Run(ctx, forms, opts.Limit, opts.Filters)
	if err != nil {
		return model.Reply{}, apperrors.IndexError("strategy_runner", err)
	}

	scored := make([]model.ScoredHit, 0, len(hits))
	for i, h := range hits {
		scored = append(scored, e.scoreHit(forms, h, opts).WithInputPosition(i))
		e.rememberName(h.Candidate.Name)
	}

	sorted := rank.Sort(scored)
	chosen, exactCount, hasExact := rank.Select(sorted, opts.Limit)

	reply := model.Reply{
		Hits:              chosen,
		Total:             len(sorted),
		HasExactResults:   hasExact,
		ExactCount:        exactCount,
		TotalBeforeFilter: totalBeforeFilter,
		QueryTimeMs:       e.nowFn().Sub(start).Milliseconds(),
		Preprocessing:     forms,
		FromCache:         false,
	}

	e.resultCache.Set(key, reply)
	return reply, nil
}

func (e *Engine) scoreHit(forms model.QueryForms, h strategy.Hit, opts model.Options) model.ScoredHit {
	c := h.Candidate

	nameSearchTokens := tokenizeField(c.NameSearch)
	noSpaceTokens := tokenizeField(c.NameNoSpace)
	nameTokens := tokenizeField(c.Name)

	nameSearchAligned := e.aligner.Align(forms.WordsCleaned, nameSearchTokens, opts.MaxDistance)
	noSpaceAligned := e.aligner.Align(forms.WordsNoSpace, noSpaceTokens, opts.MaxDistance)
	nameAligned := e.aligner.Align(forms.WordsOriginal, nameTokens, opts.MaxDistance)

	nameSearchEval := field.Evaluate(nameSearchAligned, nameSearchTokens, forms.Cleaned)
	noSpaceEval := field.Evaluate(noSpaceAligned, noSpaceTokens, forms.NoSpace)
	nameEval := field.Evaluate(nameAligned, nameTokens, forms.Original)

	main := score.Main(nameSearchEval, noSpaceEval, nameEval, len(forms.WordsOriginal))
	phonetic := score.Phonetic(e.distance, forms.Soundex, c.NameSoundex)

	combined := score.Combine(main, phonetic)

	matchType := combined.MatchType
	capCheckType := combined.MatchType
	if c.MatchTypeOverride == string(model.MatchTypeExactFull) {
		matchType = model.MatchTypeExactFull
		capCheckType = model.MatchTypeExactFull
	}

	finalScore, capped := score.ApplyExactCap(combined.Score, capCheckType)

	priority, ok := model.MatchPriority[matchType]
	if !ok {
		priority = main.MatchPriority
	}

	var phoneticDetails *model.PhoneticDetails
	if phonetic != nil {
		d := phonetic.Details
		phoneticDetails = &d
	}

	return model.ScoredHit{
		Candidate:       c,
		Score:           finalScore,
		MatchType:       matchType,
		MatchPriority:   priority,
		ScoringMethod:   combined.Method,
		ScoringWeights:  combined.Weights,
		PhoneticDetails: phoneticDetails,
		Capped:          capped,
		PenaltyIndices:  main.PenaltyIndices,
	}
}

func (e *Engine) rememberName(name string) {
	if name == "" {
		return
	}
	e.recentNamesMu.Lock()
	defer e.recentNamesMu.Unlock()

	for _, existing := range e.recentNames {
		if existing == name {
			return
		}
	}
	e.recentNames = append(e.recentNames, name)
	if len(e.recentNames) > e.recentCap {
		e.recentNames = e.recentNames[len(e.recentNames)-e.recentCap:]
	}
}

// SetSynonyms replaces the synonym table (spec §6 Admin API).
func (e *Engine) SetSynonyms(table *synonym.Table) {
	e.synonyms.Replace(table)
}

// GetSynonyms returns an independent snapshot of the synonym table.
func (e *Engine) GetSynonyms() *synonym.Table {
	return e.synonyms.Snapshot()
}

// ClearCache empties the result cache.
func (e *Engine) ClearCache() {
	e.resultCache.Clear()
}

// CacheStats reports the result cache's current size, capacity, and ttl.
func (e *Engine) CacheStats() cache.Stats {
	return e.resultCache.Stats()
}

// Diagnosis is one DiagnoseQuery hint (spec §4.11).
type Diagnosis struct {
	Value string
	Score float64
}

// DiagnoseQuery returns up to three "did you mean" hints against the
// recent-candidate-name sample, using editdistance.Suggest (spec §4.11).
// Diagnostics only: never feeds back into Search scoring.
func (e *Engine) DiagnoseQuery(q string) []Diagnosis {
	e.recentNamesMu.Lock()
	sample := append([]string(nil), e.recentNames...)
	e.recentNamesMu.Unlock()

	suggestions := editdistance.Suggest(q, sample, editdistance.DefaultSuggestOptions())
	out := make([]Diagnosis, len(suggestions))
	for i, s := range suggestions {
		out[i] = Diagnosis{Value: s.Value, Score: s.Score}
	}
	return out
}
