// Package strategy implements the StrategyRunner and deduplication
// (spec §4.7): it calls the index oracle once per applicable strategy and
// merges the results into one deduplicated candidate list.
package strategy

import (
	"context"

	"github.com/fulmenhq/meilirank/model"
)

// Name identifies one of the four discovery strategies, in the fixed
// dedup-priority order (spec §4.7).
type Name string

const (
	NameSearch Name = "name_search"
	NoSpace    Name = "no_space"
	Standard   Name = "standard"
	Phonetic   Name = "phonetic"
)

// Order is the fixed strategy precedence used for deduplication.
var Order = []Name{NameSearch, NoSpace, Standard, Phonetic}

// SearchOptions is what the Index oracle receives for one strategy call.
type SearchOptions struct {
	Limit                int
	SearchableAttributes []string
	Filters              interface{}
}

// Index is the narrow surface the runner needs from the engine's Index
// collaborator (spec §6).
type Index interface {
	Search(ctx context.Context, query string, opts SearchOptions) ([]model.Candidate, error)
}

// searchableAttrs maps each strategy to its index attribute restriction.
var searchableAttrs = map[Name][]string{
	NameSearch: {"name_search"},
	NoSpace:    {"name_no_space"},
	Standard:   {"name"},
	Phonetic:   {"name_soundex"},
}

// queryVariant picks the query string each strategy searches with.
func queryVariant(name Name, forms model.QueryForms) (string, bool) {
	switch name {
	case NameSearch:
		if forms.Cleaned != "" {
			return forms.Cleaned, true
		}
		return forms.Original, true
	case NoSpace:
		return forms.NoSpace, true
	case Standard:
		return forms.Original, true
	case Phonetic:
		if forms.Soundex == "" {
			return "", false
		}
		return forms.Soundex, true
	}
	return "", false
}

// Runner calls the index oracle per strategy and deduplicates.
type Runner struct {
	index Index
}

// New constructs a Runner backed by the given Index.
func New(index Index) Runner {
	return Runner{index: index}
}

// Hit pairs a raw Candidate with the strategy that discovered it.
type Hit struct {
	Candidate model.Candidate
	Strategy  Name
}

// Run executes every applicable strategy (skipping phonetic when soundex is
// empty) and returns the deduplicated, strategy-tagged hits plus the total
// count seen before deduplication (spec §4.7, used for total_before_filter).
func (r Runner) Run(ctx context.Context, forms model.QueryForms, limit int, filters interface{}) ([]Hit, int, error) {
	seen := make(map[string]bool)
	out := make([]Hit, 0, limit)
	totalBeforeFilter := 0

	for _, name := range Order {
		query, ok := queryVariant(name, forms)
		if !ok {
			continue
		}

		candidates, err := r.index.Search(ctx, query, SearchOptions{
			Limit:                limit,
			SearchableAttributes: searchableAttrs[name],
			Filters:              filters,
		})
		if err != nil {
			return nil, 0, err
		}

		totalBeforeFilter += len(candidates)
		for _, c := range candidates {
			id, ok := c.Identifier()
			if !ok {
				continue
			}
			if seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, Hit{Candidate: c, Strategy: name})
		}
	}

	return out, totalBeforeFilter, nil
}
