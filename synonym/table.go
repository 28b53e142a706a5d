// Package synonym implements the SynonymTable (spec §3, §4.2, §4.10): a
// replaceable, concurrency-safe mapping from lowercased tokens to
// equivalence classes.
package synonym

import (
	"sort"
	"strings"
	"sync"

	"go.uber.org/multierr"
)

// Table holds normalized bidirectional equivalence classes. The zero value
// is a usable, empty table.
type Table struct {
	mu      sync.RWMutex
	classOf map[string]int
	members map[int][]string
	nextID  int
}

// New constructs an empty Table.
func New() *Table {
	return &Table{
		classOf: make(map[string]int),
		members: make(map[int][]string),
	}
}

// Register merges base and synonyms (lowercased, deduplicated) into one
// equivalence class, unioning with any existing classes the members already
// belong to. An empty base with no synonyms is a no-op.
func (t *Table) Register(base string, synonyms ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	words := make([]string, 0, len(synonyms)+1)
	if strings.TrimSpace(base) != "" {
		words = append(words, strings.ToLower(strings.TrimSpace(base)))
	}
	for _, s := range synonyms {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			words = append(words, s)
		}
	}
	if len(words) == 0 {
		return
	}
	if t.classOf == nil {
		t.classOf = make(map[string]int)
	}
	if t.members == nil {
		t.members = make(map[int][]string)
	}

	// Collect every existing class touched by this registration.
	classes := make(map[int]struct{})
	for _, w := range words {
		if id, ok := t.classOf[w]; ok {
			classes[id] = struct{}{}
		}
	}

	var targetID int
	if len(classes) == 0 {
		t.nextID++
		targetID = t.nextID
		t.members[targetID] = nil
	} else {
		// Merge every touched class into the smallest id for determinism.
		ids := make([]int, 0, len(classes))
		for id := range classes {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		targetID = ids[0]
		for _, id := range ids[1:] {
			for _, m := range t.members[id] {
				t.classOf[m] = targetID
				t.members[targetID] = appendUnique(t.members[targetID], m)
			}
			delete(t.members, id)
		}
	}

	for _, w := range words {
		if t.classOf[w] != targetID {
			t.classOf[w] = targetID
			t.members[targetID] = appendUnique(t.members[targetID], w)
		}
	}
}

func appendUnique(members []string, w string) []string {
	for _, m := range members {
		if m == w {
			return members
		}
	}
	return append(members, w)
}

// SameClass reports whether a and b (compared case-insensitively) belong to
// the same registered equivalence class. Unregistered tokens are never
// equivalent to anything, including themselves via this check (identity is
// handled separately by exact-match comparison).
func (t *Table) SameClass(a, b string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	a = strings.ToLower(a)
	b = strings.ToLower(b)
	idA, okA := t.classOf[a]
	idB, okB := t.classOf[b]
	return okA && okB && idA == idB
}

// Classes returns a stable-ordered snapshot of every equivalence class with
// more than one member, sorted by class id then lexicographically within
// the class.
func (t *Table) Classes() [][]string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]int, 0, len(t.members))
	for id := range t.members {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([][]string, 0, len(ids))
	for _, id := range ids {
		if len(t.members[id]) < 2 {
			continue
		}
		members := append([]string(nil), t.members[id]...)
		sort.Strings(members)
		out = append(out, members)
	}
	return out
}

// Replace atomically swaps t's contents with other's (engine.SetSynonyms).
// A nil other resets t to empty.
func (t *Table) Replace(other *Table) {
	var classOf map[string]int
	var members map[int][]string
	var nextID int

	if other != nil {
		other.mu.RLock()
		classOf = make(map[string]int, len(other.classOf))
		for k, v := range other.classOf {
			classOf[k] = v
		}
		members = make(map[int][]string, len(other.members))
		for id, m := range other.members {
			members[id] = append([]string(nil), m...)
		}
		nextID = other.nextID
		other.mu.RUnlock()
	} else {
		classOf = make(map[string]int)
		members = make(map[int][]string)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.classOf = classOf
	t.members = members
	t.nextID = nextID
}

// Snapshot returns an independent deep copy of t, safe to hand to a caller
// (engine.GetSynonyms).
func (t *Table) Snapshot() *Table {
	t.mu.RLock()
	defer t.mu.RUnlock()

	clone := New()
	clone.nextID = t.nextID
	for k, v := range t.classOf {
		clone.classOf[k] = v
	}
	for id, members := range t.members {
		clone.members[id] = append([]string(nil), members...)
	}
	return clone
}

// ValidationError collects per-entry validation failures from RegisterAll.
type ValidationError struct {
	Errors error
}

func (e *ValidationError) Error() string { return e.Errors.Error() }

// RegisterAll registers a batch of {base: synonyms} entries one at a time
// (each entry takes the table lock separately, so the batch as a whole is
// not atomic), skipping and collecting an error for any base that is empty
// after trimming; valid entries are still applied even when some entries
// fail.
func (t *Table) RegisterAll(entries map[string][]string) error {
	var errs error
	// Sort keys for deterministic error ordering.
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, base := range keys {
		if strings.TrimSpace(base) == "" {
			errs = multierr.Append(errs, &ValidationError{Errors: errEmptyBase(base)})
			continue
		}
		t.Register(base, entries[base]...)
	}
	if errs != nil {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func errEmptyBase(base string) error {
	return emptyBaseError(base)
}

type emptyBaseError string

func (e emptyBaseError) Error() string {
	return "synonym base is empty: " + string(e)
}
