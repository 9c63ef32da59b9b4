// Package search ranks catalog entries against free-text queries. The
// index is a point-in-time snapshot of the catalog projection; rebuild
// it after a cache clear to pick up fresh content.
package search

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-cheatsheet/catalog"
)

// Index holds a scored-search snapshot over search entries. Add and
// the read operations are safe for concurrent use.
type Index struct {
	mu      sync.RWMutex
	entries []catalog.SearchEntry
}

// New copies the given entries into a fresh index. Later mutation of
// the caller's slice does not affect the snapshot.
func New(entries []catalog.SearchEntry) *Index {
	snapshot := make([]catalog.SearchEntry, len(entries))
	copy(snapshot, entries)
	return &Index{entries: snapshot}
}

// Entries returns the indexed entries in insertion order. The returned
// slice is a copy; appending concurrently never invalidates it.
func (idx *Index) Entries() []catalog.SearchEntry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	out := make([]catalog.SearchEntry, len(idx.entries))
	copy(out, idx.entries)
	return out
}

// Len reports the number of indexed entries.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.entries)
}

// Add appends an entry to the index. Duplicate IDs are not rejected;
// callers own dedup policy.
func (idx *Index) Add(entry catalog.SearchEntry) {
	idx.mu.Lock()
	idx.entries = append(idx.entries, entry)
	idx.mu.Unlock()
}

// Search scores every entry against the query terms and returns the
// matches in descending score order. Ties keep insertion order. Terms
// are whitespace-separated, lowercased, and single-character terms are
// ignored; a query with no usable terms matches nothing.
func (idx *Index) Search(query string) []catalog.SearchEntry {
	terms := queryTerms(query)
	if len(terms) == 0 {
		return nil
	}

	type scored struct {
		entry catalog.SearchEntry
		score int
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var matches []scored
	for _, entry := range idx.entries {
		title := strings.ToLower(entry.Title)
		category := strings.ToLower(entry.Category)
		blob := title + " " + strings.ToLower(entry.Content) + " " + category

		score := 0
		for _, term := range terms {
			if strings.Contains(title, term) {
				score += 10
			}
			if category != "" && strings.Contains(category, term) {
				score += 5
			}
			if strings.Contains(blob, term) {
				score++
			}
		}
		if score > 0 {
			matches = append(matches, scored{entry: entry, score: score})
		}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].score > matches[b].score
	})

	results := make([]catalog.SearchEntry, len(matches))
	for i, m := range matches {
		results[i] = m.entry
	}
	return results
}

func queryTerms(query string) []string {
	var terms []string
	for _, field := range strings.Fields(strings.ToLower(query)) {
		if len(field) > 1 {
			terms = append(terms, field)
		}
	}
	return terms
}
