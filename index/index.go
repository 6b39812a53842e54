// Package index holds the in-memory browse index over the extracted entry
// file. The index is built explicitly at startup, rebuilt on demand, and
// safe for concurrent readers; it never mutates behind their backs.
package index

import (
	"bytes"
	"math/rand"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/mwielgus/wordbook"
	"github.com/mwielgus/wordbook/csv"
)

// SortOrder selects how word listings are ordered.
type SortOrder string

const (
	SortAlphabetical SortOrder = "alphabetical"
	SortReverse      SortOrder = "reverse"
)

// Index is a read-optimized view over the entry file.
type Index struct {
	path string

	mu      sync.RWMutex
	entries []*wordbook.Entry
	byWord  map[string]*wordbook.Entry
	hash    uint64
	loaded  bool
}

// New creates an Index over the entry file at path. Call Reload before use.
func New(path string) *Index {
	return &Index{path: path}
}

// Path returns the entry file the index was built from.
func (ix *Index) Path() string {
	return ix.path
}

// Reload rebuilds the index from the entry file. When the file's content
// hash is unchanged since the last load, the rebuild is skipped and Reload
// reports false.
func (ix *Index) Reload() (bool, error) {
	data, err := os.ReadFile(ix.path)
	if os.IsNotExist(err) {
		return false, wordbook.Errorf(wordbook.ENOTFOUND, "entry file %q not found", ix.path)
	}
	if err != nil {
		return false, wordbook.Errorf(wordbook.EINTERNAL, "failed to read %q: %v", ix.path, err)
	}

	hash := xxhash.Sum64(data)

	ix.mu.Lock()
	defer ix.mu.Unlock()

	if ix.loaded && hash == ix.hash {
		return false, nil
	}

	entries, err := csv.ParseEntries(bytes.NewReader(data))
	if err != nil {
		return false, err
	}

	byWord := make(map[string]*wordbook.Entry, len(entries))
	for _, e := range entries {
		byWord[strings.ToLower(e.Word)] = e
	}

	ix.entries = entries
	ix.byWord = byWord
	ix.hash = hash
	ix.loaded = true
	return true, nil
}

// Len returns the number of indexed entries.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.entries)
}

// Get returns the entry for word, matched case-insensitively.
// Returns ENOTFOUND when the word is not indexed.
func (ix *Index) Get(word string) (*wordbook.Entry, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	e, ok := ix.byWord[strings.ToLower(word)]
	if !ok {
		return nil, wordbook.Errorf(wordbook.ENOTFOUND, "word %q not found", word)
	}
	return e, nil
}

// Neighbors returns the words before and after the given word in file
// order, for prev/next navigation. Missing neighbors are empty strings.
func (ix *Index) Neighbors(word string) (prev, next string) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	lower := strings.ToLower(word)
	for i, e := range ix.entries {
		if strings.ToLower(e.Word) != lower {
			continue
		}
		if i > 0 {
			prev = ix.entries[i-1].Word
		}
		if i < len(ix.entries)-1 {
			next = ix.entries[i+1].Word
		}
		return prev, next
	}
	return "", ""
}

// At returns the entry at position i in file order, wrapping around both
// ends. Used by study mode. Returns nil when the index is empty.
func (ix *Index) At(i int) *wordbook.Entry {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	n := len(ix.entries)
	if n == 0 {
		return nil
	}
	return ix.entries[((i%n)+n)%n]
}

// Random returns a random entry, or nil when the index is empty.
func (ix *Index) Random() *wordbook.Entry {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if len(ix.entries) == 0 {
		return nil
	}
	return ix.entries[rand.Intn(len(ix.entries))]
}

// Search returns up to limit entries whose word or meaning contains the
// query, case-insensitively, in file order. An empty query returns nothing.
func (ix *Index) Search(query string, limit int) []*wordbook.Entry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var results []*wordbook.Entry
	for _, e := range ix.entries {
		if limit > 0 && len(results) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(e.Word), query) ||
			strings.Contains(strings.ToLower(e.Meaning), query) {
			results = append(results, e)
		}
	}
	return results
}

// PageResult is one page of a filtered, sorted word listing.
type PageResult struct {
	Entries      []*wordbook.Entry
	Page         int
	TotalPages   int
	TotalResults int
}

// Page returns one page of the listing. Search filters on word or meaning
// substring; order selects the sort; perPage bounds the page size.
func (ix *Index) Page(page, perPage int, search string, order SortOrder) PageResult {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 50
	}

	filtered := ix.Search(search, 0)
	if strings.TrimSpace(search) == "" {
		ix.mu.RLock()
		filtered = append([]*wordbook.Entry(nil), ix.entries...)
		ix.mu.RUnlock()
	}

	switch order {
	case SortReverse:
		sort.SliceStable(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Word) > strings.ToLower(filtered[j].Word)
		})
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Word) < strings.ToLower(filtered[j].Word)
		})
	}

	total := len(filtered)
	totalPages := (total + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	return PageResult{
		Entries:      filtered[start:end],
		Page:         page,
		TotalPages:   totalPages,
		TotalResults: total,
	}
}
