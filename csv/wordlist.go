package csv

import (
	"encoding/csv"
	"io"
	"os"
	"sort"

	"github.com/mwielgus/wordbook"
)

// wordListHeader is the two-column schema of the discovered word list.
var wordListHeader = []string{"Word", "URL"}

// ReadWordList reads the discovered word list at path in row order.
// A missing file is an error here: the extraction run has nothing to work
// from and must abort before any processing begins.
func ReadWordList(path string) ([]wordbook.WordPage, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, wordbook.Errorf(wordbook.ENOTFOUND, "word list %q not found", path)
	}
	if err != nil {
		return nil, wordbook.Errorf(wordbook.EINTERNAL, "failed to open %q: %v", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	// Header row.
	if _, err := r.Read(); err == io.EOF {
		return nil, nil
	} else if err != nil {
		return nil, wordbook.Errorf(wordbook.EINVALID, "failed to read header of %q: %v", path, err)
	}

	var pages []wordbook.WordPage
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wordbook.Errorf(wordbook.EINVALID, "failed to read %q: %v", path, err)
		}
		if len(row) < 2 {
			continue
		}
		pages = append(pages, wordbook.WordPage{Word: row[0], URL: row[1]})
	}

	return pages, nil
}

// WriteWordList rewrites the word list at path, sorted alphabetically by
// word, with a header row. Pages with duplicate words keep the last URL.
func WriteWordList(path string, pages []wordbook.WordPage) error {
	byWord := make(map[string]string, len(pages))
	for _, p := range pages {
		byWord[p.Word] = p.URL
	}
	words := make([]string, 0, len(byWord))
	for w := range byWord {
		words = append(words, w)
	}
	sort.Strings(words)

	f, err := os.Create(path)
	if err != nil {
		return wordbook.Errorf(wordbook.EINTERNAL, "failed to create %q: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(wordListHeader); err != nil {
		return wordbook.Errorf(wordbook.EINTERNAL, "failed to write header: %v", err)
	}
	for _, word := range words {
		if err := w.Write([]string{word, byWord[word]}); err != nil {
			return wordbook.Errorf(wordbook.EINTERNAL, "failed to write word %q: %v", word, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return wordbook.Errorf(wordbook.EINTERNAL, "failed to flush word list: %v", err)
	}
	return nil
}

// MergeWordLists combines an existing word list with newly discovered
// pages. New pages win on duplicate words; ordering is resolved by
// WriteWordList's alphabetical sort.
func MergeWordLists(existing, discovered []wordbook.WordPage) []wordbook.WordPage {
	merged := make([]wordbook.WordPage, 0, len(existing)+len(discovered))
	merged = append(merged, existing...)
	merged = append(merged, discovered...)
	return merged
}
