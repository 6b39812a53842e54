// Package csv provides delimited-record file storage for wordbook: the
// extracted entry store (Word,Meaning,Usage) and the discovered word list
// (Word,URL).
package csv

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/mwielgus/wordbook"
)

// entryHeader is the fixed three-column schema of the entry store.
var entryHeader = []string{"Word", "Meaning", "Usage"}

// Ensure Store implements wordbook.EntryStore at compile time.
var _ wordbook.EntryStore = (*Store)(nil)

// Store persists entries to a delimited-record file. Every field of every
// row is quoted unconditionally so meanings and usages may carry embedded
// commas and newlines; the escaper upstream guarantees fields contain no
// double quotes. Each append is flushed and synced before returning.
type Store struct {
	path string
	f    *os.File
}

// NewStore creates a Store backed by the file at path. The file is not
// touched until Open is called.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the store's file path.
func (s *Store) Path() string {
	return s.path
}

// Existing returns entries already present in the store, keyed by word.
// A missing file yields an empty map, not an error.
func (s *Store) Existing() (map[string]*wordbook.Entry, error) {
	return LoadEntries(s.path)
}

// Open prepares the store for appending. With fresh true the file is
// truncated and the header written; otherwise rows are appended to the
// existing file, which is assumed to already carry a header.
func (s *Store) Open(fresh bool) error {
	if s.f != nil {
		return wordbook.Errorf(wordbook.ECONFLICT, "store already open")
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_APPEND
	if fresh {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(s.path, flags, 0644)
	if err != nil {
		return wordbook.Errorf(wordbook.EINTERNAL, "failed to open store %q: %v", s.path, err)
	}
	s.f = f

	if fresh {
		if _, err := f.WriteString(quoteRow(entryHeader)); err != nil {
			return wordbook.Errorf(wordbook.EINTERNAL, "failed to write header: %v", err)
		}
	}
	return nil
}

// Append serializes one entry and syncs it to disk before returning.
func (s *Store) Append(e *wordbook.Entry) error {
	if s.f == nil {
		return wordbook.Errorf(wordbook.ECONFLICT, "store not open")
	}
	if err := e.Validate(); err != nil {
		return err
	}

	row := quoteRow([]string{e.Word, e.Meaning, e.Usage})
	if _, err := s.f.WriteString(row); err != nil {
		return wordbook.Errorf(wordbook.EINTERNAL, "failed to write entry %q: %v", e.Word, err)
	}
	if err := s.f.Sync(); err != nil {
		return wordbook.Errorf(wordbook.EINTERNAL, "failed to sync store: %v", err)
	}
	return nil
}

// Close releases the underlying file. Safe to call when never opened.
func (s *Store) Close() error {
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}

// LoadEntries reads the entry file at path into a map keyed by word.
// A missing file yields an empty map. Short rows are tolerated: any row
// with at least one field counts as present, keyed on its first field,
// with the missing fields defaulting to empty strings.
func LoadEntries(path string) (map[string]*wordbook.Entry, error) {
	entries := make(map[string]*wordbook.Entry)

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return entries, nil
	}
	if err != nil {
		return nil, wordbook.Errorf(wordbook.EINTERNAL, "failed to open %q: %v", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	// Header row.
	if _, err := r.Read(); err == io.EOF {
		return entries, nil
	} else if err != nil {
		return nil, wordbook.Errorf(wordbook.EINVALID, "failed to read header of %q: %v", path, err)
	}

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wordbook.Errorf(wordbook.EINVALID, "failed to read %q: %v", path, err)
		}
		if len(row) < 1 {
			continue
		}

		e := &wordbook.Entry{Word: row[0]}
		if len(row) > 1 {
			e.Meaning = row[1]
		}
		if len(row) > 2 {
			e.Usage = row[2]
		}
		entries[e.Word] = e
	}

	return entries, nil
}

// ListEntries reads the entry file at path preserving row order. Used by
// the browse index, which needs stable prev/next navigation.
func ListEntries(path string) ([]*wordbook.Entry, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, wordbook.Errorf(wordbook.ENOTFOUND, "entry file %q not found", path)
	}
	if err != nil {
		return nil, wordbook.Errorf(wordbook.EINTERNAL, "failed to open %q: %v", path, err)
	}
	defer f.Close()

	return ParseEntries(f)
}

// ParseEntries reads entry rows from r in row order, skipping the header.
func ParseEntries(reader io.Reader) ([]*wordbook.Entry, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1

	if _, err := r.Read(); err == io.EOF {
		return nil, nil
	} else if err != nil {
		return nil, wordbook.Errorf(wordbook.EINVALID, "failed to read header: %v", err)
	}

	var entries []*wordbook.Entry
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wordbook.Errorf(wordbook.EINVALID, "failed to read row: %v", err)
		}
		if len(row) < 1 {
			continue
		}

		e := &wordbook.Entry{Word: row[0]}
		if len(row) > 1 {
			e.Meaning = row[1]
		}
		if len(row) > 2 {
			e.Usage = row[2]
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// quoteRow serializes one row with every field quoted. Internal double
// quotes are doubled per the quoting convention, though escaped fields
// never contain them.
func quoteRow(fields []string) string {
	var b strings.Builder
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
	return b.String()
}
