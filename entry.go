package wordbook

// Entry is one processed vocabulary record: the headword plus its
// normalized, escaped meaning and usage text. Meaning and Usage are never
// "missing" — extraction that finds nothing yields empty strings.
type Entry struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
	Usage   string `json:"usage"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if e.Word == "" {
		return Errorf(EINVALID, "entry word required")
	}
	return nil
}

// WordPage pairs a headword with the URL of its dictionary page. Produced
// by archive discovery, consumed by the batch runner.
type WordPage struct {
	Word string `json:"word"`
	URL  string `json:"url"`
}

// EntryStore persists extracted entries as an append-only record file with
// exactly one header row followed by complete data rows.
type EntryStore interface {
	// Existing returns entries already present in the store, keyed by word.
	// A missing store is not an error and yields an empty map.
	Existing() (map[string]*Entry, error)

	// Open prepares the store for appending. With fresh true the store is
	// truncated and a new header written; otherwise rows are appended to
	// the existing file, which is assumed to already carry a header.
	Open(fresh bool) error

	// Append serializes one entry and flushes it to durable storage before
	// returning, so a crash loses at most the in-flight record.
	Append(e *Entry) error

	// Close releases the underlying file. Safe to call when never opened.
	Close() error
}
