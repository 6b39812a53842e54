package wordbook

// ExtractResult holds the fields pulled from one dictionary page.
type ExtractResult struct {
	// Word is the headword from the page's primary heading. Empty when the
	// page has no heading; callers substitute the word they already know.
	Word string

	// Meaning is the labeled meaning block. Tabular layouts become
	// tab-separated "cell1\tcell2" lines; free-text layouts keep their text
	// with newline runs collapsed. Already escaped for record output.
	Meaning string

	// Usage is the labeled usage block with paragraph breaks preserved as
	// blank lines and trailing "see more examples" boilerplate removed.
	// Already escaped for record output.
	Usage string
}

// Extractor pulls the headword, meaning and usage fields out of a raw
// dictionary page.
type Extractor interface {
	// Extract parses the page and returns its fields. It returns an error
	// only when the markup cannot be parsed at all; a page that merely
	// lacks labeled sections yields empty fields.
	Extract(html string) (*ExtractResult, error)
}
