package wordbook

// Discoverer extracts word-page links from the archives page markup.
type Discoverer interface {
	// Discover returns one WordPage per linked word page, in document
	// order, with duplicates resolved last-wins.
	Discover(html string) ([]WordPage, error)
}
