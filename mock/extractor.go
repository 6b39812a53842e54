package mock

import "github.com/mwielgus/wordbook"

var _ wordbook.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of wordbook.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*wordbook.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*wordbook.ExtractResult, error) {
	return e.ExtractFn(html)
}
