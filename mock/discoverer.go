package mock

import "github.com/mwielgus/wordbook"

var _ wordbook.Discoverer = (*Discoverer)(nil)

// Discoverer is a mock implementation of wordbook.Discoverer.
type Discoverer struct {
	DiscoverFn func(html string) ([]wordbook.WordPage, error)
}

func (d *Discoverer) Discover(html string) ([]wordbook.WordPage, error) {
	return d.DiscoverFn(html)
}
