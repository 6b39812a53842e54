package goquery

import (
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mwielgus/wordbook"
)

// wordPathPrefix and wordPathSuffix identify links to individual word pages
// on the archives page.
const (
	wordPathPrefix = "/words/"
	wordPathSuffix = ".html"
)

// Discoverer extracts word-page links from the archives page.
type Discoverer struct {
	baseURL string
}

// NewDiscoverer creates a Discoverer that resolves relative word links
// against baseURL.
func NewDiscoverer(baseURL string) *Discoverer {
	return &Discoverer{baseURL: strings.TrimSuffix(baseURL, "/")}
}

// Discover parses the archives page and returns one WordPage per linked
// word page, in document order. Duplicate words keep the last link seen.
func (d *Discoverer) Discover(rawHTML string) ([]wordbook.WordPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, wordbook.Errorf(wordbook.EINVALID, "failed to parse archives page: %v", err)
	}

	seen := make(map[string]int)
	var pages []wordbook.WordPage

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !strings.HasPrefix(href, wordPathPrefix) || !strings.HasSuffix(href, wordPathSuffix) {
			return
		}

		word := strings.TrimSuffix(path.Base(href), wordPathSuffix)
		page := wordbook.WordPage{
			Word: word,
			URL:  d.baseURL + href,
		}

		if idx, ok := seen[word]; ok {
			pages[idx] = page
			return
		}
		seen[word] = len(pages)
		pages = append(pages, page)
	})

	return pages, nil
}
