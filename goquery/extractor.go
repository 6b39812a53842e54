// Package goquery implements HTML parsing for wordbook using CSS selectors.
// It contains the field extractor for individual word pages and the link
// discoverer for the archives page.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mwielgus/wordbook"
	"golang.org/x/net/html"
)

// brPairPattern matches two adjacent <br> tokens in any self-closing or
// attribute-spacing variant. Pairs are rewritten to blank lines before tag
// stripping so paragraph boundaries survive text extraction.
var brPairPattern = regexp.MustCompile(`(?i)<br\s*/?><br\s*/?>`)

// newlineRunPattern collapses runs of newlines in free-text meaning blocks.
var newlineRunPattern = regexp.MustCompile(`\n+`)

// Ensure Extractor implements wordbook.Extractor at compile time.
var _ wordbook.Extractor = (*Extractor)(nil)

// Extractor pulls the headword, meaning and usage fields from one word page.
// The page has two known layouts for the meaning block (a table of part-of-
// speech/definition rows, or free text); anything else degrades to empty
// fields rather than an error.
type Extractor struct {
	meaningLabel string
	usageLabel   string
	usageCutoff  string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMeaningLabel overrides the marker text that precedes the meaning block.
func WithMeaningLabel(label string) Option {
	return func(e *Extractor) { e.meaningLabel = label }
}

// WithUsageLabel overrides the marker text that precedes the usage block.
func WithUsageLabel(label string) Option {
	return func(e *Extractor) { e.usageLabel = label }
}

// WithUsageCutoff overrides the boilerplate phrase at which usage text is
// truncated.
func WithUsageCutoff(phrase string) Option {
	return func(e *Extractor) { e.usageCutoff = phrase }
}

// NewExtractor creates an Extractor with defaults matching wordsmith.org
// word pages.
func NewExtractor(opts ...Option) *Extractor {
	cfg := wordbook.DefaultConfig()
	e := &Extractor{
		meaningLabel: cfg.MeaningLabel,
		usageLabel:   cfg.UsageLabel,
		usageCutoff:  cfg.UsageCutoff,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses a word page and returns its fields. Meaning and usage are
// normalized and escaped; the word is the raw heading text. A page missing
// the labeled sections yields empty fields, not an error.
func (e *Extractor) Extract(rawHTML string) (*wordbook.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, wordbook.Errorf(wordbook.EINVALID, "failed to parse word page: %v", err)
	}

	word := strings.TrimSpace(doc.Find("h3").First().Text())

	meaning := e.extractMeaning(doc)
	usage := e.extractUsage(doc)

	return &wordbook.ExtractResult{
		Word:    word,
		Meaning: wordbook.Escape(meaning),
		Usage:   wordbook.Escape(usage),
	}, nil
}

// extractMeaning locates the meaning marker and reads the following block.
func (e *Extractor) extractMeaning(doc *goquery.Document) string {
	content := blockAfterLabel(doc, e.meaningLabel)
	if content == nil {
		return ""
	}

	// Tabular layout: part of speech in the first cell, definition in the
	// second. Rows with fewer than two cells carry no definition.
	if table := content.Find("table").First(); table.Length() > 0 {
		var lines []string
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td")
			if cells.Length() < 2 {
				return
			}
			first := strings.TrimSpace(cells.Eq(0).Text())
			second := strings.TrimSpace(cells.Eq(1).Text())
			lines = append(lines, first+"\t"+second)
		})
		return strings.Join(lines, "\n")
	}

	// Free-text layout.
	text := strings.TrimSpace(content.Text())
	return newlineRunPattern.ReplaceAllString(text, "\n")
}

// extractUsage locates the usage marker and reads the following block,
// keeping paragraph structure and dropping trailing boilerplate.
func (e *Extractor) extractUsage(doc *goquery.Document) string {
	content := blockAfterLabel(doc, e.usageLabel)
	if content == nil {
		return ""
	}

	markup, err := goquery.OuterHtml(content)
	if err != nil {
		return ""
	}

	// Adjacent <br><br> pairs separate quotation paragraphs. Rewrite them
	// to blank lines before stripping tags, then normalize each paragraph
	// on its own so the separators survive whitespace collapsing.
	markup = brPairPattern.ReplaceAllString(markup, "\n\n")
	text := textContent(markup)

	var paragraphs []string
	for _, p := range strings.Split(text, "\n\n") {
		if n := wordbook.Normalize(p); n != "" {
			paragraphs = append(paragraphs, n)
		}
	}
	usage := strings.Join(paragraphs, "\n\n")

	if e.usageCutoff != "" {
		if idx := strings.Index(usage, e.usageCutoff); idx >= 0 {
			usage = usage[:idx]
		}
	}
	return strings.TrimSpace(usage)
}

// blockAfterLabel returns the first div following (in document order) the
// first div whose trimmed text equals label, or nil when the label or the
// following block is absent.
func blockAfterLabel(doc *goquery.Document, label string) *goquery.Selection {
	divs := doc.Find("div")
	for i := 0; i < divs.Length(); i++ {
		if strings.TrimSpace(divs.Eq(i).Text()) != label {
			continue
		}
		if i+1 >= divs.Length() {
			return nil
		}
		return divs.Eq(i + 1)
	}
	return nil
}

// textContent strips tags from an HTML fragment, keeping text in document
// order. Unlike goquery.Text it works on a fragment that has already been
// rewritten, without re-wrapping it in html/body scaffolding concerns.
func textContent(fragment string) string {
	var b strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(tokenizer.Text())
		}
	}
}
