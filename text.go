package wordbook

import (
	"html"
	"regexp"
	"strings"
)

var (
	brPattern         = regexp.MustCompile(`(?i)<br\s*/?\s*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)

	// curlyQuoteRefs resolves the decimal character references for curly
	// quotes to their straight equivalents. This runs before general entity
	// decoding on purpose: curly-quote glyphs already literal in the source
	// are left alone, only the encoded forms are straightened.
	curlyQuoteRefs = strings.NewReplacer(
		"&#8220;", `"`,
		"&#8221;", `"`,
		"&#8216;", "'",
		"&#8217;", "'",
	)
)

// Normalize cleans raw text lifted from a dictionary page: character
// references are decoded, <br> tokens become newlines, whitespace runs
// collapse to a single space, and the result is trimmed. Normalize is total
// and idempotent on already-normalized input.
func Normalize(raw string) string {
	s := curlyQuoteRefs.Replace(raw)
	s = html.UnescapeString(s)
	s = brPattern.ReplaceAllString(s, "\n")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Escape re-encodes normalized text for the quoted record format: double
// quotes become single quotes (lossy, keeps rows parseable without quote
// doubling) and backslashes are doubled. Escape is not idempotent — apply
// exactly once, after Normalize and before serialization.
func Escape(clean string) string {
	s := strings.ReplaceAll(clean, `"`, "'")
	return strings.ReplaceAll(s, `\`, `\\`)
}
