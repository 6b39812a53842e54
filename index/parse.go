package index

import (
	"regexp"
	"strings"
)

// MeaningPart is one sense of a word: an optional part of speech and its
// definition.
type MeaningPart struct {
	PartOfSpeech string `json:"partOfSpeech"`
	Definition   string `json:"definition"`
}

// sentenceBoundary splits on sentence-ending punctuation followed by a
// capitalized word, the shape usage quotations take between citation and
// the next quote.
var sentenceBoundary = regexp.MustCompile(`([.!?])\s+([A-Z])`)

// ParseMeaning splits a stored meaning into its senses. Each line holds one
// sense; a colon separates the part of speech from the definition, and
// lines without a colon are plain definitions.
func ParseMeaning(meaning string) []MeaningPart {
	if meaning == "" {
		return nil
	}

	var parts []MeaningPart
	for _, line := range strings.Split(meaning, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if pos, def, ok := strings.Cut(line, ":"); ok {
			parts = append(parts, MeaningPart{
				PartOfSpeech: strings.TrimSpace(pos),
				Definition:   strings.TrimSpace(def),
			})
			continue
		}
		parts = append(parts, MeaningPart{Definition: line})
	}
	return parts
}

// ParseUsage splits stored usage text into individual quoted examples.
// An example ends at a sentence that looks like a citation: it carries a
// semicolon and a 19xx/20xx year. Text with no recognizable citations is
// returned as a single example.
func ParseUsage(usage string) []string {
	if usage == "" {
		return nil
	}

	sentences := splitSentences(usage)

	var examples []string
	var current strings.Builder
	for _, sentence := range sentences {
		current.WriteString(sentence)
		current.WriteString(" ")
		if strings.Contains(sentence, ";") &&
			(strings.Contains(sentence, "19") || strings.Contains(sentence, "20")) {
			examples = append(examples, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		examples = append(examples, rest)
	}

	if len(examples) == 0 {
		return []string{usage}
	}
	return examples
}

// splitSentences breaks text at sentence boundaries without consuming the
// punctuation or the capital letter that starts the next sentence.
func splitSentences(text string) []string {
	indexes := sentenceBoundary.FindAllStringSubmatchIndex(text, -1)
	if len(indexes) == 0 {
		return []string{text}
	}

	var sentences []string
	start := 0
	for _, m := range indexes {
		// m[3] is the end of the punctuation group; the capital at m[4]
		// starts the next sentence.
		sentences = append(sentences, strings.TrimSpace(text[start:m[3]]))
		start = m[4]
	}
	sentences = append(sentences, strings.TrimSpace(text[start:]))
	return sentences
}

// Brief truncates a meaning's first definition for list views.
func Brief(meaning string, max int) string {
	text := meaning
	if parts := ParseMeaning(meaning); len(parts) > 0 {
		text = parts[0].Definition
	}
	// Truncate on runes so a cut never splits a multi-byte character.
	if runes := []rune(text); max > 0 && len(runes) > max {
		return string(runes[:max]) + "..."
	}
	return text
}
