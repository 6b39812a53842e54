package main

import (
	"fmt"

	"github.com/mwielgus/wordbook"
	"github.com/mwielgus/wordbook/csv"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	wordsFile := deps.Config.WordsFile
	if c.WordsFile != "" {
		wordsFile = c.WordsFile
	}

	existing, err := csv.ReadWordList(wordsFile)
	if err != nil && wordbook.ErrorCode(err) != wordbook.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordbook.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Fetching archives from %s\n", deps.Config.ArchivesURL)
	page, err := deps.Fetcher.Fetch(deps.Ctx, deps.Config.ArchivesURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordbook.ErrorMessage(err))
		return err
	}

	discovered, err := deps.Discoverer.Discover(page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordbook.ErrorMessage(err))
		return err
	}

	known := make(map[string]bool, len(existing))
	for _, p := range existing {
		known[p.Word] = true
	}
	newWords := 0
	for _, p := range discovered {
		if !known[p.Word] {
			newWords++
			known[p.Word] = true
		}
	}

	merged := csv.MergeWordLists(existing, discovered)
	if err := csv.WriteWordList(wordsFile, merged); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordbook.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Found %d word pages (%d new)\n", len(discovered), newWords)
	fmt.Fprintf(deps.Stdout, "Word list saved to %s (%d words)\n", wordsFile, len(known))
	return nil
}
