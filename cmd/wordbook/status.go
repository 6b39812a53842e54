package main

import (
	"fmt"

	"github.com/mwielgus/wordbook"
	"github.com/mwielgus/wordbook/csv"
)

// Run executes the status command.
func (c *StatusCmd) Run(deps *Dependencies) error {
	wordsFile := deps.Config.WordsFile
	if c.WordsFile != "" {
		wordsFile = c.WordsFile
	}
	outputFile := deps.Config.OutputFile
	if c.OutputFile != "" {
		outputFile = c.OutputFile
	}

	pages, err := csv.ReadWordList(wordsFile)
	if err != nil && wordbook.ErrorCode(err) != wordbook.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordbook.ErrorMessage(err))
		return err
	}

	done, err := csv.LoadEntries(outputFile)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordbook.ErrorMessage(err))
		return err
	}

	var remaining []string
	for _, p := range pages {
		if _, ok := done[p.Word]; !ok {
			remaining = append(remaining, p.Word)
		}
	}

	fmt.Fprintf(deps.Stdout, "Scraped words:   %d (%s)\n", len(pages), wordsFile)
	fmt.Fprintf(deps.Stdout, "Extracted words: %d (%s)\n", len(done), outputFile)
	fmt.Fprintf(deps.Stdout, "Remaining:       %d\n", len(remaining))
	if len(pages) > 0 {
		fmt.Fprintf(deps.Stdout, "Progress:        %.1f%%\n", float64(len(pages)-len(remaining))/float64(len(pages))*100)
	}

	if len(remaining) > 0 {
		show := remaining
		if len(show) > 10 {
			show = show[:10]
		}
		fmt.Fprintf(deps.Stdout, "Next up:\n")
		for _, w := range show {
			fmt.Fprintf(deps.Stdout, "  %s\n", w)
		}
		if len(remaining) > 10 {
			fmt.Fprintf(deps.Stdout, "  ... and %d more\n", len(remaining)-10)
		}
	}
	return nil
}
