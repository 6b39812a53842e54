package main

import (
	"fmt"
	"log/slog"

	"github.com/mwielgus/wordbook"
	"github.com/mwielgus/wordbook/batch"
	"github.com/mwielgus/wordbook/csv"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	wordsFile := deps.Config.WordsFile
	if c.WordsFile != "" {
		wordsFile = c.WordsFile
	}
	outputFile := deps.Config.OutputFile
	if c.OutputFile != "" {
		outputFile = c.OutputFile
	}
	delay := deps.Config.DelaySeconds
	if c.Delay >= 0 {
		delay = c.Delay
	}

	pages, err := csv.ReadWordList(wordsFile)
	if err != nil {
		if wordbook.ErrorCode(err) == wordbook.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "Hint: Run 'wordbook scrape' first to build the word list\n")
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordbook.ErrorMessage(err))
		return err
	}

	runner := &batch.Runner{
		Fetcher:   deps.Fetcher,
		Extractor: deps.Extractor,
		Store:     csv.NewStore(outputFile),
		Limiter:   batch.NewPacingLimiter(delay),
		Logger:    slog.Default(),
	}

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Processing %d words\n", event.Total)
		case batch.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "Processing: %s (%d/%d)\n", event.Word, event.Completed, event.Total)
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Word, event.Error)
		case batch.ProgressFinished:
			// Summary printed after the run completes
		}
	}

	result, err := runner.Run(deps.Ctx, pages, c.Resume, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordbook.ErrorMessage(err))
		return err
	}

	if result.Interrupted {
		fmt.Fprintf(deps.Stdout, "Interrupted: progress saved to %s\n", outputFile)
	}
	fmt.Fprintf(deps.Stdout, "Processed %d words (%d skipped, %d failed, %d total in %s)\n",
		result.Processed, result.Skipped, result.Failed, result.Total(), outputFile)
	return nil
}
