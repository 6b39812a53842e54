// Package batch provides the sequential extraction run over a list of
// discovered word pages. It filters against entries already stored, fetches
// and extracts each pending page, appends one record per attempted page,
// and paces requests toward the origin.
package batch

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mwielgus/wordbook"
	"golang.org/x/time/rate"
)

// Runner orchestrates one extraction run. Processing is deliberately
// sequential: the pacing limiter bounds the request rate to the origin and
// the single writer keeps the output file free of partial rows.
type Runner struct {
	Fetcher   wordbook.Fetcher
	Extractor wordbook.Extractor
	Store     wordbook.EntryStore
	Limiter   *rate.Limiter
	Logger    *slog.Logger
}

// Result holds the outcome of a run.
type Result struct {
	Processed   int
	Skipped     int
	Failed      int
	Interrupted bool
}

// Total returns the number of words accounted for across the store.
func (r *Result) Total() int {
	return r.Processed + r.Skipped
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Word      string
	Completed int
	Total     int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressSkipped
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// Run processes the given word pages in input order. With resume true,
// words already present in the store are skipped and new rows are appended;
// otherwise the store is rewritten from scratch. Cancellation via ctx is
// observed between items only, so every written row is complete.
func (r *Runner) Run(ctx context.Context, pages []wordbook.WordPage, resume bool, progress ProgressFunc) (*Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var result Result

	// Filter against existing entries.
	existing := make(map[string]*wordbook.Entry)
	if resume {
		var err error
		existing, err = r.Store.Existing()
		if err != nil {
			return nil, err
		}
		logger.Info("loaded existing entries", "count", len(existing))
	}

	var toProcess []wordbook.WordPage
	for _, page := range pages {
		if _, ok := existing[page.Word]; ok {
			result.Skipped++
			logger.Info("skipping already processed word", "word", page.Word)
			if progress != nil {
				progress(ProgressEvent{Type: ProgressSkipped, Word: page.Word})
			}
			continue
		}
		toProcess = append(toProcess, page)
	}

	// Nothing pending: leave the existing file untouched.
	if len(toProcess) == 0 {
		if progress != nil {
			progress(ProgressEvent{Type: ProgressFinished})
		}
		return &result, nil
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(toProcess)})
	}

	// Resuming over an empty store still starts a fresh file so the header
	// is written exactly once.
	fresh := !(resume && len(existing) > 0)
	if err := r.Store.Open(fresh); err != nil {
		return nil, err
	}
	defer r.Store.Close()

	total := len(toProcess)
	for _, page := range toProcess {
		// Interruption is recognized between items only; an in-flight
		// extraction always completes before this check.
		if ctx.Err() != nil {
			result.Interrupted = true
			logger.Info("run interrupted", "processed", result.Processed)
			break
		}

		if r.Limiter != nil {
			if err := r.Limiter.Wait(ctx); err != nil {
				result.Interrupted = true
				logger.Info("run interrupted", "processed", result.Processed)
				break
			}
		}

		logger.Info("processing word", "word", page.Word, "url", page.URL)

		html, err := r.Fetcher.Fetch(ctx, page.URL)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				result.Interrupted = true
				break
			}
			result.Failed++
			logger.Error("fetch failed", "word", page.Word, "url", page.URL, "error", err)
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Word:      page.Word,
					Completed: result.Processed,
					Total:     total,
					Error:     err,
				})
			}
			continue
		}

		entry := &wordbook.Entry{Word: page.Word}
		fields, err := r.Extractor.Extract(html)
		if err != nil {
			// Best effort: an unparseable page still produces a record so
			// the word is not retried forever on resume.
			logger.Error("extraction failed", "word", page.Word, "error", err)
		} else {
			entry.Meaning = fields.Meaning
			entry.Usage = fields.Usage
			if fields.Word != "" {
				entry.Word = fields.Word
			}
		}

		if err := r.Store.Append(entry); err != nil {
			return &result, err
		}
		result.Processed++

		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Word:      entry.Word,
				Completed: result.Processed,
				Total:     total,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: result.Processed, Total: total})
	}
	logger.Info("run finished",
		"processed", result.Processed,
		"skipped", result.Skipped,
		"failed", result.Failed,
		"interrupted", result.Interrupted,
	)
	return &result, nil
}

// NewPacingLimiter returns the limiter that enforces the inter-item delay:
// one request per delaySeconds, with a burst of one so the first item is
// not delayed. A delay of zero or less disables pacing.
func NewPacingLimiter(delaySeconds int) *rate.Limiter {
	if delaySeconds <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(1.0/float64(delaySeconds)), 1)
}
