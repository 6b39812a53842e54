// Package slog provides logging decorators for wordbook interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mwielgus/wordbook"
)

// Ensure Fetcher implements wordbook.Fetcher.
var _ wordbook.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a wordbook.Fetcher with per-request logging.
type Fetcher struct {
	next   wordbook.Fetcher
	logger *slog.Logger
}

// NewFetcher creates a new logging Fetcher.
func NewFetcher(next wordbook.Fetcher, logger *slog.Logger) *Fetcher {
	return &Fetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher, logging the URL, duration, and
// outcome.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}
	f.logger.Info("fetch",
		"url", url,
		"duration", time.Since(begin),
		"bytes", len(html),
	)
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}
