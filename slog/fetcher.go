// Package slog provides logging decorators for prodscrape interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/kommathotimariyamma111-beep/prodscrape"
)

// Ensure LoggingFetcher implements prodscrape.Fetcher.
var _ prodscrape.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with structured request logging.
type LoggingFetcher struct {
	next   prodscrape.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next prodscrape.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	markup, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("page fetch failed",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}
	f.logger.Info("page fetched",
		"url", url,
		"bytes", len(markup),
		"duration", time.Since(begin),
	)
	return markup, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
