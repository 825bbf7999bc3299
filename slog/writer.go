package slog

import (
	"context"
	"log/slog"

	"github.com/kommathotimariyamma111-beep/prodscrape"
)

// Ensure LoggingWriter implements prodscrape.ProductWriter.
var _ prodscrape.ProductWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps a ProductWriter with write logging.
type LoggingWriter struct {
	next   prodscrape.ProductWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next prodscrape.ProductWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteProducts delegates to the wrapped writer and logs the outcome.
func (w *LoggingWriter) WriteProducts(ctx context.Context, products []*prodscrape.Product) error {
	if err := w.next.WriteProducts(ctx, products); err != nil {
		w.logger.Error("product write failed", "records", len(products), "error", err)
		return err
	}
	if len(products) > 0 {
		w.logger.Info("products written", "records", len(products))
	}
	return nil
}
