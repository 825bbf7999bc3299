// Package csv provides tabular file output for extracted products.
package csv

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/kommathotimariyamma111-beep/prodscrape"
)

// Header is the column layout of the output file.
var Header = []string{"name", "price", "rating", "source_url"}

// Ensure Writer implements prodscrape.ProductWriter at compile time.
var _ prodscrape.ProductWriter = (*Writer)(nil)

// Writer appends product records to a CSV file, one row per record, with
// default quoting and UTF-8 encoding. The header row is written when the
// file is created or empty, so repeated writes across pages produce a
// single well-formed table.
type Writer struct {
	path string
}

// NewWriter creates a Writer targeting the given file path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the output file path.
func (w *Writer) Path() string {
	return w.path
}

// WriteProducts appends records to the output file. Writing no records is a
// no-op and does not create the file.
func (w *Writer) WriteProducts(_ context.Context, products []*prodscrape.Product) error {
	if len(products) == 0 {
		return nil
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := cw.Write(Header); err != nil {
			return err
		}
	}
	for _, p := range products {
		if err := cw.Write([]string{p.Name, p.Price, p.Rating, p.SourceURL}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
