package prodscrape

import (
	"context"
	"time"
)

// NA is the sentinel value for a field whose content was absent or
// unrecognized. It is indistinguishable from "field not present".
const NA = "N/A"

// MaxNameLength is the maximum length of a product name in runes.
// Longer titles are truncated on extraction.
const MaxNameLength = 200

// Product represents one extracted product record.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     string    `json:"price"`
	Rating    string    `json:"rating"`
	SourceURL string    `json:"sourceUrl"`
	ScrapedAt time.Time `json:"scrapedAt"`
}

// Validate returns an error if the product contains invalid fields.
func (p *Product) Validate() error {
	if p.Name == "" || p.Name == NA {
		return Errorf(EINVALID, "product name required")
	}
	if p.SourceURL == "" {
		return Errorf(EINVALID, "product source URL required")
	}
	return nil
}

// ProductWriter serializes product records to an output sink.
type ProductWriter interface {
	WriteProducts(ctx context.Context, products []*Product) error
}

// ProductService represents a service for managing stored products.
type ProductService interface {
	// CreateProducts persists records, assigning IDs and timestamps.
	CreateProducts(ctx context.Context, products []*Product) error

	// FindProducts retrieves products matching the filter in insertion order.
	FindProducts(ctx context.Context, filter ProductFilter) ([]*Product, error)

	// DeleteProductsBySource removes all products extracted from a source URL.
	DeleteProductsBySource(ctx context.Context, sourceURL string) error
}

// ProductFilter represents a filter for FindProducts.
type ProductFilter struct {
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
