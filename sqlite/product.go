package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kommathotimariyamma111-beep/prodscrape"
)

// Compile-time interface verification.
var _ prodscrape.ProductService = (*ProductService)(nil)

// ProductService implements prodscrape.ProductService using SQLite.
type ProductService struct {
	db *DB
}

// NewProductService creates a new ProductService.
func NewProductService(db *DB) *ProductService {
	return &ProductService{db: db}
}

// CreateProducts persists records, assigning IDs and timestamps.
// Records are inserted in slice order so FindProducts preserves the
// document order the extractor produced.
func (s *ProductService) CreateProducts(ctx context.Context, products []*prodscrape.Product) error {
	now := time.Now().UTC()

	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}

		p.ID = uuid.New().String()
		p.ScrapedAt = now

		_, err := s.db.ExecContext(ctx, `
			INSERT INTO products (id, name, price, rating, source_url, scraped_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, p.ID, p.Name, p.Price, p.Rating, p.SourceURL, p.ScrapedAt.Format(time.RFC3339))
		if err != nil {
			return err
		}
	}

	return nil
}

// FindProducts retrieves products matching the filter in insertion order.
func (s *ProductService) FindProducts(ctx context.Context, filter prodscrape.ProductFilter) ([]*prodscrape.Product, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, price, rating, source_url, scraped_at FROM products WHERE 1=1")

	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY rowid ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*prodscrape.Product
	for rows.Next() {
		var product prodscrape.Product
		var scrapedAt string

		if err := rows.Scan(&product.ID, &product.Name, &product.Price, &product.Rating,
			&product.SourceURL, &scrapedAt); err != nil {
			return nil, err
		}

		product.ScrapedAt, err = parseRFC3339(scrapedAt, "scraped_at")
		if err != nil {
			return nil, err
		}

		products = append(products, &product)
	}

	return products, rows.Err()
}

// DeleteProductsBySource removes all products extracted from a source URL.
func (s *ProductService) DeleteProductsBySource(ctx context.Context, sourceURL string) error {
	if sourceURL == "" {
		return prodscrape.Errorf(prodscrape.EINVALID, "source URL required")
	}

	_, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE source_url = ?", sourceURL)
	return err
}
