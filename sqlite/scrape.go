package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kommathotimariyamma111-beep/prodscrape"
)

// Compile-time interface verification.
var _ prodscrape.ScrapeService = (*ScrapeService)(nil)

// ScrapeService implements prodscrape.ScrapeService using SQLite.
type ScrapeService struct {
	db *DB
}

// NewScrapeService creates a new ScrapeService.
func NewScrapeService(db *DB) *ScrapeService {
	return &ScrapeService{db: db}
}

// CreateScrape persists a run, assigning its ID and timestamp.
func (s *ScrapeService) CreateScrape(ctx context.Context, run *prodscrape.ScrapeRun) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.ScrapedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scrapes (id, url, content_hash, products, scraped_at)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, run.URL, run.ContentHash, run.Products, run.ScrapedAt.Format(time.RFC3339))

	return err
}

// FindScrapes retrieves runs matching the filter, most recent first.
func (s *ScrapeService) FindScrapes(ctx context.Context, filter prodscrape.ScrapeFilter) ([]*prodscrape.ScrapeRun, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, content_hash, products, scraped_at FROM scrapes WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY scraped_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*prodscrape.ScrapeRun
	for rows.Next() {
		var run prodscrape.ScrapeRun
		var scrapedAt string

		if err := rows.Scan(&run.ID, &run.URL, &run.ContentHash, &run.Products, &scrapedAt); err != nil {
			return nil, err
		}

		run.ScrapedAt, err = parseRFC3339(scrapedAt, "scraped_at")
		if err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}
