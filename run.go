package prodscrape

import (
	"context"
	"time"
)

// ScrapeRun records the outcome of extracting one page.
type ScrapeRun struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	ContentHash string    `json:"contentHash"`
	Products    int       `json:"products"`
	ScrapedAt   time.Time `json:"scrapedAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *ScrapeRun) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "scrape run URL required")
	}
	return nil
}

// ScrapeService represents a service for recording scrape runs.
type ScrapeService interface {
	// CreateScrape persists a run, assigning its ID and timestamp.
	CreateScrape(ctx context.Context, run *ScrapeRun) error

	// FindScrapes retrieves runs matching the filter, most recent first.
	FindScrapes(ctx context.Context, filter ScrapeFilter) ([]*ScrapeRun, error)
}

// ScrapeFilter represents a filter for FindScrapes.
type ScrapeFilter struct {
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
