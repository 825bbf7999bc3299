// Package scrape coordinates product extraction across multiple pages.
// It sequences fetching, rate limiting, retrying, extraction, and
// persistence for a list of storefront URLs.
package scrape

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/kommathotimariyamma111-beep/prodscrape"
)

// DefaultMaxPerPage is the record cap applied to each page when the caller
// doesn't specify one.
const DefaultMaxPerPage = 10

// PageResult reports the outcome of processing one page.
type PageResult struct {
	URL         string
	Products    int
	Candidates  int // container-like elements seen by the detector, -1 if not probed
	ContentHash string
	Err         error
}

// ProgressFunc is called after each page is processed.
type ProgressFunc func(PageResult)

// Scraper orchestrates scraping of product listing pages.
//
// Pages are processed strictly sequentially in the order given; the limiter
// enforces a courtesy delay between requests to the same domain. Writer,
// Products, Scrapes, Detector, and Limiter are optional.
type Scraper struct {
	Fetcher   prodscrape.Fetcher
	Extractor *prodscrape.Extractor
	Writer    prodscrape.ProductWriter
	Products  prodscrape.ProductService
	Scrapes   prodscrape.ScrapeService
	Detector  prodscrape.ContainerDetector
	Limiter   prodscrape.DomainLimiter

	// MaxPerPage caps records extracted per page. Defaults to DefaultMaxPerPage.
	MaxPerPage int

	// RetryDelays are the backoff delays between fetch attempts.
	// Defaults to DefaultRetryDelays().
	RetryDelays []time.Duration
}

// ScrapeAll processes urls in order and returns all extracted records.
// A page that fails to fetch or extract contributes zero records and
// processing continues with the next URL; only context cancellation stops
// the run early.
func (s *Scraper) ScrapeAll(ctx context.Context, urls []string, progress ProgressFunc) ([]*prodscrape.Product, error) {
	maxPerPage := s.MaxPerPage
	if maxPerPage <= 0 {
		maxPerPage = DefaultMaxPerPage
	}
	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	var all []*prodscrape.Product
	for _, rawURL := range urls {
		pageURL := NormalizeURL(rawURL)

		if s.Limiter != nil {
			if err := s.Limiter.Wait(ctx, domainOf(pageURL)); err != nil {
				return all, err
			}
		}

		result, products := s.scrapePage(ctx, pageURL, maxPerPage, delays)
		if result.Err == nil {
			all = append(all, products...)
		}
		if progress != nil {
			progress(result)
		}

		if err := ctx.Err(); err != nil {
			return all, err
		}
	}

	return all, nil
}

// scrapePage fetches and extracts a single page. All failures are reported
// through the returned PageResult rather than aborting the run.
func (s *Scraper) scrapePage(ctx context.Context, pageURL string, maxPerPage int, delays []time.Duration) (PageResult, []*prodscrape.Product) {
	result := PageResult{URL: pageURL, Candidates: -1}

	markup, err := FetchWithRetryDelays(ctx, pageURL, s.Fetcher.Fetch, nil, delays)
	if err != nil {
		result.Err = err
		return result, nil
	}

	result.ContentHash = fmt.Sprintf("%016x", xxhash.Sum64String(markup))

	if s.Detector != nil {
		if n, err := s.Detector.CountContainers(markup); err == nil {
			result.Candidates = n
		}
	}

	products, err := s.Extractor.Extract(markup, maxPerPage, pageURL)
	if err != nil {
		result.Err = err
		return result, nil
	}
	result.Products = len(products)

	if s.Products != nil && len(products) > 0 {
		if err := s.Products.CreateProducts(ctx, products); err != nil {
			result.Err = err
			return result, nil
		}
	}

	if s.Scrapes != nil {
		run := &prodscrape.ScrapeRun{
			URL:         pageURL,
			ContentHash: result.ContentHash,
			Products:    len(products),
		}
		if err := s.Scrapes.CreateScrape(ctx, run); err != nil {
			result.Err = err
			return result, nil
		}
	}

	if s.Writer != nil && len(products) > 0 {
		if err := s.Writer.WriteProducts(ctx, products); err != nil {
			result.Err = err
			return result, nil
		}
	}

	return result, products
}

// NormalizeURL defaults the https scheme when the input has none.
func NormalizeURL(rawURL string) string {
	if strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://") {
		return rawURL
	}
	return "https://" + rawURL
}

// domainOf extracts the host for rate limiting. Unparseable URLs share one
// limiter bucket under the raw string.
func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
