package prodscrape

import "context"

// Fetcher retrieves raw page markup from URLs.
type Fetcher interface {
	// Fetch returns the markup of the page at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (markup string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-domain rate limiting between page fetches.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// ContainerDetector estimates whether markup contains product-like regions
// before extraction runs. Advisory only; it never gates extraction.
type ContainerDetector interface {
	// CountContainers returns the number of elements whose attributes match
	// the container keywords.
	CountContainers(markup string) (int, error)
}
