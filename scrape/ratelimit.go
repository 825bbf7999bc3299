package scrape

import (
	"context"
	"sync"

	"golang.org/x/time/rate"

	"github.com/kommathotimariyamma111-beep/prodscrape"
)

var _ prodscrape.DomainLimiter = (*DomainLimiter)(nil)

// DefaultRequestsPerSecond spaces requests to the same domain two seconds
// apart, a courtesy delay for storefronts.
const DefaultRequestsPerSecond = 0.5

// DomainLimiter provides per-domain rate limiting using token buckets.
// Each domain gets its own limiter, so pages on different hosts don't delay
// each other while requests within a host stay spaced out.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a new DomainLimiter with the specified requests
// per second limit. Each domain gets a burst of 1, so the first request to a
// domain proceeds immediately and later ones wait.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
