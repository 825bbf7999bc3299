package mock

import (
	"context"

	"github.com/kommathotimariyamma111-beep/prodscrape"
)

var _ prodscrape.ScrapeService = (*ScrapeService)(nil)

// ScrapeService is a mock implementation of prodscrape.ScrapeService.
type ScrapeService struct {
	CreateScrapeFn func(ctx context.Context, run *prodscrape.ScrapeRun) error
	FindScrapesFn  func(ctx context.Context, filter prodscrape.ScrapeFilter) ([]*prodscrape.ScrapeRun, error)
}

func (s *ScrapeService) CreateScrape(ctx context.Context, run *prodscrape.ScrapeRun) error {
	return s.CreateScrapeFn(ctx, run)
}

func (s *ScrapeService) FindScrapes(ctx context.Context, filter prodscrape.ScrapeFilter) ([]*prodscrape.ScrapeRun, error) {
	return s.FindScrapesFn(ctx, filter)
}

var _ prodscrape.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of prodscrape.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, domain)
}

var _ prodscrape.ContainerDetector = (*ContainerDetector)(nil)

// ContainerDetector is a mock implementation of prodscrape.ContainerDetector.
type ContainerDetector struct {
	CountContainersFn func(markup string) (int, error)
}

func (d *ContainerDetector) CountContainers(markup string) (int, error) {
	return d.CountContainersFn(markup)
}
