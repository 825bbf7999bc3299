package main

import (
	"fmt"

	"github.com/kommathotimariyamma111-beep/prodscrape/scrape"
)

// ScrapeCommand fetches listing pages, extracts product records, appends them
// to a CSV file, and records each page in the database.
type ScrapeCommand struct {
	URLs []string `arg:"" help:"Listing page URLs. https:// is assumed when no scheme is given."`
	Max  int      `short:"m" default:"10" help:"Maximum records to keep per page."`
	Out  string   `short:"o" default:"extracted_products.csv" help:"Output CSV path."`
	RPS  float64  `default:"0.5" help:"Requests per second per domain."`
}

func (c *ScrapeCommand) Run(deps *Dependencies) error {
	progress := func(r scrape.PageResult) {
		if r.Err != nil {
			fmt.Fprintf(deps.Stderr, "  skipping %s: %v\n", r.URL, r.Err)
			return
		}
		if r.Products == 0 && r.Candidates == 0 {
			fmt.Fprintf(deps.Stdout, "  %s: no product-like markup found\n", r.URL)
			return
		}
		fmt.Fprintf(deps.Stdout, "  %s: %d products\n", r.URL, r.Products)
	}

	fmt.Fprintf(deps.Stdout, "Scraping %d pages...\n", len(c.URLs))

	products, err := deps.Scraper.ScrapeAll(deps.Ctx, c.URLs, progress)
	if err != nil {
		return err
	}

	if len(products) == 0 {
		fmt.Fprintln(deps.Stdout, "No products were extracted.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Extracted %d products\n", len(products))
	printProducts(deps.Stdout, products)
	fmt.Fprintf(deps.Stdout, "Saved to %s\n", c.Out)

	return nil
}
