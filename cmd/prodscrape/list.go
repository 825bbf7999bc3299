package main

import (
	"fmt"
	"time"

	"github.com/kommathotimariyamma111-beep/prodscrape"
)

// ListCommand prints stored products, or scrape runs with --runs.
type ListCommand struct {
	Source string `help:"Only show records from this source URL."`
	Limit  int    `default:"50" help:"Maximum rows to print."`
	Runs   bool   `help:"Show scrape runs instead of products."`
}

func (c *ListCommand) Run(deps *Dependencies) error {
	if c.Runs {
		return c.runScrapes(deps)
	}

	filter := prodscrape.ProductFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.SourceURL = &c.Source
	}

	products, err := deps.Products.FindProducts(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prodscrape.ErrorMessage(err))
		return err
	}

	if len(products) == 0 {
		fmt.Fprintln(deps.Stdout, "No products found. Run 'prodscrape scrape' to collect some.")
		return nil
	}

	for _, p := range products {
		fmt.Fprintf(deps.Stdout, "%s\t%s\t%s\t%s\n", p.Name, p.Price, p.Rating, p.SourceURL)
	}
	fmt.Fprintf(deps.Stdout, "%d products\n", len(products))

	return nil
}

func (c *ListCommand) runScrapes(deps *Dependencies) error {
	filter := prodscrape.ScrapeFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.URL = &c.Source
	}

	runs, err := deps.Scrapes.FindScrapes(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prodscrape.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No scrape runs recorded.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s\t%s\t%d products\thash %s\n",
			r.ScrapedAt.Format(time.RFC3339), r.URL, r.Products, r.ContentHash)
	}

	return nil
}
