package main

import (
	"context"
	"fmt"
	"io"

	"github.com/kommathotimariyamma111-beep/prodscrape"
	"github.com/kommathotimariyamma111-beep/prodscrape/scrape"
	"github.com/kommathotimariyamma111-beep/prodscrape/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	DB       *sqlite.DB
	Products prodscrape.ProductService
	Scrapes  prodscrape.ScrapeService
	Scraper  *scrape.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetch and write activity to stderr."`

	Demo   DemoCommand   `cmd:"" help:"Write the built-in demo records to a CSV file."`
	Scrape ScrapeCommand `cmd:"" help:"Extract product records from listing pages."`
	List   ListCommand   `cmd:"" help:"List stored products or scrape runs."`
	Export ExportCommand `cmd:"" help:"Export stored products to a CSV file."`
}

// printProducts writes a numbered summary of extracted records, with long
// names truncated for display.
func printProducts(w io.Writer, products []*prodscrape.Product) {
	for i, p := range products {
		name := p.Name
		if len(name) > 50 {
			name = name[:50] + "..."
		}
		fmt.Fprintf(w, "%d. %s\n", i+1, name)
		fmt.Fprintf(w, "   Price: %s  Rating: %s\n", p.Price, p.Rating)
	}
}
