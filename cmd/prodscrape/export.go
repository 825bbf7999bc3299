package main

import (
	"fmt"

	"github.com/kommathotimariyamma111-beep/prodscrape"
	prodcsv "github.com/kommathotimariyamma111-beep/prodscrape/csv"
)

// ExportCommand writes stored products to a CSV file.
type ExportCommand struct {
	Out    string `short:"o" required:"" help:"Output CSV path."`
	Source string `help:"Only export records from this source URL."`
}

func (c *ExportCommand) Run(deps *Dependencies) error {
	var filter prodscrape.ProductFilter
	if c.Source != "" {
		filter.SourceURL = &c.Source
	}

	products, err := deps.Products.FindProducts(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prodscrape.ErrorMessage(err))
		return err
	}

	if len(products) == 0 {
		fmt.Fprintln(deps.Stdout, "No products to export.")
		return nil
	}

	writer := prodcsv.NewWriter(c.Out)
	if err := writer.WriteProducts(deps.Ctx, products); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prodscrape.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d products to %s\n", len(products), c.Out)

	return nil
}
