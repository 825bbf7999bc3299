package main

import (
	"fmt"

	"github.com/kommathotimariyamma111-beep/prodscrape"
	prodcsv "github.com/kommathotimariyamma111-beep/prodscrape/csv"
)

// DemoCommand writes the built-in sample records without touching the network
// or the database. Useful for checking the CSV output format.
type DemoCommand struct {
	Out string `short:"o" default:"extracted_products.csv" help:"Output CSV path."`
}

func (c *DemoCommand) Run(deps *Dependencies) error {
	products := prodscrape.DemoProducts()

	writer := prodcsv.NewWriter(c.Out)
	if err := writer.WriteProducts(deps.Ctx, products); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prodscrape.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Created %d demo products\n", len(products))
	printProducts(deps.Stdout, products)
	fmt.Fprintf(deps.Stdout, "Saved to %s\n", c.Out)

	return nil
}
