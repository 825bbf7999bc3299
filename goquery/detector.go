// Package goquery provides CSS-selection based helpers for sizing up pages
// before extraction runs.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/kommathotimariyamma111-beep/prodscrape"
)

// Ensure Detector implements prodscrape.ContainerDetector at compile time.
var _ prodscrape.ContainerDetector = (*Detector)(nil)

// Detector estimates whether a page contains product-like markup by counting
// elements whose class or id attributes match the container keywords. A zero
// count is a strong hint the page will yield no records -- typically a
// JavaScript-rendered listing or a page with no products at all.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// CountContainers returns the number of container-candidate elements in the
// markup. The count is advisory; extraction itself works from the raw token
// stream and applies the same keywords one tag at a time.
func (d *Detector) CountContainers(markup string) (int, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return 0, prodscrape.Errorf(prodscrape.EINVALID, "failed to parse markup: %v", err)
	}

	count := 0
	doc.Find("[class],[id]").Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		id, _ := sel.Attr("id")
		if prodscrape.IsContainer(map[string]string{"class": class, "id": id}) {
			count++
		}
	})

	return count, nil
}
