package goquery_test

import (
	"testing"

	"github.com/kommathotimariyamma111-beep/prodscrape/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectorCountContainers(t *testing.T) {
	t.Parallel()

	t.Run("counts elements with container keywords", func(t *testing.T) {
		t.Parallel()

		markup := `<html><body>
			<div class="product-card"><h2>A</h2></div>
			<div class="item"><h2>B</h2></div>
			<section id="listingGrid"></section>
			<div class="footer"></div>
		</body></html>`

		count, err := goquery.NewDetector().CountContainers(markup)

		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("matches case-insensitively", func(t *testing.T) {
		t.Parallel()

		markup := `<div class="Product-Card"></div>`

		count, err := goquery.NewDetector().CountContainers(markup)

		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("returns zero for pages without product markup", func(t *testing.T) {
		t.Parallel()

		markup := `<html><body><nav class="menu"></nav><p>About us</p></body></html>`

		count, err := goquery.NewDetector().CountContainers(markup)

		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}
