package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	main "github.com/kommathotimariyamma111-beep/prodscrape/cmd/prodscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testContext returns a background context for tests.
func testContext() context.Context {
	return context.Background()
}

// newTestMain returns a Main pointed at a throwaway database.
func newTestMain(t *testing.T) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")
	return m
}

func TestCmdDemo(t *testing.T) {
	t.Parallel()

	t.Run("writes demo records to CSV", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "demo.csv")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := newTestMain(t)
		err := m.Run(testContext(), []string{"demo", "--out", out}, stdout, stderr)
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), "Created 5 demo products")
		assert.Contains(t, stdout.String(), "Wireless Bluetooth Headphones")
		assert.Contains(t, stdout.String(), "Saved to "+out)
		assert.Empty(t, stderr.String())

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(data), "name,price,rating,source_url")
		assert.Contains(t, string(data), "Wireless Mouse,$29.99,4.1,demo_data")
	})

	t.Run("does not open the database", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "demo.csv")
		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "never-created.db")

		err := m.Run(testContext(), []string{"demo", "--out", out}, &bytes.Buffer{}, &bytes.Buffer{})
		require.NoError(t, err)

		_, statErr := os.Stat(m.DBPath)
		assert.True(t, os.IsNotExist(statErr))
	})
}

const testListingPage = `<html><body>
<div class="product-card">
  <h2 class="product-title">Wireless Mouse</h2>
  <span class="price">Price: $29.99</span>
  <span class="rating">4.1 out of 5 stars</span>
</div>
<div class="product-card">
  <h2 class="product-title">USB-C Charging Cable</h2>
  <span class="price">$12.99</span>
  <span class="rating">4.7 out of 5</span>
</div>
</body></html>`

func TestCmdScrape(t *testing.T) {
	t.Parallel()

	t.Run("scrapes a page end to end", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(testListingPage))
		}))
		defer srv.Close()

		dbPath := filepath.Join(t.TempDir(), "test.db")
		out := filepath.Join(t.TempDir(), "products.csv")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		m.DBPath = dbPath
		err := m.Run(testContext(), []string{"scrape", srv.URL, "--out", out, "--rps", "100"}, stdout, stderr)
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), "Extracted 2 products")
		assert.Contains(t, stdout.String(), "Wireless Mouse")
		assert.Contains(t, stdout.String(), "Price: $12.99")

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(data), "name,price,rating,source_url")
		assert.Contains(t, string(data), "Wireless Mouse,$29.99,4.1,"+srv.URL)
		assert.Contains(t, string(data), "USB-C Charging Cable,$12.99,4.7,"+srv.URL)

		// The records and the run survive into a fresh process.
		listOut := &bytes.Buffer{}
		m2 := main.NewMain()
		m2.DBPath = dbPath
		err = m2.Run(testContext(), []string{"list"}, listOut, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, listOut.String(), "Wireless Mouse")
		assert.Contains(t, listOut.String(), "2 products")

		runsOut := &bytes.Buffer{}
		m3 := main.NewMain()
		m3.DBPath = dbPath
		err = m3.Run(testContext(), []string{"list", "--runs"}, runsOut, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, runsOut.String(), srv.URL)
		assert.Contains(t, runsOut.String(), "2 products")
	})

	t.Run("respects the per-page cap", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(testListingPage))
		}))
		defer srv.Close()

		stdout := &bytes.Buffer{}

		m := newTestMain(t)
		out := filepath.Join(t.TempDir(), "products.csv")
		err := m.Run(testContext(), []string{"scrape", srv.URL, "--out", out, "--max", "1", "--rps", "100"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), "Extracted 1 products")
		assert.Contains(t, stdout.String(), "Wireless Mouse")
		assert.NotContains(t, stdout.String(), "USB-C Charging Cable")
	})

	t.Run("reports unreachable pages without failing", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := newTestMain(t)
		out := filepath.Join(t.TempDir(), "products.csv")
		err := m.Run(testContext(), []string{"scrape", srv.URL, "--out", out, "--rps", "100"}, stdout, stderr)
		require.NoError(t, err)

		assert.Contains(t, stderr.String(), "skipping "+srv.URL)
		assert.Contains(t, stdout.String(), "No products were extracted.")
	})
}

func TestCmdList(t *testing.T) {
	t.Parallel()

	t.Run("empty database prints hint", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}

		m := newTestMain(t)
		err := m.Run(testContext(), []string{"list"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), "No products found")
	})

	t.Run("no runs recorded", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}

		m := newTestMain(t)
		err := m.Run(testContext(), []string{"list", "--runs"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), "No scrape runs recorded.")
	})
}

func TestCmdExport(t *testing.T) {
	t.Parallel()

	t.Run("empty database exports nothing", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "export.csv")
		stdout := &bytes.Buffer{}

		m := newTestMain(t)
		err := m.Run(testContext(), []string{"export", "--out", out}, stdout, &bytes.Buffer{})
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), "No products to export.")
		_, statErr := os.Stat(out)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("exports scraped records", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(testListingPage))
		}))
		defer srv.Close()

		dbPath := filepath.Join(t.TempDir(), "test.db")
		scrapeOut := filepath.Join(t.TempDir(), "products.csv")

		m := main.NewMain()
		m.DBPath = dbPath
		err := m.Run(testContext(), []string{"scrape", srv.URL, "--out", scrapeOut, "--rps", "100"}, &bytes.Buffer{}, &bytes.Buffer{})
		require.NoError(t, err)

		exportOut := filepath.Join(t.TempDir(), "export.csv")
		stdout := &bytes.Buffer{}
		m2 := main.NewMain()
		m2.DBPath = dbPath
		err = m2.Run(testContext(), []string{"export", "--out", exportOut}, stdout, &bytes.Buffer{})
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), "Exported 2 products to "+exportOut)

		data, err := os.ReadFile(exportOut)
		require.NoError(t, err)
		assert.Contains(t, string(data), "Wireless Mouse,$29.99,4.1,"+srv.URL)
	})
}

func TestMain_Run_NoCommand(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := newTestMain(t)
	err := m.Run(testContext(), []string{}, stdout, stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
	// Help is still printed so the user sees what exists.
	assert.Contains(t, stdout.String(), "Usage:")
}
