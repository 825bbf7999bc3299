package sqlite_test

import (
	"context"
	"testing"

	"github.com/kommathotimariyamma111-beep/prodscrape"
	"github.com/kommathotimariyamma111-beep/prodscrape/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrapeService(t *testing.T) {
	t.Parallel()

	t.Run("creates run with generated ID and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewScrapeService(db)
		ctx := context.Background()

		run := &prodscrape.ScrapeRun{
			URL:         "https://shop.example.com",
			ContentHash: "00000000075bcd15",
			Products:    3,
		}

		require.NoError(t, svc.CreateScrape(ctx, run))

		assert.NotEmpty(t, run.ID)
		assert.False(t, run.ScrapedAt.IsZero())
	})

	t.Run("rejects run without URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewScrapeService(db)

		err := svc.CreateScrape(context.Background(), &prodscrape.ScrapeRun{})
		assert.Equal(t, prodscrape.EINVALID, prodscrape.ErrorCode(err))
	})

	t.Run("finds runs most recent first", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewScrapeService(db)
		ctx := context.Background()

		first := &prodscrape.ScrapeRun{URL: "https://shop.example.com", Products: 1}
		second := &prodscrape.ScrapeRun{URL: "https://shop.example.com", Products: 2}
		require.NoError(t, svc.CreateScrape(ctx, first))
		require.NoError(t, svc.CreateScrape(ctx, second))

		runs, err := svc.FindScrapes(ctx, prodscrape.ScrapeFilter{})
		require.NoError(t, err)

		require.Len(t, runs, 2)
		assert.Equal(t, second.ID, runs[0].ID)
		assert.Equal(t, first.ID, runs[1].ID)
	})

	t.Run("filters by URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewScrapeService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateScrape(ctx, &prodscrape.ScrapeRun{URL: "https://a.example.com"}))
		require.NoError(t, svc.CreateScrape(ctx, &prodscrape.ScrapeRun{URL: "https://b.example.com"}))

		url := "https://a.example.com"
		runs, err := svc.FindScrapes(ctx, prodscrape.ScrapeFilter{URL: &url})
		require.NoError(t, err)

		require.Len(t, runs, 1)
		assert.Equal(t, "https://a.example.com", runs[0].URL)
	})
}
