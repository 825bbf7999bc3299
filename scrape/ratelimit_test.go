package scrape_test

import (
	"context"
	"testing"
	"time"

	"github.com/kommathotimariyamma111-beep/prodscrape/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("first request per domain proceeds immediately", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(0.1)

		begin := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "a.example.com"))
		require.NoError(t, limiter.Wait(context.Background(), "b.example.com"))
		assert.Less(t, time.Since(begin), 100*time.Millisecond)
	})

	t.Run("second request to same domain waits", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(20) // 50ms spacing

		require.NoError(t, limiter.Wait(context.Background(), "a.example.com"))

		begin := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "a.example.com"))
		assert.GreaterOrEqual(t, time.Since(begin), 40*time.Millisecond)
	})

	t.Run("canceled context aborts the wait", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(0.001)
		require.NoError(t, limiter.Wait(context.Background(), "a.example.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		assert.Error(t, limiter.Wait(ctx, "a.example.com"))
	})
}
