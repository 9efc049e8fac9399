// Package fetch provides competitor record sources: a JSON search API
// client and a chromedp-driven marketplace scraper. Both satisfy the
// aggregator's Source contract; failures surface as errors and are skipped
// upstream.
package fetch

import (
	"context"
	"time"
)

// queryVariations are appended to the niche to form search queries, tried
// in order until enough results accumulate.
var queryVariations = []string{"%s guide", "%s pdf", "how to %s", "%s ebook", "%s course"}

const maxQueryVariations = 3

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
