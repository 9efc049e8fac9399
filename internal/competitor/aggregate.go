package competitor

import (
	"context"

	"github.com/dmarchal/arbsuite/internal/events"
)

// Source is a query capability against one external system. An error return
// means the whole source failed for this niche; partial results with a nil
// error are fine. Pacing between calls to the same external endpoint is the
// source's own responsibility.
type Source interface {
	Name() string
	Search(ctx context.Context, niche, language string) ([]Record, error)
}

const DefaultMaxResults = 20

// Aggregator merges records from multiple sources into one deduplicated list.
type Aggregator struct {
	MaxResults int
	Events     events.Sink
}

// Collect invokes each source in order and merges the results, deduplicating
// by URL while preserving first-seen order. A failed source is skipped and
// aggregation continues; if every source fails the result is an empty list,
// not an error. The cap keeps the first MaxResults records after the stable
// merge in source call order, and once it is reached the remaining sources
// are not queried. Hosts that parallelize independent sources must still
// merge in that order to get identical truncation.
func (a *Aggregator) Collect(ctx context.Context, niche, language string, sources []Source) []Record {
	max := a.MaxResults
	if max <= 0 {
		max = DefaultMaxResults
	}

	merged := make([]Record, 0, max)
	seen := make(map[string]struct{})

	for _, src := range sources {
		if ctx.Err() != nil {
			break
		}
		recs, err := src.Search(ctx, niche, language)
		if err != nil {
			events.Emit(a.Events, "aggregate", "source failed, skipping", map[string]any{
				"source": src.Name(),
				"error":  err.Error(),
			})
			continue
		}
		added := 0
		for _, rec := range recs {
			if len(merged) >= max {
				break
			}
			if rec.URL != "" {
				if _, dup := seen[rec.URL]; dup {
					continue
				}
				seen[rec.URL] = struct{}{}
			}
			merged = append(merged, rec)
			added++
		}
		events.Emit(a.Events, "aggregate", "source merged", map[string]any{
			"source":   src.Name(),
			"returned": len(recs),
			"kept":     added,
		})
		if len(merged) >= max {
			break
		}
	}
	return merged
}

// Dedup removes duplicate URLs from records, keeping first occurrence.
// Records without a URL are never deduplicated against each other.
func Dedup(records []Record) []Record {
	out := make([]Record, 0, len(records))
	seen := make(map[string]struct{})
	for _, rec := range records {
		if rec.URL != "" {
			if _, dup := seen[rec.URL]; dup {
				continue
			}
			seen[rec.URL] = struct{}{}
		}
		out = append(out, rec)
	}
	return out
}
