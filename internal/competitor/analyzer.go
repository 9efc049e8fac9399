package competitor

import (
	"context"
	"sort"
	"time"

	"github.com/dmarchal/arbsuite/internal/events"
)

// Analyzer runs the live market pipeline: aggregate competitor records, then
// derive pricing statistics, saturation and the opportunity score. Each call
// returns a fresh Analysis; nothing is shared across invocations.
type Analyzer struct {
	Sources    []Source
	MaxResults int
	Events     events.Sink
}

// Market identifies one language market, optionally narrowed to a dialect.
type Market struct {
	Language string `json:"language" yaml:"language"`
	Dialect  string `json:"dialect,omitempty" yaml:"dialect,omitempty"`
}

// AnalyzeMarket aggregates competitors for a niche in one market and scores
// the opportunity. Partial source failures still produce a valid, lower
// confidence analysis.
func (an *Analyzer) AnalyzeMarket(ctx context.Context, niche string, market Market) Analysis {
	events.Emit(an.Events, "analyze", "starting competitor analysis", map[string]any{
		"niche":    niche,
		"language": market.Language,
		"dialect":  market.Dialect,
	})
	start := time.Now()

	agg := &Aggregator{MaxResults: an.MaxResults, Events: an.Events}
	competitors := agg.Collect(ctx, niche, market.Language, an.Sources)

	avg, rng := Stats(competitors)
	analysis := Analysis{
		Niche:            niche,
		Language:         market.Language,
		Dialect:          market.Dialect,
		Timestamp:        time.Now(),
		Competitors:      competitors,
		TotalFound:       len(competitors),
		AvgPrice:         avg,
		PriceRange:       rng,
		Saturation:       Classify(len(competitors)),
		OpportunityScore: Score(len(competitors), avg),
	}

	events.Emit(an.Events, "analyze", "competitor analysis complete", map[string]any{
		"total_found": analysis.TotalFound,
		"saturation":  string(analysis.Saturation),
		"score":       analysis.OpportunityScore,
		"elapsed_ms":  time.Since(start).Milliseconds(),
	})
	return analysis
}

// CompareMarkets analyzes the same niche across several markets and ranks
// the results by opportunity score, best first. The sort is stable, so
// markets with equal scores keep their input order.
func (an *Analyzer) CompareMarkets(ctx context.Context, niche string, markets []Market) []Analysis {
	analyses := make([]Analysis, 0, len(markets))
	for _, m := range markets {
		analyses = append(analyses, an.AnalyzeMarket(ctx, niche, m))
	}
	sort.SliceStable(analyses, func(i, j int) bool {
		return analyses[i].OpportunityScore > analyses[j].OpportunityScore
	})
	return analyses
}
