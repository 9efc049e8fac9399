// Package competitor implements the live opportunity pipeline: aggregation of
// competitor records from external sources, pricing statistics, saturation
// classification and opportunity scoring.
package competitor

import "time"

type SourceType string

const (
	SourceSearchEngine SourceType = "search-engine"
	SourceMarketplace  SourceType = "marketplace"
)

type Saturation string

const (
	SaturationVeryLow  Saturation = "very_low"
	SaturationLow      Saturation = "low"
	SaturationMedium   Saturation = "medium"
	SaturationHigh     Saturation = "high"
	SaturationVeryHigh Saturation = "very_high"
)

// Record is one competing offer discovered by a source. Identity is the
// canonical URL; records without a URL are treated as always-unique.
type Record struct {
	Title   string     `json:"title"`
	URL     string     `json:"url"`
	Snippet string     `json:"snippet,omitempty"`
	Price   *float64   `json:"price,omitempty"`
	Source  SourceType `json:"source"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Analysis is the result of analyzing one niche in one market. Competitors
// keeps discovery order with duplicates removed; TotalFound always equals
// len(Competitors).
type Analysis struct {
	Niche            string     `json:"niche"`
	Language         string     `json:"language"`
	Dialect          string     `json:"dialect,omitempty"`
	Timestamp        time.Time  `json:"timestamp"`
	Competitors      []Record   `json:"competitors"`
	TotalFound       int        `json:"total_found"`
	AvgPrice         float64    `json:"avg_price"`
	PriceRange       PriceRange `json:"price_range"`
	Saturation       Saturation `json:"saturation"`
	OpportunityScore float64    `json:"opportunity_score"`
}
