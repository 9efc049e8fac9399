package pricing

import (
	"fmt"
	"math"

	"github.com/dmarchal/arbsuite/internal/competitor"
)

// DefaultPrice is used when no competitor pricing signal exists.
const DefaultPrice = 27

// undercutFactor prices slightly below the observed average to stay
// competitive.
const undercutFactor = 0.85

// preferredEndings are tried in order; ties resolve to the first tested.
// Single digits round within the decade, two digits within the century.
var preferredEndings = []int{7, 9, 97, 99}

type Recommendation struct {
	RecommendedPrice float64               `json:"recommended_price"`
	CompetitorAvg    float64               `json:"competitor_avg"`
	CompetitorRange  competitor.PriceRange `json:"competitor_range"`
	Rationale        string                `json:"rationale"`
}

// LocalizedRecommendation is the dialect-aware variant with currency
// attached.
type LocalizedRecommendation struct {
	Recommendation
	Dialect        string `json:"dialect,omitempty"`
	CurrencyCode   string `json:"currency_code"`
	CurrencySymbol string `json:"currency_symbol"`
	Display        string `json:"display"`
}

// Recommend converts competitor pricing statistics into a sale price. A
// positive average is undercut by 15% and scaled by the market multiplier;
// with no pricing signal the default price is scaled instead. The result is
// then snapped to the nearest preferred ending.
func Recommend(avgPrice float64, priceRange competitor.PriceRange, marketMultiplier float64) Recommendation {
	var recommended float64
	if avgPrice > 0 {
		recommended = avgPrice * undercutFactor * marketMultiplier
	} else {
		recommended = DefaultPrice * marketMultiplier
	}

	final := applyPreferredEnding(recommended)

	rationale := "No competitor pricing found; default price applied"
	if avgPrice > 0 {
		rationale = fmt.Sprintf("Priced %.0f%% below average to be competitive", (avgPrice-final)/avgPrice*100)
	}
	return Recommendation{
		RecommendedPrice: final,
		CompetitorAvg:    avgPrice,
		CompetitorRange:  priceRange,
		Rationale:        rationale,
	}
}

// RecommendForDialect prices for a specific dialect market: the multiplier
// and currency come from the dialect table, and the price is rounded to a
// whole number before the ending search (localized prices do not carry
// cents).
func RecommendForDialect(avgPrice float64, priceRange competitor.PriceRange, language, dialect string) LocalizedRecommendation {
	profile := ProfileFor(language, dialect)

	var recommended float64
	if avgPrice > 0 {
		recommended = avgPrice * undercutFactor * profile.PriceMultiplier
	} else {
		recommended = DefaultPrice * profile.PriceMultiplier
	}
	recommended = math.Round(recommended)
	final := applyPreferredEnding(recommended)

	rationale := "No competitor pricing found; default price applied"
	if avgPrice > 0 {
		rationale = fmt.Sprintf("Priced %.0f%% below average to be competitive", (avgPrice-final)/avgPrice*100)
	}
	return LocalizedRecommendation{
		Recommendation: Recommendation{
			RecommendedPrice: final,
			CompetitorAvg:    avgPrice,
			CompetitorRange:  priceRange,
			Rationale:        rationale,
		},
		Dialect:        dialect,
		CurrencyCode:   profile.CurrencyCode,
		CurrencySymbol: profile.CurrencySymbol,
		Display:        fmt.Sprintf("%s%.0f", profile.CurrencySymbol, final),
	}
}

// applyPreferredEnding snaps a price to the candidate ending closest to the
// unrounded value. Candidates are built within the price's own decade (for
// 7/9) or century (for 97/99); the first tested ending wins ties.
func applyPreferredEnding(recommended float64) float64 {
	best := recommended
	bestDist := math.Inf(1)
	for _, ending := range preferredEndings {
		var candidate float64
		if ending < 10 {
			candidate = math.Trunc(recommended/10)*10 + float64(ending)
		} else {
			candidate = math.Trunc(recommended/100)*100 + float64(ending)
		}
		if d := math.Abs(candidate - recommended); d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	return best
}
