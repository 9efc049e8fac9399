package discovery

// QuickCheckResult is a pre-spend sanity assessment of a niche and market
// pair, produced without running any paid test.
type QuickCheckResult struct {
	Niche            string `json:"niche"`
	Market           string `json:"market"`
	CompetitorCount  int    `json:"competitor_count"`
	EstimatedDemand  string `json:"estimated_demand"`
	OpportunityScore int    `json:"opportunity_score"`
	Recommendation   string `json:"recommendation"`
}

var demandBonus = map[string]int{"low": 0, "medium": 2, "high": 4}

// QuickCheck scores an opportunity before any spend. The score combines a
// competition tier with a demand bonus; unknown demand levels count as
// medium. The score is intentionally not capped at 10.
func QuickCheck(niche, market string, competitorCount int, estimatedDemand string) QuickCheckResult {
	var score int
	switch {
	case competitorCount < 5:
		score = 10
	case competitorCount < 10:
		score = 8
	case competitorCount < 20:
		score = 6
	default:
		score = 3
	}

	bonus, ok := demandBonus[estimatedDemand]
	if !ok {
		bonus = 2
	}
	score += bonus

	var recommendation string
	switch {
	case score >= 8:
		recommendation = "STRONG: High potential. Proceed with discovery test."
	case score >= 6:
		recommendation = "MODERATE: Some potential. Worth testing with low budget."
	default:
		recommendation = "WEAK: Low potential. Consider different niche/market."
	}

	return QuickCheckResult{
		Niche:            niche,
		Market:           market,
		CompetitorCount:  competitorCount,
		EstimatedDemand:  estimatedDemand,
		OpportunityScore: score,
		Recommendation:   recommendation,
	}
}
