package competitor

// Classify maps a competitor count to a saturation tier.
func Classify(count int) Saturation {
	switch {
	case count < 5:
		return SaturationVeryLow
	case count < 10:
		return SaturationLow
	case count < 20:
		return SaturationMedium
	case count < 40:
		return SaturationHigh
	default:
		return SaturationVeryHigh
	}
}

// competitionPenalty shares its breakpoints with Classify but keeps its own
// schedule. The lookup-mode scorer in internal/market uses a third schedule;
// the three are deliberately not unified (they were tuned independently and
// ranking outcomes depend on them).
func competitionPenalty(count int) float64 {
	switch {
	case count < 5:
		return 0
	case count < 10:
		return 1
	case count < 20:
		return 3
	case count < 40:
		return 5
	default:
		return 7
	}
}

// Score is the live-mode opportunity score: competitor density penalty plus
// pricing-headroom bonuses, clamped to [0,10]. avgPrice below 20 leaves room
// to price higher; above 50 leaves room to undercut.
func Score(count int, avgPrice float64) float64 {
	score := 10.0 - competitionPenalty(count)
	if avgPrice > 0 && avgPrice < 20 {
		score++
	} else if avgPrice > 50 {
		score++
	}
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}
