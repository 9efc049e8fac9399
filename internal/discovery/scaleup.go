package discovery

import "math"

// DefaultScaleMultiplier triples the budget after a successful test.
const DefaultScaleMultiplier = 3

// PlanScaleUp projects results at a larger budget from observed test
// metrics. The projection is linear and unclamped; when the test saw no
// clicks (cost per click 0) or no conversions (CPA is the +Inf sentinel)
// the corresponding estimates are 0.
func PlanScaleUp(plan TestPlan, result TestResult, scaleMultiplier float64) ScaleUpRecommendation {
	if scaleMultiplier <= 0 {
		scaleMultiplier = DefaultScaleMultiplier
	}
	newBudget := plan.DailyBudget * scaleMultiplier

	var clicksPerDay float64
	if result.Metrics.CostPerClick > 0 {
		clicksPerDay = newBudget / result.Metrics.CostPerClick
	}
	conversionsPerDay := clicksPerDay * result.Metrics.ConversionRate

	var dailyCost float64
	if !math.IsInf(result.Metrics.CPA, 1) {
		dailyCost = conversionsPerDay * result.Metrics.CPA
	}

	return ScaleUpRecommendation{
		CurrentDailyBudget:        plan.DailyBudget,
		NewDailyBudget:            newBudget,
		ScaleMultiplier:           scaleMultiplier,
		EstimatedDailyConversions: conversionsPerDay,
		EstimatedDailyCost:        dailyCost,
	}
}
