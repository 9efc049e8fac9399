package market

// RevenueEstimate projects sales economics for one day and for a 30-day
// month. All projections are linear in the inputs; no clamping.
type RevenueEstimate struct {
	Revenue float64 `json:"revenue"`
	AdSpend float64 `json:"ad_spend"`
	Profit  float64 `json:"profit"`
	Sales   float64 `json:"sales"`
}

type RevenueProjection struct {
	Daily   RevenueEstimate `json:"daily"`
	Monthly RevenueEstimate `json:"monthly"`
}

// EstimateRevenue projects revenue potential from a product price, a daily
// ad budget, cost per acquisition and landing page conversion rate. The
// click estimate follows the original funnel model: budget divided by the
// effective cost per click implied by CPA and conversion rate.
func EstimateRevenue(price, dailyBudget, cpa, conversionRate float64) RevenueProjection {
	var clicksPerDay float64
	if cpa > 0 && conversionRate > 0 {
		clicksPerDay = dailyBudget / (cpa / (conversionRate * 100))
	}
	salesPerDay := clicksPerDay * conversionRate
	revenuePerDay := salesPerDay * price

	daily := RevenueEstimate{
		Revenue: revenuePerDay,
		AdSpend: dailyBudget,
		Profit:  revenuePerDay - dailyBudget,
		Sales:   salesPerDay,
	}
	return RevenueProjection{
		Daily: daily,
		Monthly: RevenueEstimate{
			Revenue: daily.Revenue * 30,
			AdSpend: daily.AdSpend * 30,
			Profit:  daily.Profit * 30,
			Sales:   daily.Sales * 30,
		},
	}
}
