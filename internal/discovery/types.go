// Package discovery implements the low-spend test funnel: test planning,
// result evaluation against go/no-go criteria, and scale-up projection.
package discovery

import (
	"encoding/json"
	"math"
)

type Decision string

const (
	DecisionGo       Decision = "GO"
	DecisionOptimize Decision = "OPTIMIZE"
	DecisionNoGo     Decision = "NO-GO"
)

type SuccessCriteria struct {
	MinCTR            float64 `json:"min_ctr"`
	MaxCPA            float64 `json:"max_cpa"`
	MinConversionRate float64 `json:"min_conversion_rate"`
}

// TestPlan describes one low-spend discovery test before it runs.
type TestPlan struct {
	Niche            string          `json:"niche"`
	TargetMarket     string          `json:"target_market"`
	DailyBudget      float64         `json:"daily_budget"`
	TotalBudget      float64         `json:"total_budget"`
	TestDurationDays int             `json:"test_duration_days"`
	EstimatedCPC     float64         `json:"estimated_cpc"`
	EstimatedClicks  int             `json:"estimated_clicks"`
	MinClicksNeeded  int             `json:"min_clicks_needed"`
	SuccessCriteria  SuccessCriteria `json:"success_criteria"`
	Status           string          `json:"status"`
}

// Metrics are the derived rates of a test. CPA is math.Inf(1) when the test
// produced no conversions; the sentinel never satisfies the CPA criterion
// and serializes as null.
type Metrics struct {
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversion_rate"`
	CPA            float64 `json:"cpa"`
	CostPerClick   float64 `json:"cost_per_click"`
}

type metricsJSON struct {
	CTR            float64  `json:"ctr"`
	ConversionRate float64  `json:"conversion_rate"`
	CPA            *float64 `json:"cpa"`
	CostPerClick   float64  `json:"cost_per_click"`
}

func (m Metrics) MarshalJSON() ([]byte, error) {
	out := metricsJSON{CTR: m.CTR, ConversionRate: m.ConversionRate, CostPerClick: m.CostPerClick}
	if !math.IsInf(m.CPA, 1) {
		cpa := m.CPA
		out.CPA = &cpa
	}
	return json.Marshal(out)
}

func (m *Metrics) UnmarshalJSON(b []byte) error {
	var in metricsJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	m.CTR = in.CTR
	m.ConversionRate = in.ConversionRate
	m.CostPerClick = in.CostPerClick
	if in.CPA == nil {
		m.CPA = math.Inf(1)
	} else {
		m.CPA = *in.CPA
	}
	return nil
}

type PassedCriteria struct {
	SufficientClicks   bool `json:"sufficient_clicks"`
	CTRGood            bool `json:"ctr_good"`
	CPAGood            bool `json:"cpa_good"`
	ConversionRateGood bool `json:"conversion_rate_good"`
}

func (p PassedCriteria) Count() int {
	n := 0
	for _, ok := range []bool{p.SufficientClicks, p.CTRGood, p.CPAGood, p.ConversionRateGood} {
		if ok {
			n++
		}
	}
	return n
}

// TestResult is the evaluated outcome of a discovery test. A decision is
// always present for any non-negative inputs.
type TestResult struct {
	Impressions    int            `json:"impressions"`
	Clicks         int            `json:"clicks"`
	Conversions    int            `json:"conversions"`
	TotalSpend     float64        `json:"total_spend"`
	Metrics        Metrics        `json:"metrics"`
	PassedCriteria PassedCriteria `json:"passed_criteria"`
	Decision       Decision       `json:"decision"`
	Recommendation string         `json:"recommendation"`
}

// ScaleUpRecommendation projects spend and outcomes at a higher budget.
type ScaleUpRecommendation struct {
	CurrentDailyBudget        float64 `json:"current_daily_budget"`
	NewDailyBudget            float64 `json:"new_daily_budget"`
	ScaleMultiplier           float64 `json:"scale_multiplier"`
	EstimatedDailyConversions float64 `json:"estimated_daily_conversions"`
	EstimatedDailyCost        float64 `json:"estimated_daily_cost"`
}
