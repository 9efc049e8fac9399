package discovery

import "math"

// Default thresholds for a discovery test.
const (
	DefaultDailyBudget       = 15.0
	DefaultTestDurationDays  = 3
	DefaultMinClicks         = 50
	DefaultMinCTR            = 0.02
	DefaultMaxCPA            = 15.0
	DefaultMinConversionRate = 0.01
	DefaultEstimatedCPC      = 0.5
)

type Config struct {
	DailyBudget       float64
	TestDurationDays  int
	MinClicks         int
	MinCTR            float64
	MaxCPA            float64
	MinConversionRate float64
}

// Validator evaluates low-spend tests against fixed success criteria. It is
// state-free: every call computes from its arguments only.
type Validator struct {
	cfg Config
}

func NewValidator(cfg Config) *Validator {
	if cfg.DailyBudget <= 0 {
		cfg.DailyBudget = DefaultDailyBudget
	}
	if cfg.TestDurationDays <= 0 {
		cfg.TestDurationDays = DefaultTestDurationDays
	}
	if cfg.MinClicks <= 0 {
		cfg.MinClicks = DefaultMinClicks
	}
	if cfg.MinCTR <= 0 {
		cfg.MinCTR = DefaultMinCTR
	}
	if cfg.MaxCPA <= 0 {
		cfg.MaxCPA = DefaultMaxCPA
	}
	if cfg.MinConversionRate <= 0 {
		cfg.MinConversionRate = DefaultMinConversionRate
	}
	return &Validator{cfg: cfg}
}

// CreateTestPlan builds the plan for a low-spend test of a niche in a
// market. estimatedCPC defaults when non-positive.
func (v *Validator) CreateTestPlan(niche, targetMarket string, estimatedCPC float64) TestPlan {
	if estimatedCPC <= 0 {
		estimatedCPC = DefaultEstimatedCPC
	}
	totalBudget := v.cfg.DailyBudget * float64(v.cfg.TestDurationDays)
	return TestPlan{
		Niche:            niche,
		TargetMarket:     targetMarket,
		DailyBudget:      v.cfg.DailyBudget,
		TotalBudget:      totalBudget,
		TestDurationDays: v.cfg.TestDurationDays,
		EstimatedCPC:     estimatedCPC,
		EstimatedClicks:  int(totalBudget / estimatedCPC),
		MinClicksNeeded:  v.cfg.MinClicks,
		SuccessCriteria: SuccessCriteria{
			MinCTR:            v.cfg.MinCTR,
			MaxCPA:            v.cfg.MaxCPA,
			MinConversionRate: v.cfg.MinConversionRate,
		},
		Status: "planned",
	}
}

// Fixed recommendation text per decision branch.
const (
	recommendScale    = "SCALE: Product shows strong potential. Increase budget 3x and continue monitoring."
	recommendOptimize = "OPTIMIZE: Some promise but needs improvement. Test different ad creative or adjust landing page."
	recommendStop     = "STOP: Product not performing. Consider different niche or market."
)

// Evaluate turns raw test counts into metrics, criteria checks and a
// GO/OPTIMIZE/NO-GO decision. Zero denominators are guarded: CTR and
// cost-per-click fall back to 0, CPA to +Inf (which can never pass).
func (v *Validator) Evaluate(impressions, clicks, conversions int, totalSpend float64) TestResult {
	m := Metrics{CPA: math.Inf(1)}
	if impressions > 0 {
		m.CTR = float64(clicks) / float64(impressions)
	}
	if clicks > 0 {
		m.ConversionRate = float64(conversions) / float64(clicks)
		m.CostPerClick = totalSpend / float64(clicks)
	}
	if conversions > 0 {
		m.CPA = totalSpend / float64(conversions)
	}

	passed := PassedCriteria{
		SufficientClicks:   clicks >= v.cfg.MinClicks,
		CTRGood:            m.CTR >= v.cfg.MinCTR,
		CPAGood:            conversions > 0 && m.CPA <= v.cfg.MaxCPA,
		ConversionRateGood: m.ConversionRate >= v.cfg.MinConversionRate,
	}

	result := TestResult{
		Impressions:    impressions,
		Clicks:         clicks,
		Conversions:    conversions,
		TotalSpend:     totalSpend,
		Metrics:        m,
		PassedCriteria: passed,
	}
	switch n := passed.Count(); {
	case n >= 3:
		result.Decision = DecisionGo
		result.Recommendation = recommendScale
	case n == 2:
		result.Decision = DecisionOptimize
		result.Recommendation = recommendOptimize
	default:
		result.Decision = DecisionNoGo
		result.Recommendation = recommendStop
	}
	return result
}

func (v *Validator) Criteria() SuccessCriteria {
	return SuccessCriteria{
		MinCTR:            v.cfg.MinCTR,
		MaxCPA:            v.cfg.MaxCPA,
		MinConversionRate: v.cfg.MinConversionRate,
	}
}

func (v *Validator) MinClicks() int { return v.cfg.MinClicks }

func (v *Validator) DailyBudget() float64 { return v.cfg.DailyBudget }
