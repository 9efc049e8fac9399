package discovery

import (
	"math"
	"testing"
)

func TestCreateTestPlanDefaults(t *testing.T) {
	v := NewValidator(Config{})
	plan := v.CreateTestPlan("sleep", "portuguese", 0)

	if plan.DailyBudget != 15 || plan.TestDurationDays != 3 {
		t.Fatalf("unexpected budget/duration: %+v", plan)
	}
	if plan.TotalBudget != 45 {
		t.Fatalf("TotalBudget = %v, want 45", plan.TotalBudget)
	}
	if plan.EstimatedCPC != 0.5 {
		t.Fatalf("EstimatedCPC = %v, want 0.5", plan.EstimatedCPC)
	}
	if plan.EstimatedClicks != 90 {
		t.Fatalf("EstimatedClicks = %d, want 90", plan.EstimatedClicks)
	}
	if plan.MinClicksNeeded != 50 {
		t.Fatalf("MinClicksNeeded = %d, want 50", plan.MinClicksNeeded)
	}
	if plan.SuccessCriteria.MinCTR != 0.02 || plan.SuccessCriteria.MaxCPA != 15 || plan.SuccessCriteria.MinConversionRate != 0.01 {
		t.Fatalf("unexpected criteria: %+v", plan.SuccessCriteria)
	}
	if plan.Status != "planned" {
		t.Fatalf("Status = %q, want planned", plan.Status)
	}
}

func TestEvaluateGoCase(t *testing.T) {
	v := NewValidator(Config{})
	// 150 clicks, CTR 3%, 10 conversions at $8 CPA, conversion rate 6.7%.
	result := v.Evaluate(5000, 150, 10, 80)

	if result.PassedCriteria.Count() != 4 {
		t.Fatalf("passed %d criteria, want 4: %+v", result.PassedCriteria.Count(), result.PassedCriteria)
	}
	if result.Decision != DecisionGo {
		t.Fatalf("Decision = %s, want GO", result.Decision)
	}
	if result.Recommendation == "" {
		t.Fatal("missing recommendation")
	}
	if math.Abs(result.Metrics.CPA-8) > 1e-9 {
		t.Fatalf("CPA = %v, want 8", result.Metrics.CPA)
	}
}

func TestEvaluateOptimizeCase(t *testing.T) {
	v := NewValidator(Config{})
	// 60 clicks pass, conversion rate 2/60 passes; CTR 0.6% and CPA $20 fail.
	result := v.Evaluate(10000, 60, 2, 40)

	if got := result.PassedCriteria.Count(); got != 2 {
		t.Fatalf("passed %d criteria, want 2: %+v", got, result.PassedCriteria)
	}
	if result.Decision != DecisionOptimize {
		t.Fatalf("Decision = %s, want OPTIMIZE", result.Decision)
	}
}

func TestEvaluateNoGoCase(t *testing.T) {
	v := NewValidator(Config{})
	result := v.Evaluate(10000, 20, 0, 40)
	if result.Decision != DecisionNoGo {
		t.Fatalf("Decision = %s, want NO-GO", result.Decision)
	}
}

func TestEvaluateZeroConversionsCPASentinel(t *testing.T) {
	v := NewValidator(Config{})
	result := v.Evaluate(5000, 150, 0, 80)

	if !math.IsInf(result.Metrics.CPA, 1) {
		t.Fatalf("CPA = %v, want +Inf", result.Metrics.CPA)
	}
	if result.PassedCriteria.CPAGood {
		t.Fatal("CPA criterion must never pass with zero conversions")
	}
}

func TestEvaluateZeroDenominatorGuards(t *testing.T) {
	v := NewValidator(Config{})
	result := v.Evaluate(0, 0, 0, 0)

	if result.Metrics.CTR != 0 || result.Metrics.ConversionRate != 0 || result.Metrics.CostPerClick != 0 {
		t.Fatalf("expected zeroed rates: %+v", result.Metrics)
	}
	if !math.IsInf(result.Metrics.CPA, 1) {
		t.Fatalf("CPA = %v, want +Inf", result.Metrics.CPA)
	}
	if result.Decision != DecisionNoGo {
		t.Fatalf("Decision = %s, want NO-GO", result.Decision)
	}
}

func TestEvaluateAlwaysDecides(t *testing.T) {
	v := NewValidator(Config{})
	for _, c := range []struct {
		impressions, clicks, conversions int
		spend                            float64
	}{
		{0, 0, 0, 0},
		{1, 0, 0, 0},
		{100, 100, 100, 1},
		{1000000, 1, 0, 500},
	} {
		result := v.Evaluate(c.impressions, c.clicks, c.conversions, c.spend)
		switch result.Decision {
		case DecisionGo, DecisionOptimize, DecisionNoGo:
		default:
			t.Fatalf("no decision for %+v", c)
		}
	}
}

func TestValidatorCustomThresholds(t *testing.T) {
	v := NewValidator(Config{MinClicks: 10, MinCTR: 0.05, MaxCPA: 5, MinConversionRate: 0.2})
	result := v.Evaluate(100, 10, 2, 10)
	// clicks ok, CTR 10% ok, CPA 5 ok, conversion rate 20% ok
	if result.Decision != DecisionGo {
		t.Fatalf("Decision = %s, want GO: %+v", result.Decision, result.PassedCriteria)
	}
}
