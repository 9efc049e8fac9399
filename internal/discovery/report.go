package discovery

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// RenderReport formats a test plan and its evaluated result as a
// human-readable text report. A CPA with no conversions renders as N/A.
func RenderReport(plan TestPlan, result TestResult, now time.Time) string {
	var b strings.Builder

	fmt.Fprintln(&b, "╔════════════════════════════════════════════════════════════════╗")
	fmt.Fprintln(&b, "║          DISCOVERY TEST REPORT                                 ║")
	fmt.Fprintln(&b, "╚════════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "PRODUCT INFO")
	fmt.Fprintf(&b, "Niche: %s\n", plan.Niche)
	fmt.Fprintf(&b, "Market: %s\n", plan.TargetMarket)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "TEST PARAMETERS")
	fmt.Fprintf(&b, "Daily Budget: $%.2f\n", plan.DailyBudget)
	fmt.Fprintf(&b, "Test Duration: %d days\n", plan.TestDurationDays)
	fmt.Fprintf(&b, "Total Budget: $%.2f\n", plan.TotalBudget)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "RESULTS")
	fmt.Fprintf(&b, "Impressions: %d\n", result.Impressions)
	fmt.Fprintf(&b, "Clicks: %d\n", result.Clicks)
	fmt.Fprintf(&b, "Conversions: %d\n", result.Conversions)
	fmt.Fprintf(&b, "Total Spend: $%.2f\n", result.TotalSpend)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "METRICS")
	fmt.Fprintf(&b, "CTR: %.2f%%\n", result.Metrics.CTR*100)
	fmt.Fprintf(&b, "Conversion Rate: %.2f%%\n", result.Metrics.ConversionRate*100)
	fmt.Fprintf(&b, "CPA: %s\n", formatCPA(result.Metrics.CPA))
	fmt.Fprintf(&b, "Cost per Click: $%.2f\n", result.Metrics.CostPerClick)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "CRITERIA CHECK")
	fmt.Fprintf(&b, "%s Sufficient Clicks (>= %d)\n", mark(result.PassedCriteria.SufficientClicks), plan.MinClicksNeeded)
	fmt.Fprintf(&b, "%s CTR >= %.1f%%\n", mark(result.PassedCriteria.CTRGood), plan.SuccessCriteria.MinCTR*100)
	fmt.Fprintf(&b, "%s CPA <= $%.2f\n", mark(result.PassedCriteria.CPAGood), plan.SuccessCriteria.MaxCPA)
	fmt.Fprintf(&b, "%s Conv Rate >= %.1f%%\n", mark(result.PassedCriteria.ConversionRateGood), plan.SuccessCriteria.MinConversionRate*100)
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "DECISION: %s\n", result.Decision)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "RECOMMENDATION:")
	fmt.Fprintln(&b, result.Recommendation)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "═══════════════════════════════════════════════════════════════════")
	fmt.Fprintf(&b, "Report generated: %s\n", now.Format("2006-01-02 15:04:05"))

	return b.String()
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func formatCPA(cpa float64) string {
	if math.IsInf(cpa, 1) {
		return "N/A"
	}
	return fmt.Sprintf("$%.2f", cpa)
}
