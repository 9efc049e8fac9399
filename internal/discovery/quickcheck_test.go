package discovery

import (
	"strings"
	"testing"
)

func TestQuickCheckCompetitionTiers(t *testing.T) {
	cases := map[int]int{
		0:  10,
		4:  10,
		5:  8,
		9:  8,
		10: 6,
		19: 6,
		20: 3,
		50: 3,
	}
	for count, want := range cases {
		got := QuickCheck("sleep", "portuguese", count, "low")
		if got.OpportunityScore != want {
			t.Fatalf("QuickCheck(count=%d, low) score = %d, want %d", count, got.OpportunityScore, want)
		}
	}
}

func TestQuickCheckDemandBonus(t *testing.T) {
	low := QuickCheck("sleep", "portuguese", 10, "low").OpportunityScore
	medium := QuickCheck("sleep", "portuguese", 10, "medium").OpportunityScore
	high := QuickCheck("sleep", "portuguese", 10, "high").OpportunityScore
	if medium != low+2 || high != low+4 {
		t.Fatalf("demand bonuses off: low=%d medium=%d high=%d", low, medium, high)
	}
}

func TestQuickCheckUnknownDemandCountsAsMedium(t *testing.T) {
	unknown := QuickCheck("sleep", "portuguese", 10, "enormous").OpportunityScore
	medium := QuickCheck("sleep", "portuguese", 10, "medium").OpportunityScore
	if unknown != medium {
		t.Fatalf("unknown demand score = %d, want %d", unknown, medium)
	}
}

func TestQuickCheckScoreNotCapped(t *testing.T) {
	got := QuickCheck("sleep", "portuguese", 0, "high")
	if got.OpportunityScore != 14 {
		t.Fatalf("score = %d, want 14 (no cap)", got.OpportunityScore)
	}
}

func TestQuickCheckRecommendationBands(t *testing.T) {
	strong := QuickCheck("sleep", "portuguese", 0, "low")
	if !strings.HasPrefix(strong.Recommendation, "STRONG") {
		t.Fatalf("score %d recommendation = %q, want STRONG", strong.OpportunityScore, strong.Recommendation)
	}
	moderate := QuickCheck("sleep", "portuguese", 10, "low")
	if !strings.HasPrefix(moderate.Recommendation, "MODERATE") {
		t.Fatalf("score %d recommendation = %q, want MODERATE", moderate.OpportunityScore, moderate.Recommendation)
	}
	weak := QuickCheck("sleep", "portuguese", 25, "low")
	if !strings.HasPrefix(weak.Recommendation, "WEAK") {
		t.Fatalf("score %d recommendation = %q, want WEAK", weak.OpportunityScore, weak.Recommendation)
	}
}
