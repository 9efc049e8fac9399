package market

import "testing"

func TestOpportunityScoreBySaturation(t *testing.T) {
	cases := map[string]int{
		"portuguese": 8, // low
		"german":     7, // medium
		"english":    5, // high
	}
	for name, want := range cases {
		if got := OpportunityScore("parenting", name); got != want {
			t.Fatalf("OpportunityScore(parenting, %s) = %d, want %d", name, got, want)
		}
	}
}

func TestOpportunityScoreHighDemandBoost(t *testing.T) {
	base := OpportunityScore("parenting", "italian")
	boosted := OpportunityScore("sleep", "italian")
	if boosted != base+1 {
		t.Fatalf("expected +1 boost: base=%d boosted=%d", base, boosted)
	}
}

func TestOpportunityScoreUnknownMarketTreatedAsHigh(t *testing.T) {
	if got := OpportunityScore("parenting", "klingon"); got != 5 {
		t.Fatalf("unknown market: got %d, want 5", got)
	}
}

func TestCompareMarketsSkipsEnglishAndRanks(t *testing.T) {
	opps := CompareMarkets("sleep")
	if len(opps) != len(Markets)-1 {
		t.Fatalf("got %d opportunities, want %d", len(opps), len(Markets)-1)
	}
	for i, o := range opps {
		if o.Market == "english" {
			t.Fatal("english must be excluded as the source market")
		}
		if i > 0 && o.Score > opps[i-1].Score {
			t.Fatalf("not sorted descending at index %d", i)
		}
	}
	// Low-saturation markets lead.
	if opps[0].Saturation != "low" {
		t.Fatalf("best market saturation = %s, want low", opps[0].Saturation)
	}
}

func TestCompareMarketsTiesKeepComparisonOrder(t *testing.T) {
	// "dating" is not high demand, so both low markets score 8 and all
	// three medium markets score 7.
	opps := CompareMarkets("dating")
	want := []string{"italian", "portuguese", "french", "german", "spanish"}
	if len(opps) != len(want) {
		t.Fatalf("got %d opportunities, want %d", len(opps), len(want))
	}
	for i, o := range opps {
		if o.Market != want[i] {
			t.Fatalf("index %d: market = %s, want %s", i, o.Market, want[i])
		}
	}
}

func TestCompareMarketsDeterministic(t *testing.T) {
	first := CompareMarkets("sleep")
	for i := 0; i < 5; i++ {
		again := CompareMarkets("sleep")
		for j := range first {
			if first[j].Market != again[j].Market {
				t.Fatalf("run %d: order differs at %d (%s vs %s)", i, j, first[j].Market, again[j].Market)
			}
		}
	}
}

func TestSuggestNichesRanked(t *testing.T) {
	suggestions := SuggestNiches("portuguese")
	if len(suggestions) != len(Niches) {
		t.Fatalf("got %d suggestions, want %d", len(suggestions), len(Niches))
	}
	for i := 1; i < len(suggestions); i++ {
		if suggestions[i].Score > suggestions[i-1].Score {
			t.Fatalf("not sorted descending at index %d", i)
		}
	}
	if suggestions[0].Niche != "sleep" {
		t.Fatalf("first suggestion = %s, want sleep (catalog order breaks ties)", suggestions[0].Niche)
	}
}

func TestBuildResearchPlan(t *testing.T) {
	plan := BuildResearchPlan("sleep", "french")
	if len(plan.Steps) != 5 {
		t.Fatalf("got %d steps, want 5", len(plan.Steps))
	}
	if plan.IdealResult == "" {
		t.Fatal("missing ideal result")
	}
}
