// Package market holds the static market/niche tables and the lookup-mode
// opportunity scorer used before any live aggregation is available.
package market

import "sort"

type Info struct {
	Code       string
	Countries  []string
	Saturation string
}

// Markets is the static per-language market table. Treat as immutable
// configuration; lookups go through InfoFor.
var Markets = map[string]Info{
	"english":    {Code: "en", Countries: []string{"US", "UK", "CA", "AU"}, Saturation: "high"},
	"french":     {Code: "fr", Countries: []string{"FR", "BE", "CH", "CA"}, Saturation: "medium"},
	"german":     {Code: "de", Countries: []string{"DE", "AT", "CH"}, Saturation: "medium"},
	"spanish":    {Code: "es", Countries: []string{"ES", "MX", "AR", "CO"}, Saturation: "medium"},
	"italian":    {Code: "it", Countries: []string{"IT"}, Saturation: "low"},
	"portuguese": {Code: "pt", Countries: []string{"PT", "BR"}, Saturation: "low"},
}

// Niches is the catalog of info-product niches the suite knows about.
var Niches = []string{
	"sleep",
	"productivity",
	"fitness",
	"weight loss",
	"relationships",
	"dating",
	"money",
	"investing",
	"business",
	"side hustle",
	"mental health",
	"anxiety",
	"confidence",
	"communication",
	"parenting",
}

// highDemandNiches get a one-point boost in the lookup-mode score.
var highDemandNiches = map[string]struct{}{
	"sleep":        {},
	"productivity": {},
	"fitness":      {},
	"money":        {},
	"anxiety":      {},
}

func InfoFor(market string) (Info, bool) {
	info, ok := Markets[market]
	return info, ok
}

// OpportunityScore is the lookup-mode estimate: base score from the market's
// static saturation label plus a high-demand niche boost, capped at 10. It
// uses a coarser scale than the live scorer in internal/competitor; the two
// schedules are intentionally separate.
func OpportunityScore(niche, targetMarket string) int {
	saturation := "high"
	if info, ok := Markets[targetMarket]; ok {
		saturation = info.Saturation
	}

	score := 5
	switch saturation {
	case "low":
		score = 8
	case "medium":
		score = 7
	case "high":
		score = 5
	}
	if _, ok := highDemandNiches[niche]; ok {
		score++
	}
	if score > 10 {
		score = 10
	}
	return score
}

type Opportunity struct {
	Market     string   `json:"market"`
	Score      int      `json:"score"`
	Saturation string   `json:"saturation"`
	Countries  []string `json:"countries"`
}

// comparisonOrder fixes the candidate sequence for CompareMarkets so tie
// scores rank deterministically. English is excluded as the source market.
var comparisonOrder = []string{"french", "german", "spanish", "italian", "portuguese"}

// CompareMarkets scores a niche across every non-English market and ranks
// the results, best first. The sort is stable; ties keep comparisonOrder.
func CompareMarkets(niche string) []Opportunity {
	opps := make([]Opportunity, 0, len(comparisonOrder))
	for _, name := range comparisonOrder {
		info := Markets[name]
		opps = append(opps, Opportunity{
			Market:     name,
			Score:      OpportunityScore(niche, name),
			Saturation: info.Saturation,
			Countries:  info.Countries,
		})
	}
	sort.SliceStable(opps, func(i, j int) bool { return opps[i].Score > opps[j].Score })
	return opps
}

type NicheSuggestion struct {
	Niche string `json:"niche"`
	Score int    `json:"score"`
}

// SuggestNiches ranks the niche catalog for a target market, best first,
// stable on ties (catalog order breaks them).
func SuggestNiches(targetMarket string) []NicheSuggestion {
	out := make([]NicheSuggestion, 0, len(Niches))
	for _, niche := range Niches {
		out = append(out, NicheSuggestion{Niche: niche, Score: OpportunityScore(niche, targetMarket)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// ResearchPlan is the manual validation checklist emitted alongside a gap
// analysis.
type ResearchPlan struct {
	Steps       []string `json:"steps"`
	Tools       []string `json:"tools"`
	IdealResult string   `json:"ideal_result"`
}

func BuildResearchPlan(niche, targetMarket string) ResearchPlan {
	info := Markets[targetMarket]
	countries := info.Countries
	if len(countries) > 2 {
		countries = countries[:2]
	}
	return ResearchPlan{
		Steps: []string{
			"1. Search Google in " + targetMarket + ": '" + niche + "' + 'guide', 'protocol', 'method'",
			"2. Search Facebook Ad Library in " + joinComma(countries),
			"3. Check Gumroad, Etsy for existing products in " + targetMarket,
			"4. Count competitors (goal: <10 quality products)",
			"5. Check prices (opportunity if yours is priced right)",
		},
		Tools: []string{
			"Google.com (change language to " + info.Code + ")",
			"Facebook Ad Library",
			"Gumroad",
			"Etsy",
		},
		IdealResult: "Found <10 quality products in " + targetMarket + " market",
	}
}

func joinComma(items []string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += ", "
		}
		out += item
	}
	return out
}
