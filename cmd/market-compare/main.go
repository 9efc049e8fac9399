// market-compare ranks markets for a niche using the static lookup tables,
// suggests niches for a market, and can project revenue for a price point.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/dmarchal/arbsuite/internal/market"
)

func main() {
	niche := flag.String("niche", "", "Niche to compare across markets")
	suggestFor := flag.String("suggest", "", "Suggest niches for this target market")
	plan := flag.Bool("plan", false, "Print a manual research plan (requires -niche and -market)")
	targetMarket := flag.String("market", "", "Target market for -plan")
	price := flag.Float64("price", 0, "Product price for revenue estimate")
	budget := flag.Float64("budget", 15, "Daily ad budget for revenue estimate")
	cpa := flag.Float64("cpa", 10, "Cost per acquisition for revenue estimate")
	convRate := flag.Float64("conversion-rate", 0.02, "Conversion rate for revenue estimate")
	asJSON := flag.Bool("json", false, "Print results as JSON")
	flag.Parse()

	_ = godotenv.Load()

	switch {
	case *plan:
		if *niche == "" || *targetMarket == "" {
			fmt.Fprintln(os.Stderr, "usage: market-compare -plan -niche <niche> -market <market>")
			os.Exit(2)
		}
		emit(*asJSON, market.BuildResearchPlan(*niche, *targetMarket), printPlan)
	case *suggestFor != "":
		emit(*asJSON, market.SuggestNiches(*suggestFor), printSuggestions)
	case *price > 0:
		emit(*asJSON, market.EstimateRevenue(*price, *budget, *cpa, *convRate), printRevenue)
	case *niche != "":
		emit(*asJSON, market.CompareMarkets(*niche), printOpportunities)
	default:
		fmt.Fprintln(os.Stderr, "usage: market-compare -niche <niche> | -suggest <market> | -price <price> | -plan -niche <niche> -market <market>")
		os.Exit(2)
	}
}

func emit[T any](asJSON bool, v T, print func(T)) {
	if asJSON {
		blob, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(string(blob))
		return
	}
	print(v)
}

func printOpportunities(opps []market.Opportunity) {
	fmt.Println("Market ranking:")
	for i, o := range opps {
		fmt.Printf("%d. %-12s score %d/10  saturation %-7s %v\n", i+1, o.Market, o.Score, o.Saturation, o.Countries)
	}
}

func printSuggestions(suggestions []market.NicheSuggestion) {
	fmt.Println("Niche ranking:")
	for i, s := range suggestions {
		fmt.Printf("%d. %-15s score %d/10\n", i+1, s.Niche, s.Score)
	}
}

func printRevenue(p market.RevenueProjection) {
	fmt.Printf("Daily:   revenue %.2f  spend %.2f  profit %.2f  sales %.1f\n",
		p.Daily.Revenue, p.Daily.AdSpend, p.Daily.Profit, p.Daily.Sales)
	fmt.Printf("Monthly: revenue %.2f  spend %.2f  profit %.2f  sales %.1f\n",
		p.Monthly.Revenue, p.Monthly.AdSpend, p.Monthly.Profit, p.Monthly.Sales)
}

func printPlan(p market.ResearchPlan) {
	fmt.Println("Research plan:")
	for _, step := range p.Steps {
		fmt.Println("  " + step)
	}
	fmt.Println("Tools:")
	for _, tool := range p.Tools {
		fmt.Println("  - " + tool)
	}
	fmt.Println("Ideal result: " + p.IdealResult)
}
