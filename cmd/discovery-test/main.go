// discovery-test plans a low-spend validation test, evaluates its results
// against the go/no-go criteria, and prints the report. A quick mode scores
// an opportunity without spending anything.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmarchal/arbsuite/internal/config"
	"github.com/dmarchal/arbsuite/internal/discovery"
	"github.com/dmarchal/arbsuite/internal/events"
	"github.com/dmarchal/arbsuite/internal/store"
)

func main() {
	niche := flag.String("niche", "", "Product niche")
	targetMarket := flag.String("market", "", "Target market")
	cpc := flag.Float64("cpc", 0, "Estimated cost per click (0 uses the default)")
	impressions := flag.Int("impressions", -1, "Observed ad impressions")
	clicks := flag.Int("clicks", 0, "Observed ad clicks")
	conversions := flag.Int("conversions", 0, "Observed conversions")
	spend := flag.Float64("spend", 0, "Total amount spent")
	quick := flag.Bool("quick", false, "Quick pre-spend check instead of a full test")
	competitors := flag.Int("competitors", 0, "Competitor count for -quick")
	demand := flag.String("demand", "medium", "Estimated demand for -quick: low, medium, high")
	outPath := flag.String("out", "", "Save test data to this JSON file")
	configPath := flag.String("config", "", "Path to YAML config")
	save := flag.Bool("save", false, "Save the test run to the local store")
	flag.Parse()

	if *niche == "" || *targetMarket == "" {
		fmt.Fprintln(os.Stderr, "usage: discovery-test -niche <niche> -market <market> [flags]")
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := events.NewLogger(cfg.Logging.Level, cfg.Logging.Format)

	if *quick {
		result := discovery.QuickCheck(*niche, *targetMarket, *competitors, *demand)
		fmt.Printf("Niche: %s\n", result.Niche)
		fmt.Printf("Market: %s\n", result.Market)
		fmt.Printf("Competitors: %d\n", result.CompetitorCount)
		fmt.Printf("Estimated demand: %s\n", result.EstimatedDemand)
		fmt.Printf("Opportunity score: %d\n", result.OpportunityScore)
		fmt.Println(result.Recommendation)
		return
	}

	validator := discovery.NewValidator(discovery.Config{
		DailyBudget:       cfg.Discovery.DailyBudget,
		TestDurationDays:  cfg.Discovery.TestDurationDays,
		MinClicks:         cfg.Discovery.MinClicks,
		MinCTR:            cfg.Discovery.MinCTR,
		MaxCPA:            cfg.Discovery.MaxCPA,
		MinConversionRate: cfg.Discovery.MinConversionRate,
	})
	plan := validator.CreateTestPlan(*niche, *targetMarket, *cpc)

	if *impressions < 0 {
		// No results supplied; print the plan only.
		fmt.Printf("Test plan for %s in %s:\n", plan.Niche, plan.TargetMarket)
		fmt.Printf("  Daily budget: $%.2f over %d days (total $%.2f)\n", plan.DailyBudget, plan.TestDurationDays, plan.TotalBudget)
		fmt.Printf("  Estimated clicks: %d (min needed %d)\n", plan.EstimatedClicks, plan.MinClicksNeeded)
		fmt.Printf("  Criteria: CTR >= %.1f%%, CPA <= $%.2f, conversion rate >= %.1f%%\n",
			plan.SuccessCriteria.MinCTR*100, plan.SuccessCriteria.MaxCPA, plan.SuccessCriteria.MinConversionRate*100)
		return
	}

	result := validator.Evaluate(*impressions, *clicks, *conversions, *spend)
	now := time.Now()
	fmt.Print(discovery.RenderReport(plan, result, now))

	if result.Decision == discovery.DecisionGo {
		scale := discovery.PlanScaleUp(plan, result, discovery.DefaultScaleMultiplier)
		fmt.Println()
		fmt.Printf("Scale-up: $%.2f/day -> $%.2f/day (x%.0f)\n", scale.CurrentDailyBudget, scale.NewDailyBudget, scale.ScaleMultiplier)
		fmt.Printf("Estimated daily conversions: %.1f\n", scale.EstimatedDailyConversions)
		fmt.Printf("Estimated daily ad cost: $%.2f\n", scale.EstimatedDailyCost)
	}

	if *outPath != "" {
		if err := discovery.SaveTestData(*outPath, plan, result, now); err != nil {
			logger.Fatal().Err(err).Msg("save test data")
		}
		logger.Info().Str("path", *outPath).Msg("test data saved")
	}
	if *save {
		db, err := store.Open(cfg.Store.Path)
		if err != nil {
			logger.Fatal().Err(err).Msg("open store")
		}
		defer db.Close()
		record := discovery.TestRecord{TestPlan: plan, Results: result, Timestamp: now}
		if err := db.SaveTestRun(record); err != nil {
			logger.Fatal().Err(err).Msg("save test run")
		}
		logger.Info().Str("path", cfg.Store.Path).Msg("test run saved")
	}
}
