// market-scan runs a live competitor analysis for a niche in one target
// market and prints the resulting opportunity assessment with a price
// recommendation.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmarchal/arbsuite/internal/competitor"
	"github.com/dmarchal/arbsuite/internal/config"
	"github.com/dmarchal/arbsuite/internal/events"
	"github.com/dmarchal/arbsuite/internal/fetch"
	"github.com/dmarchal/arbsuite/internal/pricing"
	"github.com/dmarchal/arbsuite/internal/store"
)

func main() {
	niche := flag.String("niche", "", "Product niche to analyze")
	language := flag.String("language", "english", "Target market language")
	dialect := flag.String("dialect", "", "Target dialect (e.g. brazilian, mexican)")
	configPath := flag.String("config", "", "Path to YAML config")
	save := flag.Bool("save", false, "Save the analysis to the local store")
	asJSON := flag.Bool("json", false, "Print the analysis as JSON")
	flag.Parse()

	if *niche == "" {
		fmt.Fprintln(os.Stderr, "usage: market-scan -niche <niche> [-language <lang>] [-dialect <dialect>]")
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := events.NewLogger(cfg.Logging.Level, cfg.Logging.Format)

	var sources []competitor.Source
	serp, err := fetch.NewSerpSource(fetch.SerpConfig{
		APIKey:      cfg.Serp.APIKey,
		BaseURL:     cfg.Serp.BaseURL,
		QueryPacing: cfg.Aggregation.QueryPacing,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("search source unavailable")
	} else {
		sources = append(sources, serp)
	}
	sources = append(sources, fetch.NewMarketplaceSource(fetch.MarketplaceConfig{
		BaseURL:    cfg.Marketplace.BaseURL,
		ChromePath: cfg.Chrome.Path,
	}))

	analyzer := &competitor.Analyzer{
		Sources:    sources,
		MaxResults: cfg.Aggregation.MaxResults,
		Events:     &events.LogSink{Logger: logger},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	analysis := analyzer.AnalyzeMarket(ctx, *niche, competitor.Market{Language: *language, Dialect: *dialect})
	rec := pricing.RecommendForDialect(analysis.AvgPrice, analysis.PriceRange, *language, *dialect)

	if *asJSON {
		out := struct {
			Analysis competitor.Analysis             `json:"analysis"`
			Pricing  pricing.LocalizedRecommendation `json:"pricing"`
		}{analysis, rec}
		blob, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			logger.Fatal().Err(err).Msg("encode analysis")
		}
		fmt.Println(string(blob))
	} else {
		printAnalysis(analysis, rec)
	}

	if *save {
		db, err := store.Open(cfg.Store.Path)
		if err != nil {
			logger.Fatal().Err(err).Msg("open store")
		}
		defer db.Close()
		if err := db.SaveAnalysis(analysis); err != nil {
			logger.Fatal().Err(err).Msg("save analysis")
		}
		logger.Info().Str("path", cfg.Store.Path).Msg("analysis saved")
	}
}

func printAnalysis(a competitor.Analysis, rec pricing.LocalizedRecommendation) {
	fmt.Printf("Niche: %s\n", a.Niche)
	fmt.Printf("Market: %s", a.Language)
	if a.Dialect != "" {
		fmt.Printf(" (%s)", a.Dialect)
	}
	fmt.Println()
	fmt.Printf("Scanned: %s\n", a.Timestamp.Format(time.RFC3339))
	fmt.Println()
	fmt.Printf("Competitors found: %d\n", a.TotalFound)
	fmt.Printf("Saturation: %s\n", a.Saturation)
	fmt.Printf("Opportunity score: %.1f/10\n", a.OpportunityScore)
	if a.AvgPrice > 0 {
		fmt.Printf("Avg competitor price: %.2f (range %.2f-%.2f)\n", a.AvgPrice, a.PriceRange.Min, a.PriceRange.Max)
	} else {
		fmt.Println("No competitor pricing found")
	}
	fmt.Println()
	fmt.Printf("Recommended price: %s\n", rec.Display)
	fmt.Printf("Rationale: %s\n", rec.Rationale)
}
