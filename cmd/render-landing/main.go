// render-landing turns a blueprint JSON file into a landing page HTML file,
// optionally translating the copy into a target language/dialect first and
// capturing a screenshot of the rendered page.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/dmarchal/arbsuite/internal/config"
	"github.com/dmarchal/arbsuite/internal/events"
	"github.com/dmarchal/arbsuite/internal/landing"
	"github.com/dmarchal/arbsuite/internal/translate"
)

func main() {
	blueprintPath := flag.String("blueprint", "", "Path to blueprint JSON")
	outPath := flag.String("out", "landing_page.html", "Output HTML path")
	screenshotPath := flag.String("screenshot", "", "Capture a PNG screenshot to this path")
	language := flag.String("language", "", "Translate the blueprint copy into this language before rendering")
	dialect := flag.String("dialect", "", "Dialect for translation (e.g. brazilian, mexican)")
	configPath := flag.String("config", "", "Path to YAML config")
	flag.Parse()

	if *blueprintPath == "" {
		fmt.Fprintln(os.Stderr, "usage: render-landing -blueprint <file.json> [-out <file.html>] [-screenshot <file.png>] [-language <lang> [-dialect <dialect>]]")
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := events.NewLogger(cfg.Logging.Level, cfg.Logging.Format)

	blob, err := os.ReadFile(*blueprintPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("read blueprint")
	}
	var bp landing.Blueprint
	if err := json.Unmarshal(blob, &bp); err != nil {
		logger.Fatal().Err(err).Msg("parse blueprint")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if *language != "" {
		gen, err := translate.NewAnthropicGeneratorFromEnv()
		if err != nil {
			logger.Fatal().Err(err).Msg("translation requested but generator unavailable")
		}
		tr := translate.NewTranslator(gen)
		bp, err = tr.LocalizeBlueprint(ctx, bp, *language, *dialect)
		if err != nil {
			logger.Fatal().Err(err).Msg("localize blueprint")
		}
		logger.Info().Str("language", *language).Str("dialect", *dialect).Str("model", gen.ModelName()).Msg("blueprint localized")
	}

	if err := landing.WriteFile(bp, *outPath); err != nil {
		logger.Fatal().Err(err).Msg("write landing page")
	}
	logger.Info().Str("path", *outPath).Msg("landing page written")

	if *screenshotPath != "" {
		html, err := landing.BuildHTML(bp)
		if err != nil {
			logger.Fatal().Err(err).Msg("build html")
		}
		png, err := landing.Screenshot(ctx, html, cfg.Chrome.Path)
		if err != nil {
			logger.Fatal().Err(err).Msg("capture screenshot")
		}
		if err := os.WriteFile(*screenshotPath, png, 0o644); err != nil {
			logger.Fatal().Err(err).Msg("write screenshot")
		}
		logger.Info().Str("path", *screenshotPath).Msg("screenshot written")
	}
}
