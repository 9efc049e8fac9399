package fetch

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/dmarchal/arbsuite/internal/competitor"
)

const (
	DefaultMarketplaceBaseURL = "https://gumroad.com"
	marketplaceDiscoverPath   = "/discover"
	maxMarketplaceProducts    = 10
	marketplaceLoadTimeout    = 30 * time.Second
)

type MarketplaceConfig struct {
	BaseURL    string
	ChromePath string
}

// MarketplaceSource scrapes a digital-product marketplace discover page for
// competing products. The page is rendered with a headless browser since
// product cards are built client-side.
type MarketplaceSource struct {
	cfg MarketplaceConfig
}

func NewMarketplaceSource(cfg MarketplaceConfig) *MarketplaceSource {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultMarketplaceBaseURL
	}
	return &MarketplaceSource{cfg: cfg}
}

func (m *MarketplaceSource) Name() string { return "marketplace" }

type productCard struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Price string `json:"price"`
}

const extractCardsJS = `
Array.from(document.querySelectorAll('.product-card')).slice(0, %d).map(card => {
	const title = card.querySelector('.product-title');
	const price = card.querySelector('.product-price');
	const link = card.querySelector('a');
	return {
		title: title ? title.textContent.trim() : '',
		url: link ? link.href : '',
		price: price ? price.textContent.trim() : '',
	};
})`

func (m *MarketplaceSource) Search(ctx context.Context, niche, language string) ([]competitor.Record, error) {
	browserCtx, cancel := NewBrowserContext(ctx, m.cfg.ChromePath)
	defer cancel()
	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, marketplaceLoadTimeout)
	defer cancelTimeout()

	discoverURL := m.cfg.BaseURL + marketplaceDiscoverPath + "?query=" + url.QueryEscape(niche)

	var cards []productCard
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(discoverURL),
		chromedp.WaitReady("body"),
		chromedp.Evaluate(fmt.Sprintf(extractCardsJS, maxMarketplaceProducts), &cards),
	)
	if err != nil {
		return nil, fmt.Errorf("marketplace scrape: %w", err)
	}

	records := make([]competitor.Record, 0, len(cards))
	for _, card := range cards {
		if card.Title == "" {
			continue
		}
		records = append(records, competitor.Record{
			Title:  card.Title,
			URL:    card.URL,
			Price:  competitor.ParsePrice(card.Price),
			Source: competitor.SourceMarketplace,
		})
	}
	return records, nil
}
