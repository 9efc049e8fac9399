package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmarchal/arbsuite/internal/competitor"
)

const (
	DefaultSerpBaseURL     = "https://serpapi.com"
	serpSearchPath         = "/search.json"
	defaultResultsPerQuery = 10
	defaultQueryPacing     = 2 * time.Second
)

type SerpConfig struct {
	APIKey          string
	BaseURL         string
	ResultsPerQuery int
	QueryPacing     time.Duration
	HTTPClient      *http.Client
}

// SerpSource searches a SERP-style JSON API for competitor products. One
// niche search fans out into a few query variations; each variation is one
// logical attempt, with transport-level retry on 429 and 5xx only.
type SerpSource struct {
	cfg SerpConfig
}

func NewSerpSource(cfg SerpConfig) (*SerpSource, error) {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == "" {
		return nil, errors.New("SERP_API_KEY not configured")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultSerpBaseURL
	}
	if cfg.ResultsPerQuery <= 0 {
		cfg.ResultsPerQuery = defaultResultsPerQuery
	}
	if cfg.QueryPacing <= 0 {
		cfg.QueryPacing = defaultQueryPacing
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &SerpSource{cfg: cfg}, nil
}

func (s *SerpSource) Name() string { return "search-engine" }

type serpResponse struct {
	OrganicResults []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"organic_results"`
	Error string `json:"error"`
}

// Search runs the query variations for a niche and flattens the organic
// results into competitor records. A failed variation is skipped; the call
// errors only when every variation fails.
func (s *SerpSource) Search(ctx context.Context, niche, language string) ([]competitor.Record, error) {
	var records []competitor.Record
	failed := 0
	var lastErr error

	variations := queryVariations
	if len(variations) > maxQueryVariations {
		variations = variations[:maxQueryVariations]
	}
	for i, pattern := range variations {
		if i > 0 {
			if err := sleepCtx(ctx, s.cfg.QueryPacing); err != nil {
				return records, err
			}
		}
		query := fmt.Sprintf(pattern, niche)
		results, err := s.searchOnce(ctx, query, language)
		if err != nil {
			failed++
			lastErr = err
			continue
		}
		records = append(records, results...)
	}

	if failed == len(variations) {
		return nil, fmt.Errorf("all search queries failed: %w", lastErr)
	}
	return records, nil
}

func (s *SerpSource) searchOnce(ctx context.Context, query, language string) ([]competitor.Record, error) {
	parsed, err := s.executeWithRetry(ctx, query, language)
	if err != nil {
		return nil, err
	}

	records := make([]competitor.Record, 0, len(parsed.OrganicResults))
	for _, r := range parsed.OrganicResults {
		if len(records) >= s.cfg.ResultsPerQuery {
			break
		}
		if r.Title == "" {
			continue
		}
		records = append(records, competitor.Record{
			Title:   r.Title,
			URL:     r.Link,
			Snippet: r.Snippet,
			Price:   competitor.ParsePrice(r.Snippet),
			Source:  competitor.SourceSearchEngine,
		})
	}
	return records, nil
}

func (s *SerpSource) executeWithRetry(ctx context.Context, query, language string) (serpResponse, error) {
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		parsed, code, retryAfter, err := s.executeOnce(ctx, query, language)
		if err == nil {
			return parsed, nil
		}
		lastErr = err

		retryable := code == http.StatusTooManyRequests || code >= 500
		if !retryable || attempt == 3 {
			break
		}
		sleep := retryAfter
		if sleep <= 0 {
			sleep = time.Duration(attempt) * time.Second
		}
		if err := sleepCtx(ctx, sleep); err != nil {
			return serpResponse{}, err
		}
	}
	return serpResponse{}, lastErr
}

func (s *SerpSource) executeOnce(ctx context.Context, query, language string) (serpResponse, int, time.Duration, error) {
	u := strings.TrimRight(s.cfg.BaseURL, "/") + serpSearchPath
	params := url.Values{}
	params.Set("q", query)
	params.Set("hl", language)
	params.Set("num", strconv.Itoa(s.cfg.ResultsPerQuery))
	params.Set("api_key", s.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u+"?"+params.Encode(), nil)
	if err != nil {
		return serpResponse{}, 0, 0, err
	}
	res, err := s.cfg.HTTPClient.Do(req)
	if err != nil {
		return serpResponse{}, 0, 0, err
	}
	defer res.Body.Close()
	b, _ := io.ReadAll(io.LimitReader(res.Body, 2<<20))

	retryAfter := parseRetryAfter(res.Header.Get("Retry-After"))
	if res.StatusCode >= 400 {
		return serpResponse{}, res.StatusCode, retryAfter, fmt.Errorf("status code: %d", res.StatusCode)
	}

	var parsed serpResponse
	if err := json.Unmarshal(b, &parsed); err != nil {
		return serpResponse{}, res.StatusCode, retryAfter, err
	}
	if parsed.Error != "" {
		return serpResponse{}, res.StatusCode, retryAfter, fmt.Errorf("search api error: %s", parsed.Error)
	}
	return parsed, res.StatusCode, retryAfter, nil
}

func parseRetryAfter(v string) time.Duration {
	if strings.TrimSpace(v) == "" {
		return 0
	}
	secs, err := strconv.Atoi(strings.TrimSpace(v))
	if err == nil {
		return time.Duration(secs) * time.Second
	}
	return 0
}
