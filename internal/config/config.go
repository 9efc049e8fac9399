// Package config loads the tool configuration from YAML with environment
// overrides for secrets.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
	Aggregation struct {
		MaxResults  int           `yaml:"max_results"`
		QueryPacing time.Duration `yaml:"query_pacing"`
	} `yaml:"aggregation"`
	Serp struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"serp"`
	Marketplace struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"marketplace"`
	Discovery struct {
		DailyBudget       float64 `yaml:"daily_budget"`
		TestDurationDays  int     `yaml:"test_duration_days"`
		MinClicks         int     `yaml:"min_clicks"`
		MinCTR            float64 `yaml:"min_ctr"`
		MaxCPA            float64 `yaml:"max_cpa"`
		MinConversionRate float64 `yaml:"min_conversion_rate"`
	} `yaml:"discovery"`
	Store struct {
		Path string `yaml:"path"`
	} `yaml:"store"`
	Chrome struct {
		Path string `yaml:"path"`
	} `yaml:"chrome"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var c Config
	c.Logging.Level = "info"
	c.Logging.Format = "console"
	c.Aggregation.MaxResults = 20
	c.Aggregation.QueryPacing = 2 * time.Second
	c.Store.Path = "arbsuite.db"
	return &c
}

// Load reads and parses a YAML configuration file. Missing keys keep their
// defaults.
func Load(path string) (*Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// LoadWithEnv loads config and overrides secrets and machine-local paths
// from the environment. An empty path yields defaults plus overrides.
func LoadWithEnv(path string) (*Config, error) {
	var c *Config
	if path == "" {
		c = Default()
	} else {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		c = loaded
	}

	if v := os.Getenv("SERP_API_KEY"); v != "" {
		c.Serp.APIKey = v
	}
	if v := os.Getenv("SERP_BASE_URL"); v != "" {
		c.Serp.BaseURL = v
	}
	if v := os.Getenv("CHROME_BIN"); v != "" {
		c.Chrome.Path = v
	}
	if v := os.Getenv("ARBSUITE_DB"); v != "" {
		c.Store.Path = v
	}
	return c, nil
}

// Validate rejects configurations that would fail later in confusing ways.
func (c *Config) Validate() error {
	if c.Logging.Level == "" {
		return fmt.Errorf("logging.level is required")
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("logging.format must be 'json' or 'console', got '%s'", c.Logging.Format)
	}
	if c.Aggregation.MaxResults < 0 {
		return fmt.Errorf("aggregation.max_results cannot be negative")
	}
	if c.Discovery.DailyBudget < 0 {
		return fmt.Errorf("discovery.daily_budget cannot be negative")
	}
	if c.Discovery.MinCTR < 0 || c.Discovery.MinCTR > 1 {
		return fmt.Errorf("discovery.min_ctr must be within [0, 1]")
	}
	if c.Discovery.MinConversionRate < 0 || c.Discovery.MinConversionRate > 1 {
		return fmt.Errorf("discovery.min_conversion_rate must be within [0, 1]")
	}
	if c.Store.Path == "" {
		return fmt.Errorf("store.path is required")
	}
	return nil
}
