package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	c := Default()
	if c.Logging.Level != "info" || c.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", c.Logging)
	}
	if c.Aggregation.MaxResults != 20 {
		t.Fatalf("MaxResults = %d, want 20", c.Aggregation.MaxResults)
	}
	if c.Aggregation.QueryPacing != 2*time.Second {
		t.Fatalf("QueryPacing = %v, want 2s", c.Aggregation.QueryPacing)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
  format: json
aggregation:
  max_results: 30
discovery:
  daily_budget: 25
  min_ctr: 0.03
store:
  path: /tmp/test.db
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Logging.Level != "debug" || c.Logging.Format != "json" {
		t.Fatalf("logging not overridden: %+v", c.Logging)
	}
	if c.Aggregation.MaxResults != 30 {
		t.Fatalf("MaxResults = %d, want 30", c.Aggregation.MaxResults)
	}
	if c.Discovery.DailyBudget != 25 || c.Discovery.MinCTR != 0.03 {
		t.Fatalf("discovery not overridden: %+v", c.Discovery)
	}
	// Keys absent from the file keep defaults.
	if c.Aggregation.QueryPacing != 2*time.Second {
		t.Fatalf("QueryPacing = %v, want default 2s", c.Aggregation.QueryPacing)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := []string{
		"logging:\n  format: xml\n",
		"aggregation:\n  max_results: -1\n",
		"discovery:\n  min_ctr: 1.5\n",
		"store:\n  path: ''\n",
	}
	for _, content := range cases {
		if _, err := Load(writeConfig(t, content)); err == nil {
			t.Fatalf("expected validation error for %q", content)
		}
	}
}

func TestLoadWithEnvOverridesSecrets(t *testing.T) {
	t.Setenv("SERP_API_KEY", "env-key")
	t.Setenv("ARBSUITE_DB", "/tmp/env.db")

	c, err := LoadWithEnv("")
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}
	if c.Serp.APIKey != "env-key" {
		t.Fatalf("APIKey = %q, want env-key", c.Serp.APIKey)
	}
	if c.Store.Path != "/tmp/env.db" {
		t.Fatalf("Store.Path = %q, want /tmp/env.db", c.Store.Path)
	}
}

func TestLoadWithEnvMissingFile(t *testing.T) {
	if _, err := LoadWithEnv(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
