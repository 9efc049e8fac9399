// Package store persists market analyses and discovery test runs to SQLite
// so past scans can be compared over time.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/dmarchal/arbsuite/internal/competitor"
	"github.com/dmarchal/arbsuite/internal/discovery"
)

type Store struct {
	db *sqlx.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS analyses (
	id                INTEGER PRIMARY KEY AUTOINCREMENT,
	niche             TEXT NOT NULL,
	language          TEXT NOT NULL,
	dialect           TEXT NOT NULL DEFAULT '',
	total_found       INTEGER NOT NULL DEFAULT 0,
	avg_price         REAL NOT NULL DEFAULT 0,
	price_min         REAL NOT NULL DEFAULT 0,
	price_max         REAL NOT NULL DEFAULT 0,
	saturation        TEXT NOT NULL DEFAULT '',
	opportunity_score REAL NOT NULL DEFAULT 0,
	competitors       TEXT NOT NULL DEFAULT '[]',
	created_at        TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_analyses_niche ON analyses(niche);

CREATE TABLE IF NOT EXISTS discovery_tests (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	niche         TEXT NOT NULL,
	target_market TEXT NOT NULL,
	decision      TEXT NOT NULL DEFAULT '',
	test_plan     TEXT NOT NULL DEFAULT '{}',
	results       TEXT NOT NULL DEFAULT '{}',
	created_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_discovery_tests_niche ON discovery_tests(niche);
`

// Open opens or creates the database at path. ":memory:" gives an
// in-process database for tests.
func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) SaveAnalysis(a competitor.Analysis) error {
	competitors, err := json.Marshal(a.Competitors)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO analyses (niche, language, dialect, total_found, avg_price, price_min, price_max, saturation, opportunity_score, competitors, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Niche,
		a.Language,
		a.Dialect,
		a.TotalFound,
		a.AvgPrice,
		a.PriceRange.Min,
		a.PriceRange.Max,
		string(a.Saturation),
		a.OpportunityScore,
		string(competitors),
		a.Timestamp.UTC().Format(time.RFC3339Nano),
	)
	return err
}

// ListAnalyses returns saved analyses for a niche, newest first. An empty
// niche returns everything.
func (s *Store) ListAnalyses(niche string) ([]competitor.Analysis, error) {
	query := `SELECT niche, language, dialect, total_found, avg_price, price_min, price_max, saturation, opportunity_score, competitors, created_at
		FROM analyses`
	args := []any{}
	if niche != "" {
		query += ` WHERE niche = ?`
		args = append(args, niche)
	}
	query += ` ORDER BY id DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []competitor.Analysis
	for rows.Next() {
		var a competitor.Analysis
		var saturation, competitorsJSON, createdAt string
		if err := rows.Scan(&a.Niche, &a.Language, &a.Dialect, &a.TotalFound, &a.AvgPrice,
			&a.PriceRange.Min, &a.PriceRange.Max, &saturation, &a.OpportunityScore,
			&competitorsJSON, &createdAt); err != nil {
			return nil, err
		}
		a.Saturation = competitor.Saturation(saturation)
		_ = json.Unmarshal([]byte(competitorsJSON), &a.Competitors)
		a.Timestamp, _ = time.Parse(time.RFC3339Nano, createdAt)
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) SaveTestRun(record discovery.TestRecord) error {
	plan, err := json.Marshal(record.TestPlan)
	if err != nil {
		return err
	}
	results, err := json.Marshal(record.Results)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO discovery_tests (niche, target_market, decision, test_plan, results, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		record.TestPlan.Niche,
		record.TestPlan.TargetMarket,
		string(record.Results.Decision),
		string(plan),
		string(results),
		record.Timestamp.UTC().Format(time.RFC3339Nano),
	)
	return err
}

// ListTestRuns returns saved discovery tests for a niche, newest first. An
// empty niche returns everything.
func (s *Store) ListTestRuns(niche string) ([]discovery.TestRecord, error) {
	query := `SELECT test_plan, results, created_at FROM discovery_tests`
	args := []any{}
	if niche != "" {
		query += ` WHERE niche = ?`
		args = append(args, niche)
	}
	query += ` ORDER BY id DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []discovery.TestRecord
	for rows.Next() {
		var record discovery.TestRecord
		var planJSON, resultsJSON, createdAt string
		if err := rows.Scan(&planJSON, &resultsJSON, &createdAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(planJSON), &record.TestPlan); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(resultsJSON), &record.Results); err != nil {
			return nil, err
		}
		record.Timestamp, _ = time.Parse(time.RFC3339Nano, createdAt)
		out = append(out, record)
	}
	return out, rows.Err()
}
