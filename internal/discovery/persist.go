package discovery

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// TestRecord is the persisted form of a completed discovery test.
type TestRecord struct {
	TestPlan  TestPlan   `json:"test_plan"`
	Results   TestResult `json:"results"`
	Timestamp time.Time  `json:"timestamp"`
}

// SaveTestData writes a plan and its result to a JSON file, creating parent
// directories and overwriting any previous record at the same path.
func SaveTestData(path string, plan TestPlan, result TestResult, now time.Time) error {
	record := TestRecord{TestPlan: plan, Results: result, Timestamp: now}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	blob, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func LoadTestData(path string) (TestRecord, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return TestRecord{}, err
	}
	var record TestRecord
	if err := json.Unmarshal(blob, &record); err != nil {
		return TestRecord{}, err
	}
	return record, nil
}
