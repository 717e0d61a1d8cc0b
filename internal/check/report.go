package check

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Summary counts results by outcome.
type Summary struct {
	Total   int
	Matched int
	Outside int
	Failed  int
}

func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Error != "":
			s.Failed++
		case len(r.Zones) > 0:
			s.Matched++
		default:
			s.Outside++
		}
	}
	return s
}

// WriteReport writes results as an indented JSON array, creating parent
// directories as needed.
func WriteReport(path string, results []Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("check: encode report: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("check: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
