package trace

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// CSV column headers for the step trace export.
var traceColumns = []string{
	"instance", "step", "node", "load_after", "demand_remaining",
}

// ExportCSV writes the recorded steps to a CSV file, one row per decision.
// Normalized values use shortest round-trip float formatting.
func ExportCSV(et *EpisodeTrace, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating trace file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(traceColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, s := range et.Steps {
		row := []string{
			strconv.Itoa(s.Instance),
			strconv.Itoa(s.Step),
			strconv.Itoa(s.Node),
			strconv.FormatFloat(s.LoadAfter, 'f', -1, 64),
			strconv.FormatFloat(s.DemandRemaining, 'f', -1, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for instance %d step %d: %w", s.Instance, s.Step, err)
		}
	}
	return nil
}
