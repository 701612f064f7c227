package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// CISummaryWriter writes the run summary as a single NDJSON line.
type CISummaryWriter struct{}

// Write outputs the run summary as NDJSON.
func (w *CISummaryWriter) Write(report *SummaryReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	line := struct {
		Type string `json:"type"`
		JSONSummary
	}{Type: "summary", JSONSummary: toJSONSummary(report)}
	return writeNDJSONLine(out, line)
}

// CIPlanWriter writes planned events as NDJSON (one JSON object per line) for pipelines.
type CIPlanWriter struct{}

// CIPlanSummary is the first line of plan output.
type CIPlanSummary struct {
	Type        string `json:"type"`
	TotalEvents int    `json:"totalEvents"`
	ActiveDays  int    `json:"activeDays"`
	Since       string `json:"since"`
	Until       string `json:"until"`
}

// CIPlanEntry represents a single planned commit.
type CIPlanEntry struct {
	Type    string `json:"type"`
	When    string `json:"when"`
	Message string `json:"message"`
}

// Write outputs the plan as NDJSON.
func (w *CIPlanWriter) Write(report *PlanReport, options OutputOptions) error {
	events := limitTop(report.Events, options.Top)

	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	summary := CIPlanSummary{
		Type:        "summary",
		TotalEvents: len(report.Events),
		ActiveDays:  countActiveDays(report.Events),
		Since:       report.Since.Format(reportDateLayout),
		Until:       report.Until.Format(reportDateLayout),
	}
	if err := writeNDJSONLine(out, summary); err != nil {
		return err
	}

	for _, e := range events {
		entry := CIPlanEntry{Type: "event", When: e.When.Format(time.RFC3339), Message: e.Message}
		if err := writeNDJSONLine(out, entry); err != nil {
			return err
		}
	}
	return nil
}

func writeNDJSONLine(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal NDJSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
