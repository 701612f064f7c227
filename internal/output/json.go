package output

import (
	"encoding/json"
	"fmt"
	"time"
)

// JSONSummaryWriter writes run summaries as JSON.
type JSONSummaryWriter struct{}

// JSONSummary is the JSON output structure for a run summary.
type JSONSummary struct {
	Command     string `json:"command"`
	Directory   string `json:"directory"`
	RemoteURL   string `json:"remote,omitempty"`
	Branch      string `json:"branch"`
	Backend     string `json:"backend"`
	Since       string `json:"since"`
	Until       string `json:"until"`
	GeneratedAt string `json:"generatedAt"`
	Commits     int    `json:"commits"`
	ActiveDays  int    `json:"activeDays"`
	Breaks      int    `json:"breaks,omitempty"`
}

// Write outputs the run summary as JSON.
func (w *JSONSummaryWriter) Write(report *SummaryReport, options OutputOptions) error {
	return writeJSON(toJSONSummary(report), options.OutputPath)
}

func toJSONSummary(report *SummaryReport) JSONSummary {
	return JSONSummary{
		Command:     report.Command,
		Directory:   report.Directory,
		RemoteURL:   report.RemoteURL,
		Branch:      report.Branch,
		Backend:     report.Backend,
		Since:       report.Since.Format(reportDateLayout),
		Until:       report.Until.Format(reportDateLayout),
		GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
		Commits:     report.Commits,
		ActiveDays:  report.ActiveDays,
		Breaks:      report.Breaks,
	}
}

// JSONPlanWriter writes planned events as JSON.
type JSONPlanWriter struct{}

// JSONPlan is the JSON output structure for a plan.
type JSONPlan struct {
	Command     string          `json:"command"`
	Since       string          `json:"since"`
	Until       string          `json:"until"`
	GeneratedAt string          `json:"generatedAt"`
	TotalEvents int             `json:"totalEvents"`
	ActiveDays  int             `json:"activeDays"`
	Events      []JSONPlanEvent `json:"events"`
}

// JSONPlanEvent is a single planned commit.
type JSONPlanEvent struct {
	When    string `json:"when"`
	Message string `json:"message"`
}

// Write outputs the plan as JSON.
func (w *JSONPlanWriter) Write(report *PlanReport, options OutputOptions) error {
	events := limitTop(report.Events, options.Top)

	items := make([]JSONPlanEvent, len(events))
	for i, e := range events {
		items[i] = JSONPlanEvent{When: e.When.Format(time.RFC3339), Message: e.Message}
	}

	return writeJSON(JSONPlan{
		Command:     report.Command,
		Since:       report.Since.Format(reportDateLayout),
		Until:       report.Until.Format(reportDateLayout),
		GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
		TotalEvents: len(report.Events),
		ActiveDays:  countActiveDays(report.Events),
		Events:      items,
	}, options.OutputPath)
}

func writeJSON(v interface{}, outputPath string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	out, file, err := openOutputWriter(outputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	_, err = fmt.Fprintln(out, string(data))
	return err
}
