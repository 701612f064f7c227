package output

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONPlanWriter_Write(t *testing.T) {
	tmpFile := t.TempDir() + "/plan.json"
	writer := &JSONPlanWriter{}
	if err := writer.Write(samplePlan(), OutputOptions{Format: FormatJSON, OutputPath: tmpFile}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := readTestFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	var plan JSONPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		t.Fatalf("Failed to parse plan: %v", err)
	}
	if plan.Command != "realistic" {
		t.Errorf("plan.Command = %q, want realistic", plan.Command)
	}
	if plan.TotalEvents != 3 || len(plan.Events) != 3 {
		t.Errorf("expected 3 events, got total=%d len=%d", plan.TotalEvents, len(plan.Events))
	}
	if plan.ActiveDays != 2 {
		t.Errorf("plan.ActiveDays = %d, want 2", plan.ActiveDays)
	}
}

func TestJSONSummaryWriter_Write(t *testing.T) {
	tmpFile := t.TempDir() + "/summary.json"
	writer := &JSONSummaryWriter{}
	if err := writer.Write(sampleSummary(), OutputOptions{Format: FormatJSON, OutputPath: tmpFile}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := readTestFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	var summary JSONSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		t.Fatalf("Failed to parse summary: %v", err)
	}
	if summary.Commits != 42 || summary.ActiveDays != 20 {
		t.Errorf("unexpected counts: %+v", summary)
	}
	if summary.RemoteURL != "https://example.com/user/contrib.git" {
		t.Errorf("summary.RemoteURL = %q", summary.RemoteURL)
	}
}

func TestCSVPlanWriter_Write(t *testing.T) {
	tmpFile := t.TempDir() + "/plan.csv"
	writer := &CSVPlanWriter{}
	if err := writer.Write(samplePlan(), OutputOptions{Format: FormatCSV, OutputPath: tmpFile}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := readTestFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(records))
	}
	if records[1][0] != "2026-01-05T09:00:00" {
		t.Errorf("records[1][0] = %q, want 2026-01-05T09:00:00", records[1][0])
	}
	if records[2][1] != "Refactor code | cleanup" {
		t.Errorf("records[2][1] = %q", records[2][1])
	}
}

func TestCSVSummaryWriter_Write(t *testing.T) {
	tmpFile := t.TempDir() + "/summary.csv"
	writer := &CSVSummaryWriter{}
	if err := writer.Write(sampleSummary(), OutputOptions{Format: FormatCSV, OutputPath: tmpFile}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := readTestFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d", len(records))
	}
	if records[1][7] != "42" {
		t.Errorf("Commits column = %q, want 42", records[1][7])
	}
}

func TestMarkdownPlanWriter_Write(t *testing.T) {
	tmpFile := t.TempDir() + "/plan.md"
	writer := &MarkdownPlanWriter{}
	if err := writer.Write(samplePlan(), OutputOptions{Format: FormatMarkdown, OutputPath: tmpFile}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := readTestFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "# Planned Contributions") {
		t.Error("missing heading")
	}
	if !strings.Contains(out, "Refactor code \\| cleanup") {
		t.Error("expected pipe in message to be escaped")
	}
	if !strings.Contains(out, "**Total commits planned:** 3 across 2 days") {
		t.Errorf("missing totals line:\n%s", out)
	}
}

func TestConsoleSummaryWriter_Write(t *testing.T) {
	tmpFile := t.TempDir() + "/summary.txt"
	writer := &ConsoleSummaryWriter{}
	if err := writer.Write(sampleSummary(), OutputOptions{Format: FormatConsole, OutputPath: tmpFile}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := readTestFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	out := string(data)
	for _, want := range []string{"/tmp/contrib", "https://example.com/user/contrib.git", "2026-01-01 to 2026-01-31", "42"} {
		if !strings.Contains(out, want) {
			t.Errorf("console summary missing %q:\n%s", want, out)
		}
	}
}

func TestConsoleSummaryWriter_NoRemote(t *testing.T) {
	report := sampleSummary()
	report.RemoteURL = ""

	tmpFile := t.TempDir() + "/summary.txt"
	writer := &ConsoleSummaryWriter{}
	if err := writer.Write(report, OutputOptions{OutputPath: tmpFile}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := readTestFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if strings.Contains(string(data), "Remote repository") {
		t.Error("expected no remote line when RemoteURL is empty")
	}
}

func TestConsolePlanWriter_Write(t *testing.T) {
	tmpFile := t.TempDir() + "/plan.txt"
	writer := &ConsolePlanWriter{}
	if err := writer.Write(samplePlan(), OutputOptions{OutputPath: tmpFile}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := readTestFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "Total commits planned: 3") {
		t.Errorf("missing total line:\n%s", out)
	}
	if !strings.Contains(out, "14:30") {
		t.Errorf("missing event time:\n%s", out)
	}
}

func TestOpenOutputWriter_InvalidPath(t *testing.T) {
	writer := &JSONSummaryWriter{}
	err := writer.Write(sampleSummary(), OutputOptions{OutputPath: t.TempDir() + "/missing/dir/out.json"})
	if err == nil {
		t.Fatal("expected error for unwritable output path")
	}
}
