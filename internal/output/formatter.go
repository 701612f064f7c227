package output

import (
	"time"

	"github.com/masmgr/contribgen-go/internal/schedule"
)

// Compile-time interface conformance checks.
// These ensure that all writer types correctly implement their respective interfaces.
var (
	// SummaryWriter implementations
	_ SummaryWriter = (*ConsoleSummaryWriter)(nil)
	_ SummaryWriter = (*JSONSummaryWriter)(nil)
	_ SummaryWriter = (*CSVSummaryWriter)(nil)
	_ SummaryWriter = (*MarkdownSummaryWriter)(nil)
	_ SummaryWriter = (*CISummaryWriter)(nil)

	// PlanWriter implementations
	_ PlanWriter = (*ConsolePlanWriter)(nil)
	_ PlanWriter = (*JSONPlanWriter)(nil)
	_ PlanWriter = (*CSVPlanWriter)(nil)
	_ PlanWriter = (*MarkdownPlanWriter)(nil)
	_ PlanWriter = (*CIPlanWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
	FormatCI       OutputFormat = "ci"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	Top        int
	OutputPath string
}

// SummaryReport describes a finished generation run.
type SummaryReport struct {
	Command     string
	Directory   string
	RemoteURL   string
	Branch      string
	Backend     string
	Since       time.Time
	Until       time.Time
	GeneratedAt time.Time
	Commits     int
	ActiveDays  int
	Breaks      int
}

// PlanReport lists the events a run would record.
type PlanReport struct {
	Command     string
	Since       time.Time
	Until       time.Time
	GeneratedAt time.Time
	Events      []schedule.Event
}

// SummaryWriter writes run summaries.
type SummaryWriter interface {
	Write(report *SummaryReport, options OutputOptions) error
}

// PlanWriter writes planned events.
type PlanWriter interface {
	Write(report *PlanReport, options OutputOptions) error
}

// NewSummaryWriter creates a summary writer for the specified format.
func NewSummaryWriter(format OutputFormat) SummaryWriter {
	switch format {
	case FormatJSON:
		return &JSONSummaryWriter{}
	case FormatCSV:
		return &CSVSummaryWriter{}
	case FormatMarkdown:
		return &MarkdownSummaryWriter{}
	case FormatCI:
		return &CISummaryWriter{}
	default:
		return &ConsoleSummaryWriter{}
	}
}

// NewPlanWriter creates a plan writer for the specified format.
func NewPlanWriter(format OutputFormat) PlanWriter {
	switch format {
	case FormatJSON:
		return &JSONPlanWriter{}
	case FormatCSV:
		return &CSVPlanWriter{}
	case FormatMarkdown:
		return &MarkdownPlanWriter{}
	case FormatCI:
		return &CIPlanWriter{}
	default:
		return &ConsolePlanWriter{}
	}
}
