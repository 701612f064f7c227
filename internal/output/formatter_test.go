package output

import "testing"

func TestNewSummaryWriter(t *testing.T) {
	tests := []struct {
		name   string
		format OutputFormat
	}{
		{name: "Console", format: FormatConsole},
		{name: "JSON", format: FormatJSON},
		{name: "CSV", format: FormatCSV},
		{name: "Markdown", format: FormatMarkdown},
		{name: "CI", format: FormatCI},
		{name: "Unknown defaults to Console", format: "unknown"},
		{name: "Empty defaults to Console", format: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := NewSummaryWriter(tt.format)
			if writer == nil {
				t.Fatal("NewSummaryWriter returned nil")
			}

			switch tt.format {
			case FormatJSON:
				if _, ok := writer.(*JSONSummaryWriter); !ok {
					t.Errorf("Expected *JSONSummaryWriter for format %q", tt.format)
				}
			case FormatCSV:
				if _, ok := writer.(*CSVSummaryWriter); !ok {
					t.Errorf("Expected *CSVSummaryWriter for format %q", tt.format)
				}
			case FormatMarkdown:
				if _, ok := writer.(*MarkdownSummaryWriter); !ok {
					t.Errorf("Expected *MarkdownSummaryWriter for format %q", tt.format)
				}
			case FormatCI:
				if _, ok := writer.(*CISummaryWriter); !ok {
					t.Errorf("Expected *CISummaryWriter for format %q", tt.format)
				}
			default:
				if _, ok := writer.(*ConsoleSummaryWriter); !ok {
					t.Errorf("Expected *ConsoleSummaryWriter for format %q", tt.format)
				}
			}
		})
	}
}

func TestNewPlanWriter(t *testing.T) {
	tests := []struct {
		name   string
		format OutputFormat
	}{
		{name: "Console", format: FormatConsole},
		{name: "JSON", format: FormatJSON},
		{name: "CSV", format: FormatCSV},
		{name: "Markdown", format: FormatMarkdown},
		{name: "CI", format: FormatCI},
		{name: "Unknown defaults to Console", format: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := NewPlanWriter(tt.format)
			if writer == nil {
				t.Fatal("NewPlanWriter returned nil")
			}

			switch tt.format {
			case FormatJSON:
				if _, ok := writer.(*JSONPlanWriter); !ok {
					t.Errorf("Expected *JSONPlanWriter for format %q", tt.format)
				}
			case FormatCSV:
				if _, ok := writer.(*CSVPlanWriter); !ok {
					t.Errorf("Expected *CSVPlanWriter for format %q", tt.format)
				}
			case FormatMarkdown:
				if _, ok := writer.(*MarkdownPlanWriter); !ok {
					t.Errorf("Expected *MarkdownPlanWriter for format %q", tt.format)
				}
			case FormatCI:
				if _, ok := writer.(*CIPlanWriter); !ok {
					t.Errorf("Expected *CIPlanWriter for format %q", tt.format)
				}
			default:
				if _, ok := writer.(*ConsolePlanWriter); !ok {
					t.Errorf("Expected *ConsolePlanWriter for format %q", tt.format)
				}
			}
		})
	}
}
