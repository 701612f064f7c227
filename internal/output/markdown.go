package output

import (
	"fmt"
	"strings"
)

// MarkdownSummaryWriter writes run summaries as Markdown.
type MarkdownSummaryWriter struct{}

// Write outputs the run summary as Markdown.
func (w *MarkdownSummaryWriter) Write(report *SummaryReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintln(out, "# Contribution Generation Summary")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Command:** %s\n\n", report.Command)
	fmt.Fprintf(out, "**Local directory:** `%s`\n\n", report.Directory)
	if report.RemoteURL != "" {
		fmt.Fprintf(out, "**Remote repository:** %s\n\n", report.RemoteURL)
	}
	fmt.Fprintf(out, "**Period:** %s\n\n", periodValue(report.Since, report.Until))
	fmt.Fprintln(out, "| Metric | Value |")
	fmt.Fprintln(out, "|--------|-------|")
	fmt.Fprintf(out, "| Commits | %d |\n", report.Commits)
	fmt.Fprintf(out, "| Active days | %d |\n", report.ActiveDays)
	if report.Breaks > 0 {
		fmt.Fprintf(out, "| Breaks | %d |\n", report.Breaks)
	}
	fmt.Fprintf(out, "| Branch | %s |\n", report.Branch)
	fmt.Fprintf(out, "| Backend | %s |\n", report.Backend)
	return nil
}

// MarkdownPlanWriter writes planned events as Markdown.
type MarkdownPlanWriter struct{}

// Write outputs the plan as Markdown.
func (w *MarkdownPlanWriter) Write(report *PlanReport, options OutputOptions) error {
	events := limitTop(report.Events, options.Top)

	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintln(out, "# Planned Contributions")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Period:** %s\n\n", periodValue(report.Since, report.Until))
	fmt.Fprintf(out, "**Total commits planned:** %d across %d days\n\n", len(report.Events), countActiveDays(report.Events))

	fmt.Fprintln(out, "| # | Date | Time | Message |")
	fmt.Fprintln(out, "|---|------|------|---------|")
	for i, e := range events {
		fmt.Fprintf(out, "| %d | %s | %s | %s |\n",
			i+1,
			e.When.Format(reportDateLayout),
			e.When.Format("15:04"),
			escapeMarkdown(e.Message),
		)
	}
	return nil
}

var markdownEscaper = strings.NewReplacer(
	"|", "\\|",
	"*", "\\*",
	"_", "\\_",
	"`", "\\`",
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
