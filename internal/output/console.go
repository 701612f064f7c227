package output

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
)

// ConsoleSummaryWriter writes run summaries for humans.
type ConsoleSummaryWriter struct{}

// Write outputs the run summary to the console.
func (w *ConsoleSummaryWriter) Write(report *SummaryReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintln(out)
	color.New(color.FgGreen, color.Bold).Fprintln(out, "🎉 Repository generated successfully!")
	fmt.Fprintf(out, "📁 Local directory: %s\n", report.Directory)
	if report.RemoteURL != "" {
		fmt.Fprintf(out, "🌐 Remote repository: %s\n", report.RemoteURL)
	}
	fmt.Fprintf(out, "📅 Period: %s\n", periodValue(report.Since, report.Until))
	fmt.Fprintf(out, "📊 Total commits: %s\n", color.YellowString("%d", report.Commits))
	if report.ActiveDays > 0 {
		fmt.Fprintf(out, "   Active days: %d\n", report.ActiveDays)
	}
	if report.Breaks > 0 {
		fmt.Fprintf(out, "   Breaks: %d\n", report.Breaks)
	}
	return nil
}

// ConsolePlanWriter writes planned events as a table.
type ConsolePlanWriter struct{}

// Write outputs the plan to the console.
func (w *ConsolePlanWriter) Write(report *PlanReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	events := limitTop(report.Events, options.Top)

	color.New(color.FgGreen).Fprintln(out, "Planned Contributions (dry run)")
	fmt.Fprintf(out, "Command: %s\n", report.Command)
	fmt.Fprintf(out, "Period: %s\n", periodValue(report.Since, report.Until))
	fmt.Fprintf(out, "Total commits planned: %d\n", len(report.Events))
	fmt.Fprintf(out, "Active days: %d\n\n", countActiveDays(report.Events))

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tDate\tTime\tMessage")
	for i, e := range events {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			i+1,
			e.When.Format(reportDateLayout),
			e.When.Format("15:04"),
			truncateMessage(e.Message, 60),
		)
	}
	return tw.Flush()
}

func truncateMessage(msg string, maxLen int) string {
	runes := []rune(msg)
	if len(runes) <= maxLen {
		return msg
	}
	return string(runes[:maxLen-3]) + "..."
}
