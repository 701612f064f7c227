package output

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSVSummaryWriter writes run summaries as a single CSV row.
type CSVSummaryWriter struct{}

// Write outputs the run summary as CSV.
func (w *CSVSummaryWriter) Write(report *SummaryReport, options OutputOptions) error {
	writer, file, err := createCSVWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	headers := []string{"Command", "Directory", "Remote", "Branch", "Backend", "Since", "Until", "Commits", "ActiveDays", "Breaks"}
	if err := writer.Write(headers); err != nil {
		return err
	}
	row := []string{
		report.Command,
		report.Directory,
		report.RemoteURL,
		report.Branch,
		report.Backend,
		report.Since.Format(reportDateLayout),
		report.Until.Format(reportDateLayout),
		fmt.Sprintf("%d", report.Commits),
		fmt.Sprintf("%d", report.ActiveDays),
		fmt.Sprintf("%d", report.Breaks),
	}
	if err := writer.Write(row); err != nil {
		return err
	}

	writer.Flush()
	return writer.Error()
}

// CSVPlanWriter writes planned events as CSV.
type CSVPlanWriter struct{}

// Write outputs the plan as CSV.
func (w *CSVPlanWriter) Write(report *PlanReport, options OutputOptions) error {
	events := limitTop(report.Events, options.Top)

	writer, file, err := createCSVWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	if err := writer.Write([]string{"When", "Message"}); err != nil {
		return err
	}
	for _, e := range events {
		if err := writer.Write([]string{e.When.Format(reportDateTimeLayout), e.Message}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func createCSVWriter(outputPath string) (*csv.Writer, *os.File, error) {
	out, file, err := openOutputWriter(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return csv.NewWriter(out), file, nil
}
