package output

import (
	"io"
	"os"
	"time"

	"github.com/masmgr/contribgen-go/internal/schedule"
)

const (
	reportDateLayout     = "2006-01-02"
	reportDateTimeLayout = "2006-01-02T15:04:05"
)

func limitTop[T any](items []T, top int) []T {
	if top <= 0 || top >= len(items) {
		return items
	}
	return items[:top]
}

func periodValue(since, until time.Time) string {
	return since.Format(reportDateLayout) + " to " + until.Format(reportDateLayout)
}

// countActiveDays returns the number of distinct calendar days among events.
func countActiveDays(events []schedule.Event) int {
	days := make(map[string]struct{}, len(events))
	for _, e := range events {
		days[e.Day()] = struct{}{}
	}
	return len(days)
}

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}
