package cmd

import (
	"iter"
	"slices"
	"time"

	"github.com/masmgr/contribgen-go/internal/output"
	"github.com/masmgr/contribgen-go/internal/schedule"
)

func writeSummary(cc *CommandContext, report *output.SummaryReport) error {
	writer := output.NewSummaryWriter(cc.Output.Format)
	return writer.Write(report, cc.Output)
}

// writePlan drains events into a plan report without touching a repository.
func writePlan(cc *CommandContext, since, until time.Time, events iter.Seq[schedule.Event]) error {
	report := &output.PlanReport{
		Command:     cc.Command,
		Since:       since,
		Until:       until,
		GeneratedAt: time.Now(),
		Events:      slices.Collect(events),
	}
	cc.Logger.WithField("commits", len(report.Events)).Debug("plan generated")

	writer := output.NewPlanWriter(cc.Output.Format)
	return writer.Write(report, cc.Output)
}

func (cc *CommandContext) summary(since, until time.Time, res *generateResult) *output.SummaryReport {
	return &output.SummaryReport{
		Command:     cc.Command,
		Directory:   res.Dir,
		RemoteURL:   cc.RemoteURL,
		Branch:      cc.Config.Repository.Branch,
		Backend:     string(cc.Backend),
		Since:       since,
		Until:       until,
		GeneratedAt: time.Now(),
		Commits:     res.Commits,
	}
}
