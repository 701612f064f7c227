package cmd

import (
	"time"

	"github.com/masmgr/contribgen-go/config"
	"github.com/masmgr/contribgen-go/internal/schedule"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// RealisticCmd returns the realistic command.
func RealisticCmd() *cli.Command {
	flags := append([]cli.Flag{
		&cli.IntFlag{
			Name:    "days",
			Aliases: []string{"d"},
			Usage:   "Number of days of history to generate",
		},
		&cli.BoolFlag{
			Name:  "no-noise",
			Usage: "Do not touch auxiliary files alongside the primary file",
		},
	}, commonFlags()...)

	return &cli.Command{
		Name:    commandRealistic,
		Aliases: []string{"real"},
		Usage:   "Generate bursts of activity separated by short breaks",
		Flags:   flags,
		Action:  realisticAction,
	}
}

func applyRealisticFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("days") {
		cfg.Realistic.Days = c.Int("days")
	}
	if c.Bool("no-noise") {
		cfg.Noise.Enabled = false
	}
}

func realisticAction(c *cli.Context) error {
	cc, err := NewCommandContext(c, commandRealistic, applyRealisticFlags)
	if err != nil {
		return err
	}
	defer cc.Close()

	cfg := cc.Config
	days := cfg.Realistic.Days
	since := cc.Now.AddDate(0, 0, -days)
	until := cc.Now

	scheduler := schedule.NewBurstScheduler(cc.Rand, cfg.Realistic.Bounds, schedule.Catalog(cfg.Messages.Extended))
	activeDays, breaks := 0, 0
	scheduler.Hooks.OnDay = func(day time.Time, commits int) {
		activeDays++
		cc.Logger.WithFields(logrus.Fields{
			"day":     day.Format("2006-01-02"),
			"commits": commits,
		}).Debug("day planned")
	}
	scheduler.Hooks.OnBreak = func(start time.Time, length, runLength int) {
		breaks++
		if cc.DryRun {
			return
		}
		cc.Logger.WithFields(logrus.Fields{
			"start":     start.Format("2006-01-02"),
			"days":      length,
			"afterDays": runLength,
		}).Info("taking a break")
	}

	if cc.DryRun {
		return writePlan(cc, since, until, scheduler.Generate(cc.Now, days))
	}

	cc.Logger.WithFields(logrus.Fields{
		"since": since.Format("2006-01-02"),
		"days":  days,
	}).Info("generating realistic contributions")

	res, err := cc.generate(c.Context, scheduler.Generate(cc.Now, days), cfg.AuxiliaryNoise())
	if err != nil {
		return err
	}

	report := cc.summary(since, until, res)
	report.ActiveDays = activeDays
	report.Breaks = breaks
	return writeSummary(cc, report)
}
