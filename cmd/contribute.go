package cmd

import (
	"time"

	"github.com/masmgr/contribgen-go/config"
	"github.com/masmgr/contribgen-go/internal/schedule"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// ContributeCmd returns the contribute command.
func ContributeCmd() *cli.Command {
	return &cli.Command{
		Name:    commandContribute,
		Aliases: []string{"c"},
		Usage:   "Spread commits uniformly over a window around today",
		Flags:   contributeFlags(),
		Action:  contributeAction,
	}
}

func contributeFlags() []cli.Flag {
	return append([]cli.Flag{
		&cli.BoolFlag{
			Name:    "no_weekends",
			Aliases: []string{"nw"},
			Usage:   "Do not commit on weekends",
		},
		&cli.IntFlag{
			Name:    "max_commits",
			Aliases: []string{"mc"},
			Usage:   "Maximum number of commits per day (1-20)",
		},
		&cli.IntFlag{
			Name:    "frequency",
			Aliases: []string{"fr"},
			Usage:   "Percentage of days to commit on (0-100)",
		},
		&cli.IntFlag{
			Name:    "days_before",
			Aliases: []string{"db"},
			Usage:   "Number of days before today to start from",
		},
		&cli.IntFlag{
			Name:    "days_after",
			Aliases: []string{"da"},
			Usage:   "Number of days after today to continue to",
		},
	}, commonFlags()...)
}

func applyContributeFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("no_weekends") {
		cfg.Contribute.NoWeekends = c.Bool("no_weekends")
	}
	if c.IsSet("max_commits") {
		cfg.Contribute.MaxCommits = c.Int("max_commits")
	}
	if c.IsSet("frequency") {
		cfg.Contribute.Frequency = c.Int("frequency")
	}
	if c.IsSet("days_before") {
		cfg.Contribute.DaysBefore = c.Int("days_before")
	}
	if c.IsSet("days_after") {
		cfg.Contribute.DaysAfter = c.Int("days_after")
	}
}

func contributeAction(c *cli.Context) error {
	cc, err := NewCommandContext(c, commandContribute, applyContributeFlags)
	if err != nil {
		return err
	}
	defer cc.Close()

	cfg := cc.Config
	window := schedule.Window{
		Anchor:     cc.Now,
		DaysBefore: cfg.Contribute.DaysBefore,
		DaysAfter:  cfg.Contribute.DaysAfter,
	}
	since := window.First()
	until := since.AddDate(0, 0, max(window.Len()-1, 0))

	scheduler := schedule.NewUniformScheduler(cc.Rand, cfg.ScheduleOptions(), schedule.Catalog(cfg.Messages.Uniform))
	activeDays := 0
	scheduler.Hooks.OnDay = func(day time.Time, commits int) {
		activeDays++
		cc.Logger.WithFields(logrus.Fields{
			"day":     day.Format("2006-01-02"),
			"commits": commits,
		}).Debug("day planned")
	}

	if cc.DryRun {
		return writePlan(cc, since, until, scheduler.Generate(window))
	}

	cc.Logger.WithFields(logrus.Fields{
		"since":      since.Format("2006-01-02"),
		"days":       window.Len(),
		"maxCommits": cfg.Contribute.MaxCommits,
		"frequency":  cfg.Contribute.Frequency,
	}).Info("generating contributions")

	res, err := cc.generate(c.Context, scheduler.Generate(window), nil)
	if err != nil {
		return err
	}

	report := cc.summary(since, until, res)
	report.ActiveDays = activeDays
	return writeSummary(cc, report)
}
