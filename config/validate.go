package config

import (
	"fmt"

	"github.com/masmgr/contribgen-go/internal/git"
	"github.com/masmgr/contribgen-go/internal/schedule"
)

// ValidationError reports an out-of-range setting. It is returned before any
// repository is touched.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}

// Validate checks every setting and returns the first ValidationError.
func (c *Config) Validate() error {
	checks := []func() error{
		c.validateContribute,
		c.validateRealistic,
		c.validateRepository,
		c.validateMessages,
		c.validateNoise,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateContribute() error {
	cc := c.Contribute
	if cc.DaysBefore < 0 {
		return &ValidationError{Field: "days_before", Value: cc.DaysBefore, Reason: "must not be negative"}
	}
	if cc.DaysAfter < 0 {
		return &ValidationError{Field: "days_after", Value: cc.DaysAfter, Reason: "must not be negative"}
	}
	if cc.MaxCommits < schedule.MinCommitsPerDay || cc.MaxCommits > schedule.MaxCommitsPerDay {
		return &ValidationError{
			Field:  "max_commits",
			Value:  cc.MaxCommits,
			Reason: fmt.Sprintf("must be between %d and %d", schedule.MinCommitsPerDay, schedule.MaxCommitsPerDay),
		}
	}
	if cc.Frequency < 0 || cc.Frequency > 100 {
		return &ValidationError{Field: "frequency", Value: cc.Frequency, Reason: "must be between 0 and 100"}
	}
	if _, err := ParseWeekdays(cc.WeekendDays); err != nil {
		return &ValidationError{Field: "weekendDays", Value: cc.WeekendDays, Reason: err.Error()}
	}
	return nil
}

func (c *Config) validateRealistic() error {
	if c.Realistic.Days < 0 {
		return &ValidationError{Field: "days", Value: c.Realistic.Days, Reason: "must not be negative"}
	}
	if err := c.Realistic.Bounds.Validate(); err != nil {
		return &ValidationError{Field: "realistic.bounds", Value: c.Realistic.Bounds, Reason: err.Error()}
	}
	return nil
}

func (c *Config) validateRepository() error {
	r := c.Repository
	if r.Branch == "" {
		return &ValidationError{Field: "repository.branch", Value: r.Branch, Reason: "must not be empty"}
	}
	if r.Remote == "" {
		return &ValidationError{Field: "repository.remote", Value: r.Remote, Reason: "must not be empty"}
	}
	if r.PrimaryFile == "" {
		return &ValidationError{Field: "repository.primaryFile", Value: r.PrimaryFile, Reason: "must not be empty"}
	}
	if _, err := git.ParseBackend(r.Backend); err != nil {
		return &ValidationError{Field: "backend", Value: r.Backend, Reason: err.Error()}
	}
	return nil
}

func (c *Config) validateMessages() error {
	if err := schedule.Catalog(c.Messages.Uniform).Validate(); err != nil {
		return &ValidationError{Field: "messages.uniform", Value: len(c.Messages.Uniform), Reason: err.Error()}
	}
	if err := schedule.Catalog(c.Messages.Extended).Validate(); err != nil {
		return &ValidationError{Field: "messages.extended", Value: len(c.Messages.Extended), Reason: err.Error()}
	}
	return nil
}

func (c *Config) validateNoise() error {
	n := c.Noise
	if n.Probability < 0 || n.Probability > 1 {
		return &ValidationError{Field: "noise.probability", Value: n.Probability, Reason: "must be between 0 and 1"}
	}
	if n.PathProbability < 0 || n.PathProbability > 1 {
		return &ValidationError{Field: "noise.pathProbability", Value: n.PathProbability, Reason: "must be between 0 and 1"}
	}
	return nil
}
