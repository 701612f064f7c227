package schedule

import (
	"iter"
	"slices"
	"time"
)

const (
	// MinCommitsPerDay and MaxCommitsPerDay bound Options.MaxCommitsPerDay.
	MinCommitsPerDay = 1
	MaxCommitsPerDay = 20
)

// Window is the set of candidate days: DaysBefore+DaysAfter consecutive days
// starting DaysBefore days before Anchor's calendar day.
type Window struct {
	Anchor     time.Time
	DaysBefore int
	DaysAfter  int
}

// Len returns the number of candidate days.
func (w Window) Len() int {
	return max(w.DaysBefore, 0) + max(w.DaysAfter, 0)
}

// First returns local midnight of the first candidate day.
func (w Window) First() time.Time {
	return midnight(w.Anchor).AddDate(0, 0, -max(w.DaysBefore, 0))
}

// Days yields local midnight of every candidate day in order.
func (w Window) Days() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		first := w.First()
		for i := range w.Len() {
			if !yield(first.AddDate(0, 0, i)) {
				return
			}
		}
	}
}

// Options configures the uniform scheduler.
type Options struct {
	MaxCommitsPerDay int
	// Frequency is the percentage chance [0,100] that a day is active.
	Frequency    int
	SkipWeekends bool
	WeekendDays  []time.Weekday
}

// DefaultWeekendDays returns Saturday and Sunday.
func DefaultWeekendDays() []time.Weekday {
	return []time.Weekday{time.Saturday, time.Sunday}
}

// DailyCap returns MaxCommitsPerDay clamped to [MinCommitsPerDay, MaxCommitsPerDay].
func (o Options) DailyCap() int {
	return min(max(o.MaxCommitsPerDay, MinCommitsPerDay), MaxCommitsPerDay)
}

// IsWeekend reports whether day falls on one of the configured weekend days.
func (o Options) IsWeekend(day time.Time) bool {
	weekend := o.WeekendDays
	if len(weekend) == 0 {
		weekend = DefaultWeekendDays()
	}
	return slices.Contains(weekend, day.Weekday())
}

// UniformScheduler flips a fixed-probability coin per day and gives active
// days a uniform number of commits spaced one minute apart from midnight.
type UniformScheduler struct {
	rng     Source
	opts    Options
	catalog Catalog
	Hooks   Hooks
}

// NewUniformScheduler creates a uniform scheduler. An empty catalog falls
// back to DefaultUniformMessages.
func NewUniformScheduler(rng Source, opts Options, catalog Catalog) *UniformScheduler {
	if len(catalog) == 0 {
		catalog = DefaultUniformMessages()
	}
	return &UniformScheduler{rng: rng, opts: opts, catalog: catalog}
}

// Generate returns the events for the window. Every iteration draws fresh
// random values from the scheduler's source.
func (s *UniformScheduler) Generate(w Window) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for day := range w.Days() {
			if !s.active(day) {
				continue
			}

			n := intRange(s.rng, MinCommitsPerDay, s.opts.DailyCap())
			s.Hooks.dayPlanned(day, n)

			for k := range n {
				when := day.Add(time.Duration(k) * time.Minute)
				if !yield(Event{When: when, Message: s.catalog.Pick(s.rng, when)}) {
					return
				}
			}
		}
	}
}

func (s *UniformScheduler) active(day time.Time) bool {
	if s.opts.SkipWeekends && s.opts.IsWeekend(day) {
		return false
	}
	return s.rng.IntN(100) < s.opts.Frequency
}
