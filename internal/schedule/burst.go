package schedule

import (
	"fmt"
	"iter"
	"time"
)

// BurstBounds holds the inclusive ranges the burst scheduler samples from.
type BurstBounds struct {
	MinRun     int `json:"minRun"`
	MaxRun     int `json:"maxRun"`
	MinBreak   int `json:"minBreak"`
	MaxBreak   int `json:"maxBreak"`
	MinCommits int `json:"minCommits"`
	MaxCommits int `json:"maxCommits"`
	FirstHour  int `json:"firstHour"`
	LastHour   int `json:"lastHour"`
}

// DefaultBurstBounds returns runs of 4-8 days, breaks of 1-3 days and
// 1-5 commits per active day between 09:00 and 23:59.
func DefaultBurstBounds() BurstBounds {
	return BurstBounds{
		MinRun:     4,
		MaxRun:     8,
		MinBreak:   1,
		MaxBreak:   3,
		MinCommits: 1,
		MaxCommits: 5,
		FirstHour:  9,
		LastHour:   23,
	}
}

// BurstState is the mutable state of one burst generation.
type BurstState struct {
	ConsecutiveActiveDays int
	CurrentDay            time.Time
	// Threshold is the run length that triggers the next break.
	Threshold int
}

// BurstScheduler walks forward day by day, producing runs of active days
// interrupted by short breaks.
type BurstScheduler struct {
	rng     Source
	bounds  BurstBounds
	catalog Catalog
	Hooks   Hooks
}

// NewBurstScheduler creates a burst scheduler. An empty catalog falls back to
// DefaultExtendedMessages.
func NewBurstScheduler(rng Source, bounds BurstBounds, catalog Catalog) *BurstScheduler {
	if len(catalog) == 0 {
		catalog = DefaultExtendedMessages()
	}
	return &BurstScheduler{rng: rng, bounds: bounds, catalog: catalog}
}

// Generate returns the events between now-days and now. Break days emit
// nothing; the walk stops once the current day passes now.
func (s *BurstScheduler) Generate(now time.Time, days int) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		st := BurstState{
			CurrentDay: now.AddDate(0, 0, -max(days, 0)),
			Threshold:  intRange(s.rng, s.bounds.MinRun, s.bounds.MaxRun),
		}

		for !st.CurrentDay.After(now) {
			if st.ConsecutiveActiveDays >= st.Threshold {
				s.insertBreak(&st)
				continue
			}

			n := intRange(s.rng, s.bounds.MinCommits, s.bounds.MaxCommits)
			s.Hooks.dayPlanned(midnight(st.CurrentDay), n)

			y, m, d := st.CurrentDay.Date()
			for range n {
				hour := intRange(s.rng, s.bounds.FirstHour, s.bounds.LastHour)
				minute := intRange(s.rng, 0, 59)
				when := time.Date(y, m, d, hour, minute, 0, 0, st.CurrentDay.Location())
				if !yield(Event{When: when, Message: s.catalog.Pick(s.rng, when)}) {
					return
				}
			}

			st.ConsecutiveActiveDays++
			st.CurrentDay = st.CurrentDay.AddDate(0, 0, 1)
		}
	}
}

func (s *BurstScheduler) insertBreak(st *BurstState) {
	length := intRange(s.rng, s.bounds.MinBreak, s.bounds.MaxBreak)
	s.Hooks.breakInserted(midnight(st.CurrentDay), length, st.ConsecutiveActiveDays)

	st.CurrentDay = st.CurrentDay.AddDate(0, 0, length)
	st.ConsecutiveActiveDays = 0
	st.Threshold = intRange(s.rng, s.bounds.MinRun, s.bounds.MaxRun)
}

// Validate reports ranges that are inverted or would stall the walk.
func (b BurstBounds) Validate() error {
	switch {
	case b.MinRun < 1 || b.MaxRun < b.MinRun:
		return fmt.Errorf("run length range [%d,%d] is invalid", b.MinRun, b.MaxRun)
	case b.MinBreak < 1 || b.MaxBreak < b.MinBreak:
		return fmt.Errorf("break length range [%d,%d] is invalid", b.MinBreak, b.MaxBreak)
	case b.MinCommits < 1 || b.MaxCommits < b.MinCommits:
		return fmt.Errorf("commits per day range [%d,%d] is invalid", b.MinCommits, b.MaxCommits)
	case b.FirstHour < 0 || b.LastHour > 23 || b.LastHour < b.FirstHour:
		return fmt.Errorf("hour range [%d,%d] is invalid", b.FirstHour, b.LastHour)
	}
	return nil
}
