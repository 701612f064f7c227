// Package schedule decides when fabricated contributions happen and what
// their messages say. Schedulers produce lazy sequences of Events and never
// touch a repository themselves.
package schedule

import "time"

const (
	// MessageDateLayout is the timestamp layout substituted into message templates.
	MessageDateLayout = "2006-01-02 15:04"
	dayLayout         = "2006-01-02"
)

// Event is a single commit to be recorded at When with the given message.
type Event struct {
	When    time.Time
	Message string
}

// Day returns the calendar day of the event formatted as YYYY-MM-DD.
func (e Event) Day() string {
	return e.When.Format(dayLayout)
}

// Hooks observe scheduling decisions. Nil hooks are skipped.
type Hooks struct {
	// OnDay is called once per active day before its events are yielded.
	OnDay func(day time.Time, commits int)
	// OnBreak is called when a burst scheduler inserts a break of length days
	// starting at start, after an active run of runLength days.
	OnBreak func(start time.Time, length int, runLength int)
}

func (h Hooks) dayPlanned(day time.Time, commits int) {
	if h.OnDay != nil {
		h.OnDay(day, commits)
	}
}

func (h Hooks) breakInserted(start time.Time, length, runLength int) {
	if h.OnBreak != nil {
		h.OnBreak(start, length, runLength)
	}
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
