package schedule

import (
	"testing"
	"time"

	"pgregory.net/rapid"
)

// --- Generators ---

func genAnchor() *rapid.Generator[time.Time] {
	return rapid.Custom(func(t *rapid.T) time.Time {
		base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		offset := rapid.IntRange(0, 2000).Draw(t, "dayOffset")
		hour := rapid.IntRange(0, 23).Draw(t, "hour")
		return base.AddDate(0, 0, offset).Add(time.Duration(hour) * time.Hour)
	})
}

// --- Property Tests ---

func TestRapidUniform_DailyCountWithinCap(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		opts := Options{
			MaxCommitsPerDay: rapid.IntRange(-5, 40).Draw(t, "maxCommits"),
			Frequency:        rapid.IntRange(0, 100).Draw(t, "frequency"),
			SkipWeekends:     rapid.Bool().Draw(t, "skipWeekends"),
		}
		w := Window{
			Anchor:     genAnchor().Draw(t, "anchor"),
			DaysBefore: rapid.IntRange(0, 60).Draw(t, "daysBefore"),
			DaysAfter:  rapid.IntRange(0, 30).Draw(t, "daysAfter"),
		}
		seed := rapid.Uint64().Draw(t, "seed")

		s := NewUniformScheduler(NewSource(seed), opts, nil)
		limit := min(max(opts.MaxCommitsPerDay, 1), 20)

		for day, n := range eventsPerDay(collect(s.Generate(w))) {
			if n < 1 || n > limit {
				t.Fatalf("day %s has %d commits, expected 1..%d", day, n, limit)
			}
		}
	})
}

func TestRapidUniform_EventsStayInsideWindow(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := Window{
			Anchor:     genAnchor().Draw(t, "anchor"),
			DaysBefore: rapid.IntRange(0, 40).Draw(t, "daysBefore"),
			DaysAfter:  rapid.IntRange(0, 40).Draw(t, "daysAfter"),
		}
		opts := Options{MaxCommitsPerDay: 20, Frequency: rapid.IntRange(0, 100).Draw(t, "frequency")}
		s := NewUniformScheduler(NewSource(rapid.Uint64().Draw(t, "seed")), opts, nil)

		first := w.First()
		end := first.AddDate(0, 0, w.Len())
		for _, e := range collect(s.Generate(w)) {
			if e.When.Before(first) || !e.When.Before(end) {
				t.Fatalf("event %v outside [%v, %v)", e.When, first, end)
			}
		}
	})
}

func TestRapidUniform_FullFrequencyNoWeekendSkip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := Window{
			Anchor:     genAnchor().Draw(t, "anchor"),
			DaysBefore: rapid.IntRange(0, 50).Draw(t, "daysBefore"),
			DaysAfter:  rapid.IntRange(0, 10).Draw(t, "daysAfter"),
		}
		opts := Options{MaxCommitsPerDay: rapid.IntRange(1, 20).Draw(t, "maxCommits"), Frequency: 100}
		s := NewUniformScheduler(NewSource(rapid.Uint64().Draw(t, "seed")), opts, nil)

		if got := len(eventsPerDay(collect(s.Generate(w)))); got != w.Len() {
			t.Fatalf("active days = %d, expected %d", got, w.Len())
		}
	})
}

func TestRapidUniform_ZeroFrequency(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := Window{
			Anchor:     genAnchor().Draw(t, "anchor"),
			DaysBefore: rapid.IntRange(0, 400).Draw(t, "daysBefore"),
			DaysAfter:  rapid.IntRange(0, 400).Draw(t, "daysAfter"),
		}
		opts := Options{MaxCommitsPerDay: rapid.IntRange(1, 20).Draw(t, "maxCommits")}
		s := NewUniformScheduler(NewSource(rapid.Uint64().Draw(t, "seed")), opts, nil)

		if events := collect(s.Generate(w)); len(events) != 0 {
			t.Fatalf("expected no events, got %d", len(events))
		}
	})
}

func TestRapidUniform_SkipWeekends(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := Window{
			Anchor:     genAnchor().Draw(t, "anchor"),
			DaysBefore: rapid.IntRange(0, 60).Draw(t, "daysBefore"),
		}
		opts := Options{MaxCommitsPerDay: 3, Frequency: rapid.IntRange(0, 100).Draw(t, "frequency"), SkipWeekends: true}
		s := NewUniformScheduler(NewSource(rapid.Uint64().Draw(t, "seed")), opts, nil)

		for _, e := range collect(s.Generate(w)) {
			if wd := e.When.Weekday(); wd == time.Saturday || wd == time.Sunday {
				t.Fatalf("event on %s: %v", wd, e.When)
			}
		}
	})
}

func TestRapidBurst_CycleInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		now := genAnchor().Draw(t, "now")
		days := rapid.IntRange(0, 400).Draw(t, "days")
		s := NewBurstScheduler(NewSource(rapid.Uint64().Draw(t, "seed")), DefaultBurstBounds(), nil)

		start := midnight(now.AddDate(0, 0, -days))
		cursor := start
		elapsed := 0
		planned := 0
		s.Hooks.OnDay = func(day time.Time, commits int) {
			if !day.Equal(cursor) {
				t.Fatalf("active day %v, expected %v", day, cursor)
			}
			if commits < 1 || commits > 5 {
				t.Fatalf("%d commits on %v, expected 1..5", commits, day)
			}
			planned += commits
			cursor = cursor.AddDate(0, 0, 1)
			elapsed++
		}
		s.Hooks.OnBreak = func(at time.Time, length, runLength int) {
			if !at.Equal(cursor) {
				t.Fatalf("break at %v, expected %v", at, cursor)
			}
			if runLength < 4 || runLength > 8 {
				t.Fatalf("run of %d days before break, expected 4..8", runLength)
			}
			if length < 1 || length > 3 {
				t.Fatalf("break of %d days, expected 1..3", length)
			}
			cursor = cursor.AddDate(0, 0, length)
			elapsed += length
		}

		events := collect(s.Generate(now, days))

		if planned != len(events) {
			t.Fatalf("planned %d commits, generated %d", planned, len(events))
		}
		if !cursor.After(midnight(now)) {
			t.Fatalf("walk ended at %v, before %v", cursor, now)
		}
		if got := int(cursor.Sub(start).Hours() / 24); got != elapsed {
			t.Fatalf("calendar span %d days, runs+breaks %d days", got, elapsed)
		}
	})
}
