package schedule

import (
	"fmt"
	"strings"
	"time"
)

// DateSlot is the placeholder replaced by the event timestamp.
const DateSlot = "{date}"

// Catalog is a fixed list of commit message templates. Each template holds
// exactly one DateSlot.
type Catalog []string

// DefaultUniformMessages returns the catalog used by the uniform scheduler.
func DefaultUniformMessages() Catalog {
	return Catalog{
		"Update docs: {date}",
		"Fix minor issue: {date}",
		"Optimize code: {date}",
		"Add new feature: {date}",
		"Refactor code: {date}",
		"Update config: {date}",
		"Fix bug: {date}",
		"Improve performance: {date}",
		"Add tests: {date}",
		"Update dependencies: {date}",
	}
}

// DefaultExtendedMessages returns the larger catalog used by the burst scheduler.
func DefaultExtendedMessages() Catalog {
	return Catalog{
		"Update docs: {date}",
		"Fix minor issue: {date}",
		"Optimize code: {date}",
		"Add new feature: {date}",
		"Refactor code: {date}",
		"Update config: {date}",
		"Fix bug: {date}",
		"Improve performance: {date}",
		"Add tests: {date}",
		"Update dependencies: {date}",
		"Code review: {date}",
		"Polish docs: {date}",
		"Tune performance: {date}",
		"Security fix: {date}",
		"Enhance feature: {date}",
		"Fix build error: {date}",
		"Optimize algorithm: {date}",
		"Clean up code: {date}",
		"Update comments: {date}",
		"Fix tests: {date}",
	}
}

// FormatMessage substitutes when into the template's date slot.
func FormatMessage(template string, when time.Time) string {
	return strings.Replace(template, DateSlot, when.Format(MessageDateLayout), 1)
}

// Pick draws a template uniformly and formats it for when.
func (c Catalog) Pick(rng Source, when time.Time) string {
	return FormatMessage(c[rng.IntN(len(c))], when)
}

// Validate reports an empty catalog or a template without exactly one slot.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("message catalog is empty")
	}
	for i, tmpl := range c {
		if n := strings.Count(tmpl, DateSlot); n != 1 {
			return fmt.Errorf("template %d (%q) has %d %s slots, expected 1", i, tmpl, n, DateSlot)
		}
	}
	return nil
}
