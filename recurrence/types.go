package recurrence

import (
	"errors"
	"time"

	"github.com/samber/mo"
)

// ErrMissingRuleData is returned when a rule lacks the data its kind
// requires (a lunar rule with no target tithi, a solar rule with no
// target ingress, a template cadence with no seeded reference date).
var ErrMissingRuleData = errors.New("rule is missing required data")

// Window is an inclusive civil-date range, midnight-UTC dates.
type Window struct {
	Start time.Time
	End   time.Time
}

// Occurrence is one concrete date an event falls on. Times are local
// wall-clock strings (HH:MM); they are set only when the matched unit's
// boundaries are meaningful for the day (spanning tithis, ingress
// instants).
type Occurrence struct {
	Date      time.Time
	EndDate   mo.Option[time.Time]
	StartTime mo.Option[string]
	EndTime   mo.Option[string]
	Note      string
}

// Options controls generation behavior.
type Options struct {
	// MaxOccurrences caps the generated list. Generation is never
	// unbounded: a misconfigured monthly rule over a multi-decade window
	// truncates here instead of exploding.
	MaxOccurrences int
}

// DefaultOptions provides the standard safety limit.
var DefaultOptions = Options{
	MaxOccurrences: 1000,
}

// Result carries the generated occurrences plus whether the safety limit
// truncated them. Truncation is a reported outcome, not an error.
type Result struct {
	Occurrences []Occurrence
	Truncated   bool
}
