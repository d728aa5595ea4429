package recurrence

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// generateFromTemplate handles the template cadences (KindYearlySolar,
// KindMonthlySolar). These repeat on the civil calendar from an
// externally seeded reference occurrence; the engine does not compute the
// reference itself, it only projects it forward.
func (e *Engine) generateFromTemplate(rule Rule, window Window) ([]Occurrence, error) {
	if rule.Template.IsZero() {
		return nil, fmt.Errorf("%w: template cadence without seeded reference date", ErrMissingRuleData)
	}

	freq := rrule.YEARLY
	if rule.Kind == KindMonthlySolar {
		freq = rrule.MONTHLY
	}

	template := rule.Template.UTC()
	dtstart := time.Date(template.Year(), template.Month(), template.Day(), 0, 0, 0, 0, time.UTC)
	r, err := rrule.NewRRule(rrule.ROption{Freq: freq, Dtstart: dtstart})
	if err != nil {
		return nil, fmt.Errorf("building rrule from template: %w", err)
	}

	// Between is inclusive at both ends with inc=true, matching the
	// window's inclusive civil-day semantics.
	times := r.Between(window.Start, window.End, true)
	occurrences := make([]Occurrence, 0, len(times))
	for _, t := range times {
		occurrences = append(occurrences, Occurrence{
			Date: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC),
		})
	}
	return occurrences, nil
}
