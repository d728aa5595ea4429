// Package export renders generated occurrences as iCalendar objects and
// Atom feeds for downstream calendar clients and readers.
package export

import (
	"io"

	ical "github.com/emersion/go-ical"
	"github.com/google/uuid"

	"github.com/drikayan/panchanga/recurrence"
)

// Calendar builds a VCALENDAR with one all-day VEVENT per occurrence.
// Summary names the event; spanning occurrences extend DTEND to cover
// their second day and carry the span note as DESCRIPTION.
func Calendar(summary string, occurrences []recurrence.Occurrence) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropProductID, "-//drikayan//panchanga//EN")
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText("X-WR-CALNAME", summary)

	for _, occ := range occurrences {
		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, uuid.NewString())
		event.Props.SetText(ical.PropSummary, summary)
		// DTSTAMP from the occurrence itself keeps output reproducible.
		event.Props.SetDateTime(ical.PropDateTimeStamp, occ.Date)
		event.Props.SetDateTime(ical.PropDateTimeStart, occ.Date)

		// All-day events end on the day after their last date.
		last := occ.Date
		if end, ok := occ.EndDate.Get(); ok {
			last = end
		}
		event.Props.SetDateTime(ical.PropDateTimeEnd, last.AddDate(0, 0, 1))

		if occ.Note != "" {
			event.Props.SetText(ical.PropDescription, occ.Note)
		}
		cal.Children = append(cal.Children, event.Component)
	}
	return cal
}

// WriteCalendar encodes cal in iCalendar format.
func WriteCalendar(w io.Writer, cal *ical.Calendar) error {
	return ical.NewEncoder(w).Encode(cal)
}
