package attrstore

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/mo"

	"github.com/drikayan/panchanga/panchanga"
)

const dateLayout = "2006-01-02"

// Seed precomputes day records from start to end inclusive (civil days in
// tz) and writes them through w. This is the batch pass that fills the
// attribute table the recurrence engine queries; it talks to the engine
// directly since each day is visited exactly once.
func Seed(ctx context.Context, w Writer, eng panchanga.Engine, start, end time.Time, loc panchanga.Location, tz *time.Location) (int, error) {
	if start.After(end) {
		return 0, fmt.Errorf("%w: seed start after end", ErrInvalidInput)
	}

	var records []DayRecord
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		snap, err := eng.ComputeDaily(day.Format(dateLayout), loc, tz)
		if err != nil {
			return 0, fmt.Errorf("seeding %s: %w", day.Format(dateLayout), err)
		}
		records = append(records, RecordFromSnapshot(snap))
	}
	if err := w.PutDays(ctx, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// RecordFromSnapshot projects a full snapshot down to the attributes the
// recurrence engine matches on.
func RecordFromSnapshot(snap *panchanga.Snapshot) DayRecord {
	date, _ := time.ParseInLocation(dateLayout, snap.Date, time.UTC)
	r := DayRecord{
		Date:        date,
		TithiID:     snap.Tithi.Number,
		TithiEnd:    snap.Tithi.EndsAtUTC,
		Paksha:      snap.Tithi.Paksha,
		NakshatraID: snap.Nakshatra.Number,
		YogaID:      snap.Yoga.Number,
		KaranaID:    snap.Karana.Number,
		MaasID:      snap.Maas.Number,
		Adhika:      snap.Maas.Adhika,
	}
	if ingress, ok := snap.Ingress.Get(); ok {
		r.IngressID = mo.Some(ingress.Number)
		r.IngressTime = mo.Some(ingress.At)
	}
	return r
}
