// Package attrstore defines the per-day attribute table the recurrence
// engine matches against, plus an in-memory implementation suitable for
// tests, seeding and small deployments.
package attrstore

import (
	"context"
	"errors"
	"time"

	"github.com/samber/mo"

	"github.com/drikayan/panchanga/panchanga"
)

var (
	// ErrNotFound is returned when a requested record doesn't exist.
	ErrNotFound = errors.New("day record not found")
	// ErrInvalidInput is returned when the input parameters are invalid.
	ErrInvalidInput = errors.New("invalid input parameters")
)

// DayRecord holds the Vedic attributes of one civil day, as produced by
// a precompute pass over the ephemeris. Dates are stored at midnight UTC
// and compared with civil-date arithmetic only.
type DayRecord struct {
	Date time.Time

	TithiID  int // 1..30
	TithiEnd mo.Option[time.Time]
	Paksha   panchanga.Paksha

	NakshatraID int // 1..27
	YogaID      int // 1..27
	KaranaID    int // 1..11

	MaasID int // 1..12
	// Adhika marks days inside an intercalary month. A date is either
	// leap or non-leap, never both.
	Adhika bool

	IngressID   mo.Option[int] // set on sankranti days, 1..12
	IngressTime mo.Option[time.Time]
}

// Query filters day records. From/To bound the civil-date window
// inclusively; the remaining fields are optional constraints.
type Query struct {
	From time.Time
	To   time.Time

	TithiID   *int
	MaasID    *int
	Adhika    *bool
	IngressID *int
}

// Store is the read interface the recurrence engine consumes. FindDays
// returns matching records in ascending date order.
type Store interface {
	FindDays(ctx context.Context, q Query) ([]DayRecord, error)
}

// Writer is the interface the precompute pass writes through.
type Writer interface {
	PutDays(ctx context.Context, records []DayRecord) error
}

// Matches reports whether the record satisfies the query's constraints.
func (q Query) Matches(r DayRecord) bool {
	if r.Date.Before(q.From) || r.Date.After(q.To) {
		return false
	}
	if q.TithiID != nil && r.TithiID != *q.TithiID {
		return false
	}
	if q.MaasID != nil && r.MaasID != *q.MaasID {
		return false
	}
	if q.Adhika != nil && r.Adhika != *q.Adhika {
		return false
	}
	if q.IngressID != nil {
		id, ok := r.IngressID.Get()
		if !ok || id != *q.IngressID {
			return false
		}
	}
	return true
}
