package panchanga

import (
	"fmt"
	"time"

	"github.com/samber/mo"
)

// Paksha is the lunar fortnight.
type Paksha string

const (
	// PakshaShukla is the waxing fortnight (new moon to full moon).
	PakshaShukla Paksha = "Shukla"
	// PakshaKrishna is the waning fortnight (full moon to new moon).
	PakshaKrishna Paksha = "Krishna"
)

// KaranaType distinguishes the seven repeating karanas from the four
// fixed ones that occur exactly once per lunation.
type KaranaType string

const (
	KaranaMovable KaranaType = "Movable"
	KaranaFixed   KaranaType = "Fixed"
)

// MaasReckoning is the month-boundary convention in use.
type MaasReckoning string

const (
	// MaasAmanta months end at the new moon (common in South/West India).
	MaasAmanta MaasReckoning = "Amanta"
	// MaasPurnimanta months end at the full moon (common in North India).
	MaasPurnimanta MaasReckoning = "Purnimanta"
)

// Location identifies an observation site. It is an immutable value;
// cache identity uses the coordinates rounded to 4 decimal places
// (about 11 m), which is as fine as the ephemeris output meaningfully
// varies and coarse enough to avoid fragmenting the cache.
type Location struct {
	Name      string
	Latitude  float64 // degrees, -90..90
	Longitude float64 // degrees, -180..180
}

// Valid reports whether the coordinates are within range.
func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

// cacheKey builds the cache identity for this location on a civil date.
func (l Location) cacheKey(date string) string {
	return fmt.Sprintf("%s|%.4f|%.4f", date, l.Latitude, l.Longitude)
}

// Tithi is one lunar day, defined by the Moon-Sun elongation in 12° steps.
type Tithi struct {
	// Number is the tithi within the lunation, 1..30.
	Number int
	// Day folds Number into 1..15 within its paksha.
	Day    int
	Name   string
	Paksha Paksha
	// EndsAt is the local end instant, absent when the tithi runs past
	// the data horizon.
	EndsAt    mo.Option[time.Time]
	EndsAtUTC mo.Option[time.Time]
}

// Nakshatra is the Moon's lunar mansion, 1..27, with its quarter (pada).
type Nakshatra struct {
	Number int
	Name   string
	Pada   int // 1..4
	EndsAt mo.Option[time.Time]
}

// Yoga is one of 27 divisions of the combined Sun+Moon longitude.
type Yoga struct {
	Number int
	Name   string
	EndsAt mo.Option[time.Time]
}

// Karana is a half-tithi, 1..11 named types.
type Karana struct {
	Number int
	Name   string
	Type   KaranaType
	EndsAt mo.Option[time.Time]
}

// Maas is the lunar month.
type Maas struct {
	Number    int // 1..12, Chaitra = 1
	Name      string
	Reckoning MaasReckoning
	// Adhika marks an intercalary (leap) month.
	Adhika bool
}

// SolarIngress records a sankranti: the Sun entering a sidereal sign.
type SolarIngress struct {
	Number int // target sign, 1..12, Mesha = 1
	Name   string
	At     time.Time
}

// Snapshot is the full computed panchanga for one civil day at one
// location. It is immutable once computed: the same (date, location,
// timezone) always yields an identical snapshot.
type Snapshot struct {
	// Date echoes the requested civil date as YYYY-MM-DD in the
	// requested timezone, never shifted through UTC.
	Date     string
	Location Location
	Timezone string

	Sunrise  time.Time
	Sunset   time.Time
	Moonrise time.Time
	Moonset  time.Time

	Tithi     Tithi
	Nakshatra Nakshatra
	Yoga      Yoga
	Karana    Karana
	Maas      Maas

	// Ayanamsa is the sidereal correction in degrees.
	Ayanamsa float64

	// NextTithi and NextNakshatra are populated only when the current
	// unit ends before the following day's sunrise, so a caller can
	// show the unit that governs most of the coming night.
	NextTithi     mo.Option[Tithi]
	NextNakshatra mo.Option[Nakshatra]

	// Ingress is set when a sankranti falls on this civil day.
	Ingress mo.Option[SolarIngress]
}

// Engine computes a panchanga snapshot for one civil day. Implementations
// must be deterministic: identical inputs produce identical output. Calls
// may be CPU- or I/O-expensive; the Service hides them behind its cache.
type Engine interface {
	ComputeDaily(date string, loc Location, tz *time.Location) (*Snapshot, error)
}
