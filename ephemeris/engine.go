// Package ephemeris implements panchanga.Engine with mean-element
// astronomy: linearized sun/moon longitudes, a Lahiri-style ayanamsa and
// interpolated unit boundaries. Accuracy is on the order of hours, which
// is enough for development, seeding and tests; production deployments
// should wrap a Swiss Ephemeris-grade backend behind the same interface.
package ephemeris

import (
	"fmt"
	"math"
	"time"

	"github.com/samber/mo"

	"github.com/drikayan/panchanga/panchanga"
)

const (
	dateLayout = "2006-01-02"

	// Mean daily motions in degrees.
	sunRate  = 0.98564736
	moonRate = 13.17639648

	synodicMonth = 29.530588861 // days

	degPerTithi     = 12.0
	degPerNakshatra = 360.0 / 27.0
	degPerYoga      = 360.0 / 27.0
	degPerKarana    = 6.0
)

// Engine is stateless; the zero value is usable but New is conventional.
type Engine struct{}

// New creates a mean-element ephemeris engine.
func New() *Engine {
	return &Engine{}
}

// ComputeDaily derives the panchanga for one civil day. All units are
// reckoned at local sunrise, the traditional epoch for the day's
// panchanga. The result is a pure function of the inputs.
func (e *Engine) ComputeDaily(date string, loc panchanga.Location, tz *time.Location) (*panchanga.Snapshot, error) {
	if !loc.Valid() {
		return nil, fmt.Errorf("location coordinates out of range: lat=%f lon=%f", loc.Latitude, loc.Longitude)
	}
	day, err := time.ParseInLocation(dateLayout, date, tz)
	if err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", date, err)
	}

	sunrise, sunset := riseSet(day, loc, tz)
	nextSunrise, _ := riseSet(day.AddDate(0, 0, 1), loc, tz)

	tithi := tithiAt(sunrise, tz)
	nakshatra := nakshatraAt(sunrise, tz)

	snap := &panchanga.Snapshot{
		Date:      date,
		Location:  loc,
		Timezone:  tz.String(),
		Sunrise:   sunrise,
		Sunset:    sunset,
		Moonrise:  sunrise.Add(time.Duration(tithi.Number-1) * 48 * time.Minute),
		Moonset:   sunset.Add(time.Duration(tithi.Number-1) * 48 * time.Minute),
		Tithi:     tithi,
		Nakshatra: nakshatra,
		Yoga:      yogaAt(sunrise, tz),
		Karana:    karanaAt(sunrise, tz),
		Maas:      maasAt(sunrise),
		Ayanamsa:  ayanamsa(daysSinceJ2000(sunrise)),
	}

	// Transition fields: only when the unit hands over before the next
	// sunrise, i.e. the following unit governs most of the coming night.
	if end, ok := tithi.EndsAt.Get(); ok && end.Before(nextSunrise) {
		snap.NextTithi = mo.Some(tithiAt(end.Add(time.Minute), tz))
	}
	if end, ok := nakshatra.EndsAt.Get(); ok && end.Before(nextSunrise) {
		snap.NextNakshatra = mo.Some(nakshatraAt(end.Add(time.Minute), tz))
	}

	if ingress, ok := ingressOn(day, tz); ok {
		snap.Ingress = mo.Some(ingress)
	}

	return snap, nil
}

func daysSinceJ2000(t time.Time) float64 {
	return float64(t.Unix())/86400.0 - 10957.5
}

func norm360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func rad(deg float64) float64 { return deg * math.Pi / 180 }

// sunLongitude is the Sun's tropical ecliptic longitude with the
// equation-of-center correction.
func sunLongitude(d float64) float64 {
	meanLong := norm360(280.460 + sunRate*d)
	anomaly := rad(norm360(357.528 + 0.9856003*d))
	return norm360(meanLong + 1.915*math.Sin(anomaly) + 0.020*math.Sin(2*anomaly))
}

// moonLongitude is the Moon's tropical longitude with the principal
// elliptic correction.
func moonLongitude(d float64) float64 {
	meanLong := norm360(218.316 + moonRate*d)
	anomaly := rad(norm360(134.963 + 13.064993*d))
	return norm360(meanLong + 6.289*math.Sin(anomaly))
}

// ayanamsa approximates the Lahiri sidereal offset: 23.853° at J2000,
// precessing about 50.29 arcseconds per year.
func ayanamsa(d float64) float64 {
	return 23.853 + d*(50.29/3600/365.25)
}

func elongation(d float64) float64 {
	return norm360(moonLongitude(d) - sunLongitude(d))
}

// boundaryEnd interpolates when a longitude-driven unit reaches its next
// boundary, given the current position within the unit and the mean rate.
func boundaryEnd(t time.Time, position, unitSize, ratePerDay float64) time.Time {
	remaining := unitSize - math.Mod(position, unitSize)
	return t.Add(time.Duration(remaining / ratePerDay * 24 * float64(time.Hour)))
}

func tithiAt(t time.Time, tz *time.Location) panchanga.Tithi {
	d := daysSinceJ2000(t)
	elong := elongation(d)
	number := int(elong/degPerTithi) + 1
	if number > 30 {
		number = 30
	}

	paksha := panchanga.PakshaShukla
	if number > 15 {
		paksha = panchanga.PakshaKrishna
	}
	end := boundaryEnd(t, elong, degPerTithi, moonRate-sunRate).In(tz)

	return panchanga.Tithi{
		Number:    number,
		Day:       (number-1)%15 + 1,
		Name:      panchanga.TithiName(number),
		Paksha:    paksha,
		EndsAt:    mo.Some(end),
		EndsAtUTC: mo.Some(end.UTC()),
	}
}

func nakshatraAt(t time.Time, tz *time.Location) panchanga.Nakshatra {
	d := daysSinceJ2000(t)
	sidereal := norm360(moonLongitude(d) - ayanamsa(d))
	number := int(sidereal/degPerNakshatra) + 1
	if number > 27 {
		number = 27
	}
	pada := int(math.Mod(sidereal, degPerNakshatra)/(degPerNakshatra/4)) + 1

	return panchanga.Nakshatra{
		Number: number,
		Name:   panchanga.NakshatraName(number),
		Pada:   pada,
		EndsAt: mo.Some(boundaryEnd(t, sidereal, degPerNakshatra, moonRate).In(tz)),
	}
}

func yogaAt(t time.Time, tz *time.Location) panchanga.Yoga {
	d := daysSinceJ2000(t)
	ayan := ayanamsa(d)
	sum := norm360(norm360(moonLongitude(d)-ayan) + norm360(sunLongitude(d)-ayan))
	number := int(sum/degPerYoga) + 1
	if number > 27 {
		number = 27
	}

	return panchanga.Yoga{
		Number: number,
		Name:   panchanga.YogaName(number),
		EndsAt: mo.Some(boundaryEnd(t, sum, degPerYoga, moonRate+sunRate).In(tz)),
	}
}

func karanaAt(t time.Time, tz *time.Location) panchanga.Karana {
	d := daysSinceJ2000(t)
	elong := elongation(d)
	half := int(elong / degPerKarana) // 0..59 half-tithis per lunation

	// The first half-tithi is Kimstughna, the last three are Shakuni,
	// Chatushpada and Naga; the 56 in between cycle through the seven
	// movable karanas.
	var number int
	switch {
	case half == 0:
		number = 11
	case half >= 57:
		number = 8 + (half - 57)
	default:
		number = (half-1)%7 + 1
	}
	karanaType := panchanga.KaranaMovable
	if number >= 8 {
		karanaType = panchanga.KaranaFixed
	}

	return panchanga.Karana{
		Number: number,
		Name:   panchanga.KaranaName(number),
		Type:   karanaType,
		EndsAt: mo.Some(boundaryEnd(t, elong, degPerKarana, moonRate-sunRate).In(tz)),
	}
}

// maasAt determines the amanta lunar month at t, with adhika detection:
// a month is intercalary when the Sun changes no sidereal sign between
// the bounding new moons.
func maasAt(t time.Time) panchanga.Maas {
	d := daysSinceJ2000(t)
	lastNewMoon := d - elongation(d)/(moonRate-sunRate)
	nextNewMoon := lastNewMoon + synodicMonth

	signAtStart := siderealSign(lastNewMoon)
	adhika := signAtStart == siderealSign(nextNewMoon)

	// Chaitra begins with the Sun in Meena; the month is named for the
	// sign the Sun enters during it.
	number := (signAtStart+1)%12 + 1

	return panchanga.Maas{
		Number:    number,
		Name:      panchanga.MaasName(number),
		Reckoning: panchanga.MaasAmanta,
		Adhika:    adhika,
	}
}

// siderealSign returns the Sun's sidereal sign index 0..11 (0 = Mesha).
func siderealSign(d float64) int {
	return int(norm360(sunLongitude(d)-ayanamsa(d)) / 30)
}

// ingressOn reports the sankranti falling within the civil day starting
// at dayStart, if any, with its interpolated instant.
func ingressOn(dayStart time.Time, tz *time.Location) (panchanga.SolarIngress, bool) {
	d0 := daysSinceJ2000(dayStart)
	d1 := daysSinceJ2000(dayStart.AddDate(0, 0, 1))
	before, after := siderealSign(d0), siderealSign(d1)
	if before == after {
		return panchanga.SolarIngress{}, false
	}

	position := norm360(sunLongitude(d0) - ayanamsa(d0))
	remaining := float64(before+1)*30 - position
	at := dayStart.Add(time.Duration(remaining / sunRate * 24 * float64(time.Hour))).In(tz)

	return panchanga.SolarIngress{
		Number: after + 1,
		Name:   panchanga.IngressName(after + 1),
		At:     at,
	}, true
}

// riseSet approximates sunrise and sunset from the solar declination and
// the hour angle at -0.833° altitude, without the equation of time.
func riseSet(day time.Time, loc panchanga.Location, tz *time.Location) (time.Time, time.Time) {
	d := daysSinceJ2000(day)
	decl := math.Asin(math.Sin(rad(23.44)) * math.Sin(rad(sunLongitude(d))))

	lat := rad(loc.Latitude)
	cosH := (math.Sin(rad(-0.833)) - math.Sin(lat)*math.Sin(decl)) /
		(math.Cos(lat) * math.Cos(decl))
	// Polar day/night clamp.
	cosH = math.Max(-1, math.Min(1, cosH))
	hourAngle := math.Acos(cosH) * 180 / math.Pi / 15 // hours

	noonUTC := 12.0 - loc.Longitude/15.0
	midnightUTC := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	sunrise := midnightUTC.Add(time.Duration((noonUTC - hourAngle) * float64(time.Hour))).In(tz)
	sunset := midnightUTC.Add(time.Duration((noonUTC + hourAngle) * float64(time.Hour))).In(tz)
	return sunrise, sunset
}
