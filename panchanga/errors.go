package panchanga

import "errors"

var (
	// ErrInvalidDate is returned when a date/timezone pairing cannot be
	// normalized to a civil-day key. No cache or engine interaction is
	// attempted.
	ErrInvalidDate = errors.New("invalid date or timezone")
	// ErrInvalidRange is returned when a range's start is after its end.
	ErrInvalidRange = errors.New("range start is after end")
	// ErrComputation wraps ephemeris engine failures. Failed results are
	// surfaced to the caller and never cached; there is no automatic
	// retry.
	ErrComputation = errors.New("ephemeris computation failed")
)
