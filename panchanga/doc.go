/*
Package panchanga computes and caches Hindu lunisolar calendar data.

# Basic Usage

Construct a Service around an ephemeris engine and query it per day or
per range:

	eng := ephemeris.New()
	svc, err := panchanga.NewService(eng)
	if err != nil {
		log.Fatal(err)
	}

	ujjain := panchanga.Location{Name: "Ujjain", Latitude: 23.1793, Longitude: 75.7849}
	snap, err := svc.GetDaily("2025-01-14", ujjain, "Asia/Kolkata")

Dates are civil days in the given timezone, never UTC; the snapshot's
Date field round-trips the requested string exactly.

# Caching

Snapshots are deterministic, so the Service caches them keyed by date and
rounded coordinates. The cache is bounded (oldest-inserted entry evicted
at capacity) and entries expire after a TTL to cap memory in long-running
processes:

	svc, _ := panchanga.NewServiceWithConfig(eng, panchanga.ServiceConfig{
		Cache: panchanga.CacheConfig{MaxEntries: 730, TTL: 48 * time.Hour},
	})

# Custom Engines

Any type implementing the Engine interface can back the Service. The
ephemeris package in this module provides a deterministic mean-element
implementation; production deployments typically wrap a Swiss
Ephemeris-grade backend instead:

	type Engine interface {
		ComputeDaily(date string, loc Location, tz *time.Location) (*Snapshot, error)
	}
*/
package panchanga
