package panchanga

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

const dateLayout = "2006-01-02"

// ServiceConfig holds configuration for the panchanga service.
type ServiceConfig struct {
	Cache  CacheConfig
	Logger *slog.Logger
}

// DefaultServiceConfig provides sensible defaults for production use.
var DefaultServiceConfig = ServiceConfig{
	Cache: DefaultCacheConfig,
}

// Service is the single entry point for obtaining panchanga snapshots.
// It wraps an Engine with a bounded, time-expiring cache and normalizes
// civil-day semantics: a date is always interpreted in the requested
// timezone, never in UTC, so callers near midnight do not see
// off-by-one-day shifts.
//
// A Service is safe for concurrent use and is intended to be constructed
// once by the host application and shared.
type Service struct {
	engine Engine
	cache  *snapshotCache
	logger *slog.Logger
}

// NewService creates a service with default configuration.
func NewService(engine Engine) (*Service, error) {
	return NewServiceWithConfig(engine, DefaultServiceConfig)
}

// NewServiceWithConfig creates a service with custom configuration.
func NewServiceWithConfig(engine Engine, cfg ServiceConfig) (*Service, error) {
	if engine == nil {
		return nil, fmt.Errorf("engine is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		engine: engine,
		cache:  newSnapshotCache(cfg.Cache),
		logger: logger,
	}, nil
}

// GetDaily returns the snapshot for one civil day. date is a YYYY-MM-DD
// string interpreted in timezone (an IANA identifier). Results are served
// from the cache when a fresh entry exists; otherwise the engine is
// invoked synchronously and its result stored.
func (s *Service) GetDaily(date string, loc Location, timezone string) (*Snapshot, error) {
	day, tz, err := s.normalize(date, timezone)
	if err != nil {
		return nil, err
	}
	return s.daily(day, tz, loc, timezone)
}

// GetRange returns snapshots for every day from start to end inclusive,
// in ascending date order. Each day delegates to the same cache as
// GetDaily, so partially overlapping ranges are cache-accelerated. The
// service imposes no window-size limit of its own; that is an API-layer
// policy.
func (s *Service) GetRange(start, end string, loc Location, timezone string) ([]*Snapshot, error) {
	startDay, tz, err := s.normalize(start, timezone)
	if err != nil {
		return nil, err
	}
	endDay, _, err := s.normalize(end, timezone)
	if err != nil {
		return nil, err
	}
	if startDay.After(endDay) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, start, end)
	}

	var snapshots []*Snapshot
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		snap, err := s.daily(day, tz, loc, timezone)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, nil
}

// ClearCache drops all cached snapshots.
func (s *Service) ClearCache() {
	s.cache.clear()
}

// CacheStats reports cache occupancy and limits.
func (s *Service) CacheStats() CacheStats {
	return s.cache.stats()
}

// normalize validates the timezone and parses date as a civil day in it.
func (s *Service) normalize(date, timezone string) (time.Time, *time.Location, error) {
	tz, err := time.LoadLocation(timezone)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidDate, timezone, err)
	}
	day, err := time.ParseInLocation(dateLayout, date, tz)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return day, tz, nil
}

func (s *Service) daily(day time.Time, tz *time.Location, loc Location, timezone string) (*Snapshot, error) {
	dateStr := day.Format(dateLayout)
	key := loc.cacheKey(dateStr)

	return s.cache.getOrCompute(key, func() (*Snapshot, error) {
		s.logger.Debug("cache miss, computing panchanga",
			"date", dateStr,
			"location", loc.Name,
			"timezone", timezone)
		snap, err := s.engine.ComputeDaily(dateStr, loc, tz)
		if err != nil {
			s.logger.Error("ephemeris computation failed",
				"error", err,
				"date", dateStr,
				"location", loc.Name)
			return nil, fmt.Errorf("%w: %s at %s: %v", ErrComputation, dateStr, loc.Name, err)
		}
		return snap, nil
	})
}
