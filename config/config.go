// Package config loads configuration for the example panchanga server.
// It uses koanf with an optional YAML file over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all settings for the example server.
type Config struct {
	// Server settings
	Addr string `koanf:"addr"`

	// Observation site
	LocationName string  `koanf:"location_name"`
	Latitude     float64 `koanf:"latitude"`
	Longitude    float64 `koanf:"longitude"`
	Timezone     string  `koanf:"timezone"`

	// Snapshot cache
	CacheMaxEntries int `koanf:"cache_max_entries"`
	CacheTTLHours   int `koanf:"cache_ttl_hours"`

	// Recurrence generation
	MaxOccurrences int `koanf:"max_occurrences"`
	SeedDays       int `koanf:"seed_days"`
}

// Configuration validation errors.
var (
	ErrInvalidLatitude  = errors.New("latitude must be within -90..90")
	ErrInvalidLongitude = errors.New("longitude must be within -180..180")
	ErrInvalidTimezone  = errors.New("timezone must be a valid IANA identifier")
	ErrInvalidSeedDays  = errors.New("seed_days must be positive")
)

// Default values.
const (
	DefaultAddr            = ":8080"
	DefaultLocationName    = "Ujjain"
	DefaultLatitude        = 23.1793
	DefaultLongitude       = 75.7849
	DefaultTimezone        = "Asia/Kolkata"
	DefaultCacheMaxEntries = 365
	DefaultCacheTTLHours   = 24
	DefaultMaxOccurrences  = 1000
	DefaultSeedDays        = 400
)

// Load reads configuration from an optional YAML file over the defaults.
// An empty path loads defaults only.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Addr:            DefaultAddr,
		LocationName:    DefaultLocationName,
		Latitude:        DefaultLatitude,
		Longitude:       DefaultLongitude,
		Timezone:        DefaultTimezone,
		CacheMaxEntries: DefaultCacheMaxEntries,
		CacheTTLHours:   DefaultCacheTTLHours,
		MaxOccurrences:  DefaultMaxOccurrences,
		SeedDays:        DefaultSeedDays,
	}

	if path != "" {
		k := koanf.New(".")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
		if err := k.Unmarshal("", cfg); err != nil {
			return nil, fmt.Errorf("unmarshaling config: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return ErrInvalidLatitude
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return ErrInvalidLongitude
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimezone, c.Timezone)
	}
	if c.SeedDays <= 0 {
		return ErrInvalidSeedDays
	}
	return nil
}

// CacheTTL returns the cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLHours) * time.Hour
}
