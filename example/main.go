// Command example runs a small panchanga HTTP server: it seeds an
// in-memory day-attribute store from the built-in ephemeris engine and
// serves daily snapshots, ranges and event occurrences.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/drikayan/panchanga/api"
	"github.com/drikayan/panchanga/attrstore"
	"github.com/drikayan/panchanga/attrstore/memory"
	"github.com/drikayan/panchanga/config"
	"github.com/drikayan/panchanga/ephemeris"
	"github.com/drikayan/panchanga/panchanga"
	"github.com/drikayan/panchanga/recurrence"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	loc := panchanga.Location{
		Name:      cfg.LocationName,
		Latitude:  cfg.Latitude,
		Longitude: cfg.Longitude,
	}

	eng := ephemeris.New()
	service, err := panchanga.NewServiceWithConfig(eng, panchanga.ServiceConfig{
		Cache: panchanga.CacheConfig{
			MaxEntries: cfg.CacheMaxEntries,
			TTL:        cfg.CacheTTL(),
		},
		Logger: logger,
	})
	if err != nil {
		log.Fatalf("creating service: %v", err)
	}

	// Precompute the day-attribute table the recurrence engine matches
	// against.
	tz, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("loading timezone: %v", err)
	}
	store := memory.New()
	today := time.Now().UTC().Truncate(24 * time.Hour)
	n, err := attrstore.Seed(context.Background(), store, eng, today, today.AddDate(0, 0, cfg.SeedDays), loc, tz)
	if err != nil {
		log.Fatalf("seeding day attributes: %v", err)
	}
	logger.Info("seeded day-attribute store", "days", n, "location", loc.Name)

	generator := recurrence.NewEngineWithLogger(store, logger)
	events := sampleEvents()

	handler := api.NewHandler(service, generator, loc, cfg.Timezone, events, logger)
	handler.GenerationOptions = recurrence.Options{MaxOccurrences: cfg.MaxOccurrences}
	mux := http.NewServeMux()
	handler.Routes(mux)

	logger.Info("starting panchanga server", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// sampleEvents defines a few well-known observances so the occurrences
// endpoint has something to expand.
func sampleEvents() []recurrence.Event {
	return []recurrence.Event{
		{
			ID:      uuid.New(),
			Summary: "Maha Shivaratri",
			Rule: recurrence.Rule{
				Kind:    recurrence.KindYearlyLunar,
				TithiID: 29, // Krishna Chaturdashi
				MaasID:  11, // Magha
			},
		},
		{
			ID:      uuid.New(),
			Summary: "Ekadashi",
			Rule: recurrence.Rule{
				Kind:    recurrence.KindMonthlyLunar,
				TithiID: 11,
			},
		},
		{
			ID:      uuid.New(),
			Summary: "Makara Sankranti",
			Rule: recurrence.Rule{
				Kind:      recurrence.KindSolar,
				IngressID: 10,
			},
		},
	}
}
