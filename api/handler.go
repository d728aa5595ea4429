// Package api exposes a thin HTTP read surface over the panchanga
// service and the recurrence engine. All policy (window caps, auth,
// caching headers) belongs to the embedding application.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/drikayan/panchanga/export"
	"github.com/drikayan/panchanga/panchanga"
	"github.com/drikayan/panchanga/recurrence"
)

const (
	headerContentType = "Content-Type"

	mimeTypeJSON     = "application/json; charset=utf-8"
	mimeTypeCalendar = "text/calendar; charset=utf-8"
	mimeTypeAtom     = "application/atom+xml; charset=utf-8"
)

// Handler serves panchanga and occurrence queries for one configured
// location. Register Routes on a server mux to use it.
type Handler struct {
	service  *panchanga.Service
	engine   *recurrence.Engine
	location panchanga.Location
	timezone string
	events   map[uuid.UUID]recurrence.Event
	logger   *slog.Logger
	now      func() time.Time

	// GenerationOptions bounds occurrence expansion; defaults to
	// recurrence.DefaultOptions.
	GenerationOptions recurrence.Options
}

// NewHandler creates a handler. events defines the set expandable through
// the occurrences endpoint.
func NewHandler(service *panchanga.Service, engine *recurrence.Engine, loc panchanga.Location, timezone string, events []recurrence.Event, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	byID := make(map[uuid.UUID]recurrence.Event, len(events))
	for _, ev := range events {
		byID[ev.ID] = ev
	}
	return &Handler{
		service:           service,
		engine:            engine,
		location:          loc,
		timezone:          timezone,
		events:            byID,
		logger:            logger,
		now:               time.Now,
		GenerationOptions: recurrence.DefaultOptions,
	}
}

// Routes registers the handler's endpoints on mux.
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/panchanga", h.handleDaily)
	mux.HandleFunc("/v1/panchanga/range", h.handleRange)
	mux.HandleFunc("/v1/occurrences", h.handleOccurrences)
}

func (h *Handler) handleDaily(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	date := r.URL.Query().Get("date")
	tz := r.URL.Query().Get("tz")
	if tz == "" {
		tz = h.timezone
	}

	snap, err := h.service.GetDaily(date, h.location, tz)
	if err != nil {
		h.writeServiceError(w, err, "date", date)
		return
	}
	h.writeJSON(w, snap)
}

func (h *Handler) handleRange(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	tz := r.URL.Query().Get("tz")
	if tz == "" {
		tz = h.timezone
	}

	snaps, err := h.service.GetRange(start, end, h.location, tz)
	if err != nil {
		h.writeServiceError(w, err, "start", start, "end", end)
		return
	}
	h.writeJSON(w, snaps)
}

func (h *Handler) handleOccurrences(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, err := uuid.Parse(r.URL.Query().Get("event"))
	if err != nil {
		http.Error(w, "invalid event id", http.StatusBadRequest)
		return
	}
	event, ok := h.events[id]
	if !ok {
		http.Error(w, "event not found", http.StatusNotFound)
		return
	}

	advice := recurrence.RecommendedWindow(event.Rule.Kind)
	today := h.now().UTC()
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	window := recurrence.Window{Start: start, End: start.AddDate(advice.YearsAhead, 0, 0)}

	result, err := h.engine.Generate(r.Context(), event.Rule, window, h.GenerationOptions)
	if err != nil {
		h.logger.Error("occurrence generation failed",
			"error", err,
			"event_id", event.ID)
		if errors.Is(err, recurrence.ErrMissingRuleData) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	switch r.URL.Query().Get("format") {
	case "ics":
		w.Header().Set(headerContentType, mimeTypeCalendar)
		cal := export.Calendar(event.Summary, result.Occurrences)
		if err := export.WriteCalendar(w, cal); err != nil {
			h.logger.Error("failed to encode calendar", "error", err, "event_id", event.ID)
		}
	case "atom":
		w.Header().Set(headerContentType, mimeTypeAtom)
		feed := export.Atom(event.Summary, "urn:panchanga:"+event.ID.String(), h.now(), result.Occurrences)
		if err := export.WriteAtom(w, feed); err != nil {
			h.logger.Error("failed to encode feed", "error", err, "event_id", event.ID)
		}
	default:
		h.writeJSON(w, result)
	}
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error, args ...any) {
	switch {
	case errors.Is(err, panchanga.ErrInvalidDate), errors.Is(err, panchanga.ErrInvalidRange):
		h.logger.Info("rejected panchanga request", append([]any{"error", err}, args...)...)
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, panchanga.ErrComputation):
		h.logger.Error("ephemeris failure serving request", append([]any{"error", err}, args...)...)
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		h.logger.Error("unexpected failure serving request", append([]any{"error", err}, args...)...)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set(headerContentType, mimeTypeJSON)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}
