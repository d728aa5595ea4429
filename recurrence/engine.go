package recurrence

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/samber/mo"

	"github.com/drikayan/panchanga/attrstore"
	"github.com/drikayan/panchanga/panchanga"
)

const clockLayout = "15:04"

// Engine expands event rules against a day-attribute store. It carries no
// state between calls: generation is a pure function of (rule, stored day
// attributes within the window, options).
type Engine struct {
	store  attrstore.Store
	logger *slog.Logger
}

// NewEngine creates an engine over the given store.
func NewEngine(store attrstore.Store) *Engine {
	return NewEngineWithLogger(store, nil)
}

// NewEngineWithLogger creates an engine that logs truncations and
// per-event batch failures through logger.
func NewEngineWithLogger(store attrstore.Store, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{store: store, logger: logger}
}

// Generate expands rule into concrete occurrences within window, in
// ascending date order. The result is truncated to opts.MaxOccurrences
// (DefaultOptions when zero) with the Truncated flag set, so pathological
// rule/window combinations stay bounded.
func (e *Engine) Generate(ctx context.Context, rule Rule, window Window, opts Options) (Result, error) {
	if opts.MaxOccurrences <= 0 {
		opts.MaxOccurrences = DefaultOptions.MaxOccurrences
	}

	var occurrences []Occurrence
	var err error
	switch rule.Kind {
	case KindNone:
		return Result{}, nil
	case KindSolar:
		occurrences, err = e.generateSolar(ctx, rule, window)
	case KindTithi, KindYearlyLunar:
		occurrences, err = e.generateYearlyLunar(ctx, rule, window)
	case KindMonthlyLunar:
		occurrences, err = e.generateMonthlyLunar(ctx, rule, window)
	case KindYearlySolar, KindMonthlySolar:
		occurrences, err = e.generateFromTemplate(rule, window)
	default:
		return Result{}, nil
	}
	if err != nil {
		return Result{}, err
	}

	result := Result{Occurrences: occurrences}
	if len(occurrences) > opts.MaxOccurrences {
		result.Occurrences = occurrences[:opts.MaxOccurrences]
		result.Truncated = true
		e.logger.Warn("occurrence list truncated by safety limit",
			"kind", rule.Kind.String(),
			"matched", len(occurrences),
			"limit", opts.MaxOccurrences)
	}
	return result, nil
}

// GenerateForEvents expands a batch of events over one window. Failures
// are isolated per event: a failing event yields an empty result and a
// warning, never aborting the rest of the batch.
func (e *Engine) GenerateForEvents(ctx context.Context, events []Event, window Window) map[uuid.UUID]Result {
	results := make(map[uuid.UUID]Result, len(events))
	for _, event := range events {
		result, err := e.Generate(ctx, event.Rule, window, DefaultOptions)
		if err != nil {
			e.logger.Warn("occurrence generation failed for event",
				"error", err,
				"event_id", event.ID,
				"summary", event.Summary,
				"kind", event.Rule.Kind.String())
			results[event.ID] = Result{}
			continue
		}
		results[event.ID] = result
	}
	return results
}

// lunarQuery builds the store query shared by the lunar paths: target
// tithi plus the rule's leap-month policy and optional month filter.
func lunarQuery(rule Rule, window Window) attrstore.Query {
	q := attrstore.Query{
		From:    window.Start,
		To:      window.End,
		TithiID: &rule.TithiID,
	}
	if rule.AdhikaOnly {
		adhika := true
		q.Adhika = &adhika
	} else if !rule.IncludeAdhika {
		adhika := false
		q.Adhika = &adhika
	}
	if rule.MaasID != 0 {
		q.MaasID = &rule.MaasID
	}
	return q
}

// generateYearlyLunar matches the target tithi under the leap-month
// policy and keeps exactly one occurrence per calendar year. A given
// (tithi, month, leap-policy) combination occurs once per lunar year; if
// the attribute table yields more (a data anomaly), the chronologically
// first match wins so output stays deterministic.
func (e *Engine) generateYearlyLunar(ctx context.Context, rule Rule, window Window) ([]Occurrence, error) {
	if rule.TithiID == 0 {
		return nil, fmt.Errorf("%w: lunar rule without target tithi", ErrMissingRuleData)
	}

	records, err := e.store.FindDays(ctx, lunarQuery(rule, window))
	if err != nil {
		return nil, fmt.Errorf("querying day attributes: %w", err)
	}

	var occurrences []Occurrence
	taken := make(map[int]bool)
	for _, r := range records {
		year := r.Date.Year()
		if taken[year] {
			continue
		}
		taken[year] = true

		occ := Occurrence{Date: r.Date}
		if end, ok := r.TithiEnd.Get(); ok {
			// An end time past local midnight tells the caller the
			// tithi continues into the next civil day.
			occ.EndTime = mo.Some(end.Format(clockLayout))
		}
		occurrences = append(occurrences, occ)
	}
	return occurrences, nil
}

// generateMonthlyLunar keeps every match of the target tithi and pairs up
// spanning tithis: a tithi longer than 24h appears on two consecutive
// civil days, and both days must be emitted with boundaries that make the
// span explicit. Adjacency is decided by civil-date arithmetic, not
// elapsed time, so timezone offsets cannot shift the pairing.
func (e *Engine) generateMonthlyLunar(ctx context.Context, rule Rule, window Window) ([]Occurrence, error) {
	if rule.TithiID == 0 {
		return nil, fmt.Errorf("%w: lunar rule without target tithi", ErrMissingRuleData)
	}

	q := attrstore.Query{
		From:    window.Start,
		To:      window.End,
		TithiID: &rule.TithiID,
	}
	records, err := e.store.FindDays(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying day attributes: %w", err)
	}

	name := panchanga.TithiName(rule.TithiID)
	occurrences := make([]Occurrence, 0, len(records))
	for i, r := range records {
		nextAdjacent := i+1 < len(records) &&
			records[i+1].Date.Equal(r.Date.AddDate(0, 0, 1))
		prevAdjacent := i > 0 &&
			records[i-1].Date.Equal(r.Date.AddDate(0, 0, -1))

		occ := Occurrence{Date: r.Date}
		switch {
		case nextAdjacent:
			// First day of a spanning pair.
			next := r.Date.AddDate(0, 0, 1)
			occ.EndDate = mo.Some(next)
			occ.StartTime = mo.Some("00:00")
			occ.EndTime = mo.Some("23:59")
			occ.Note = fmt.Sprintf("%s continues into %s", name, next.Format("2006-01-02"))
		case prevAdjacent:
			// Second day of a spanning pair.
			occ.StartTime = mo.Some("00:00")
			if end, ok := r.TithiEnd.Get(); ok {
				occ.EndTime = mo.Some(end.Format(clockLayout))
				occ.Note = fmt.Sprintf("%s ends at %s", name, end.Format(clockLayout))
			}
		default:
			if end, ok := r.TithiEnd.Get(); ok {
				occ.EndTime = mo.Some(end.Format(clockLayout))
			}
		}
		occurrences = append(occurrences, occ)
	}
	return occurrences, nil
}

// generateSolar matches days carrying the target sankranti. Ingress
// events are unique per cycle by astronomical construction, so no
// deduplication or month filtering applies.
func (e *Engine) generateSolar(ctx context.Context, rule Rule, window Window) ([]Occurrence, error) {
	if rule.IngressID == 0 {
		return nil, fmt.Errorf("%w: solar rule without target ingress", ErrMissingRuleData)
	}

	q := attrstore.Query{
		From:      window.Start,
		To:        window.End,
		IngressID: &rule.IngressID,
	}
	records, err := e.store.FindDays(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying day attributes: %w", err)
	}

	occurrences := make([]Occurrence, 0, len(records))
	for _, r := range records {
		occ := Occurrence{Date: r.Date}
		if at, ok := r.IngressTime.Get(); ok {
			occ.StartTime = mo.Some(at.Format(clockLayout))
		}
		occurrences = append(occurrences, occ)
	}
	return occurrences, nil
}
