// memory based implementation for testing and small deployments
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/drikayan/panchanga/attrstore"
)

// Store implements attrstore.Store and attrstore.Writer using an
// in-memory map keyed by civil date.
type Store struct {
	mu   sync.RWMutex
	days map[string]attrstore.DayRecord // key: YYYY-MM-DD
}

// New creates a new in-memory day-attribute store.
func New() *Store {
	return &Store{
		days: make(map[string]attrstore.DayRecord),
	}
}

func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// PutDays inserts or replaces records, keyed by civil date.
func (s *Store) PutDays(_ context.Context, records []attrstore.DayRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		if r.Date.IsZero() {
			return attrstore.ErrInvalidInput
		}
		s.days[dayKey(r.Date)] = r
	}
	return nil
}

// GetDay returns the record for one civil date.
func (s *Store) GetDay(_ context.Context, date time.Time) (attrstore.DayRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.days[dayKey(date)]
	if !ok {
		return attrstore.DayRecord{}, attrstore.ErrNotFound
	}
	return r, nil
}

// FindDays returns records matching q in ascending date order.
func (s *Store) FindDays(_ context.Context, q attrstore.Query) ([]attrstore.DayRecord, error) {
	if q.From.After(q.To) {
		return nil, attrstore.ErrInvalidInput
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []attrstore.DayRecord
	for _, r := range s.days {
		if q.Matches(r) {
			matches = append(matches, r)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Date.Before(matches[j].Date)
	})
	return matches, nil
}

// Len reports the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.days)
}
