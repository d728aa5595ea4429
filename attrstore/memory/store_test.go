package memory

import (
	"context"
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drikayan/panchanga/attrstore"
)

func civil(date string) time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return t
}

func seedStore(t *testing.T) *Store {
	t.Helper()
	store := New()
	records := []attrstore.DayRecord{
		{Date: civil("2025-01-10"), TithiID: 11, MaasID: 10, Adhika: false},
		{Date: civil("2025-01-14"), TithiID: 15, MaasID: 10, IngressID: mo.Some(10)},
		{Date: civil("2025-06-10"), TithiID: 11, MaasID: 3, Adhika: true},
		{Date: civil("2025-07-09"), TithiID: 11, MaasID: 3, Adhika: false},
	}
	require.NoError(t, store.PutDays(context.Background(), records))
	return store
}

func TestFindDaysOrderingAndWindow(t *testing.T) {
	store := seedStore(t)

	records, err := store.FindDays(context.Background(), attrstore.Query{
		From: civil("2025-01-01"),
		To:   civil("2025-12-31"),
	})
	require.NoError(t, err)
	require.Len(t, records, 4)
	for i := 1; i < len(records); i++ {
		assert.True(t, records[i-1].Date.Before(records[i].Date), "records must be date-ascending")
	}

	records, err = store.FindDays(context.Background(), attrstore.Query{
		From: civil("2025-06-01"),
		To:   civil("2025-06-30"),
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, civil("2025-06-10"), records[0].Date)
}

func TestFindDaysFilters(t *testing.T) {
	store := seedStore(t)
	all := attrstore.Query{From: civil("2025-01-01"), To: civil("2025-12-31")}

	tithi := 11
	q := all
	q.TithiID = &tithi
	records, err := store.FindDays(context.Background(), q)
	require.NoError(t, err)
	assert.Len(t, records, 3)

	leap := true
	q.Adhika = &leap
	records, err = store.FindDays(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, civil("2025-06-10"), records[0].Date)

	ingressID := 10
	q = all
	q.IngressID = &ingressID
	records, err = store.FindDays(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, civil("2025-01-14"), records[0].Date)

	maasID := 3
	q = all
	q.MaasID = &maasID
	records, err = store.FindDays(context.Background(), q)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestFindDaysInvalidRange(t *testing.T) {
	store := seedStore(t)
	_, err := store.FindDays(context.Background(), attrstore.Query{
		From: civil("2025-12-31"),
		To:   civil("2025-01-01"),
	})
	assert.ErrorIs(t, err, attrstore.ErrInvalidInput)
}

func TestPutDaysReplacesByDate(t *testing.T) {
	store := New()
	ctx := context.Background()

	require.NoError(t, store.PutDays(ctx, []attrstore.DayRecord{
		{Date: civil("2025-01-10"), TithiID: 11},
	}))
	require.NoError(t, store.PutDays(ctx, []attrstore.DayRecord{
		{Date: civil("2025-01-10"), TithiID: 12},
	}))

	assert.Equal(t, 1, store.Len())
	r, err := store.GetDay(ctx, civil("2025-01-10"))
	require.NoError(t, err)
	assert.Equal(t, 12, r.TithiID)
}

func TestPutDaysRejectsZeroDate(t *testing.T) {
	store := New()
	err := store.PutDays(context.Background(), []attrstore.DayRecord{{TithiID: 1}})
	assert.ErrorIs(t, err, attrstore.ErrInvalidInput)
}

func TestGetDayNotFound(t *testing.T) {
	store := New()
	_, err := store.GetDay(context.Background(), civil("2025-01-10"))
	assert.ErrorIs(t, err, attrstore.ErrNotFound)
}
