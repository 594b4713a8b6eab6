package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-bovine/types"
)

func TestMemoryStoreUpsertReadingOverwritesByKey(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	require.NoError(t, m.UpsertReading(ctx, types.Reading{
		Key: "Jonglei", Signal: types.SignalNDVI, Value: 0.30,
	}))
	require.NoError(t, m.UpsertReading(ctx, types.Reading{
		Key: "Jonglei", Signal: types.SignalNDVI, Value: 0.45,
	}))

	got, err := m.GetReading(ctx, types.SignalNDVI, "Jonglei")
	require.NoError(t, err)
	assert.Equal(t, 0.45, got.Value)

	list, err := m.ListReadings(ctx, types.SignalNDVI)
	require.NoError(t, err)
	assert.Len(t, list, 1, "upsert replaces, never duplicates")
}

func TestMemoryStoreReadingsAreKeyedPerSignal(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	require.NoError(t, m.UpsertReading(ctx, types.Reading{
		Key: "Jonglei", Signal: types.SignalNDVI, Value: 0.30,
	}))
	require.NoError(t, m.UpsertReading(ctx, types.Reading{
		Key: "Jonglei", Signal: types.SignalSoil, Value: 0.15,
	}))

	ndvi, err := m.GetReading(ctx, types.SignalNDVI, "Jonglei")
	require.NoError(t, err)
	assert.Equal(t, 0.30, ndvi.Value)

	_, err = m.GetReading(ctx, types.SignalRainfall, "Jonglei")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreReplaceSemantics(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	require.NoError(t, m.ReplaceFires(ctx, []types.FireHotspot{{ID: "1"}, {ID: "2"}, {ID: "3"}}))
	require.NoError(t, m.ReplaceFires(ctx, []types.FireHotspot{{ID: "4"}}))

	fires, err := m.ListFires(ctx)
	require.NoError(t, err)
	require.Len(t, fires, 1)
	assert.Equal(t, "4", fires[0].ID)

	// Replacing with an empty slice clears the collection.
	require.NoError(t, m.ReplaceFires(ctx, nil))
	fires, err = m.ListFires(ctx)
	require.NoError(t, err)
	assert.Empty(t, fires)
}

func TestMemoryStoreNotFound(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	_, err := m.GetWeather(ctx, "nowhere")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.GetBatchStatus(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.GetLocation(ctx, "Pibor")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreHistoryNewestFirstWithLimit(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, m.SaveWeatherSnapshot(ctx, types.WeatherSnapshot{
			ID:        string(rune('a' + i)),
			FetchedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	snaps, err := m.ListWeatherHistory(ctx, 3)
	require.NoError(t, err)
	require.Len(t, snaps, 3)
	assert.Equal(t, "e", snaps[0].ID)
	assert.Equal(t, "d", snaps[1].ID)
	assert.Equal(t, "c", snaps[2].ID)
}

func TestMemoryStoreListIsACopy(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	require.NoError(t, m.ReplaceNews(ctx, []types.NewsItem{{ID: "n1", Title: "original"}}))

	list, err := m.ListNews(ctx)
	require.NoError(t, err)
	list[0].Title = "mutated"

	again, err := m.ListNews(ctx)
	require.NoError(t, err)
	assert.Equal(t, "original", again[0].Title)
}
