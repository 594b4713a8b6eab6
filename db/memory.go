package db

import (
	"context"
	"sort"
	"sync"

	"go-bovine/types"
)

// MemoryStore is an in-process SignalStore used when no Firestore
// credentials are configured (local development) and by tests. Same
// last-write-wins semantics as the Firestore implementation.
type MemoryStore struct {
	mu             sync.RWMutex
	weather        map[string]types.WeatherReading
	readings       map[string]map[string]types.Reading // signal -> key -> reading
	fires          []types.FireHotspot
	conflictEvents []types.ConflictEvent
	news           []types.NewsItem
	reports        []types.FieldReport
	batch          *types.BatchStatus
	locations      map[string]types.LocationData
	weatherHistory []types.WeatherSnapshot
	analysisLog    []types.AnalysisRecord
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		weather:   make(map[string]types.WeatherReading),
		readings:  make(map[string]map[string]types.Reading),
		locations: make(map[string]types.LocationData),
	}
}

func (m *MemoryStore) UpsertWeather(ctx context.Context, r types.WeatherReading) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.weather[r.Zone] = r
	return nil
}

func (m *MemoryStore) GetWeather(ctx context.Context, zone string) (types.WeatherReading, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.weather[zone]
	if !ok {
		return types.WeatherReading{}, ErrNotFound
	}
	return r, nil
}

func (m *MemoryStore) ListWeather(ctx context.Context) ([]types.WeatherReading, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]types.WeatherReading, 0, len(m.weather))
	for _, r := range m.weather {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Zone < out[j].Zone })
	return out, nil
}

func (m *MemoryStore) UpsertReading(ctx context.Context, r types.Reading) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readings[r.Signal] == nil {
		m.readings[r.Signal] = make(map[string]types.Reading)
	}
	m.readings[r.Signal][r.Key] = r
	return nil
}

func (m *MemoryStore) GetReading(ctx context.Context, signal, key string) (types.Reading, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.readings[signal][key]
	if !ok {
		return types.Reading{}, ErrNotFound
	}
	return r, nil
}

func (m *MemoryStore) ListReadings(ctx context.Context, signal string) ([]types.Reading, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]types.Reading, 0, len(m.readings[signal]))
	for _, r := range m.readings[signal] {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (m *MemoryStore) ReplaceFires(ctx context.Context, fires []types.FireHotspot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fires = append([]types.FireHotspot(nil), fires...)
	return nil
}

func (m *MemoryStore) ListFires(ctx context.Context) ([]types.FireHotspot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]types.FireHotspot(nil), m.fires...), nil
}

func (m *MemoryStore) ReplaceConflictEvents(ctx context.Context, events []types.ConflictEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conflictEvents = append([]types.ConflictEvent(nil), events...)
	return nil
}

func (m *MemoryStore) ListConflictEvents(ctx context.Context) ([]types.ConflictEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]types.ConflictEvent(nil), m.conflictEvents...), nil
}

func (m *MemoryStore) ReplaceNews(ctx context.Context, items []types.NewsItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.news = append([]types.NewsItem(nil), items...)
	return nil
}

func (m *MemoryStore) ListNews(ctx context.Context) ([]types.NewsItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]types.NewsItem(nil), m.news...), nil
}

func (m *MemoryStore) ReplaceReports(ctx context.Context, reports []types.FieldReport) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports = append([]types.FieldReport(nil), reports...)
	return nil
}

func (m *MemoryStore) ListReports(ctx context.Context) ([]types.FieldReport, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]types.FieldReport(nil), m.reports...), nil
}

func (m *MemoryStore) GetBatchStatus(ctx context.Context) (types.BatchStatus, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.batch == nil {
		return types.BatchStatus{}, ErrNotFound
	}
	return *m.batch, nil
}

func (m *MemoryStore) SetBatchStatus(ctx context.Context, s types.BatchStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batch = &s
	return nil
}

func (m *MemoryStore) GetLocation(ctx context.Context, name string) (types.LocationData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	loc, ok := m.locations[name]
	if !ok {
		return types.LocationData{}, ErrNotFound
	}
	return loc, nil
}

func (m *MemoryStore) SaveLocation(ctx context.Context, loc types.LocationData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locations[loc.LocationName] = loc
	return nil
}

func (m *MemoryStore) SaveWeatherSnapshot(ctx context.Context, snap types.WeatherSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.weatherHistory = append(m.weatherHistory, snap)
	return nil
}

func (m *MemoryStore) ListWeatherHistory(ctx context.Context, limit int) ([]types.WeatherSnapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := append([]types.WeatherSnapshot(nil), m.weatherHistory...)
	sort.Slice(out, func(i, j int) bool { return out[i].FetchedAt.After(out[j].FetchedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryStore) SaveAnalysis(ctx context.Context, rec types.AnalysisRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.analysisLog = append(m.analysisLog, rec)
	return nil
}

func (m *MemoryStore) ListAnalysisHistory(ctx context.Context, limit int) ([]types.AnalysisRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := append([]types.AnalysisRecord(nil), m.analysisLog...)
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
