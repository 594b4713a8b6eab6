package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go-bovine/types"
)

// ErrNotFound is returned when a cache key has never been written.
var ErrNotFound = errors.New("not found")

const (
	weatherCollection        = "weather"
	firesCollection          = "fires"
	conflictsCollection      = "conflict_events"
	newsCollection           = "news"
	reportsCollection        = "field_reports"
	locationsCollection      = "locations"
	weatherHistoryCollection = "weather_history"
	aiHistoryCollection      = "ai_history"
	metaCollection           = "meta"
	batchStatusDoc           = "batch_update"
)

// SignalStore is the cache contract the scheduler, fetchers, risk engine
// and handlers work against. Scalar signals use upsert-by-key semantics;
// list signals are replaced wholesale each refresh cycle. The store only
// guarantees per-document atomic upsert/replace, nothing stronger.
type SignalStore interface {
	UpsertWeather(ctx context.Context, r types.WeatherReading) error
	GetWeather(ctx context.Context, zone string) (types.WeatherReading, error)
	ListWeather(ctx context.Context) ([]types.WeatherReading, error)

	UpsertReading(ctx context.Context, r types.Reading) error
	GetReading(ctx context.Context, signal, key string) (types.Reading, error)
	ListReadings(ctx context.Context, signal string) ([]types.Reading, error)

	ReplaceFires(ctx context.Context, fires []types.FireHotspot) error
	ListFires(ctx context.Context) ([]types.FireHotspot, error)
	ReplaceConflictEvents(ctx context.Context, events []types.ConflictEvent) error
	ListConflictEvents(ctx context.Context) ([]types.ConflictEvent, error)
	ReplaceNews(ctx context.Context, items []types.NewsItem) error
	ListNews(ctx context.Context) ([]types.NewsItem, error)
	ReplaceReports(ctx context.Context, reports []types.FieldReport) error
	ListReports(ctx context.Context) ([]types.FieldReport, error)

	GetBatchStatus(ctx context.Context) (types.BatchStatus, error)
	SetBatchStatus(ctx context.Context, s types.BatchStatus) error

	GetLocation(ctx context.Context, name string) (types.LocationData, error)
	SaveLocation(ctx context.Context, loc types.LocationData) error

	SaveWeatherSnapshot(ctx context.Context, snap types.WeatherSnapshot) error
	ListWeatherHistory(ctx context.Context, limit int) ([]types.WeatherSnapshot, error)
	SaveAnalysis(ctx context.Context, rec types.AnalysisRecord) error
	ListAnalysisHistory(ctx context.Context, limit int) ([]types.AnalysisRecord, error)
}

// FirestoreStore implements SignalStore on top of Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore wraps an initialized Firestore client.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) UpsertWeather(ctx context.Context, r types.WeatherReading) error {
	docID := HashString(r.Zone)
	_, err := s.client.Collection(weatherCollection).Doc(docID).Set(ctx, r)
	if err != nil {
		return fmt.Errorf("failed to upsert weather for %s: %w", r.Zone, err)
	}
	return nil
}

func (s *FirestoreStore) GetWeather(ctx context.Context, zone string) (types.WeatherReading, error) {
	var r types.WeatherReading
	doc, err := s.client.Collection(weatherCollection).Doc(HashString(zone)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return r, ErrNotFound
		}
		return r, fmt.Errorf("error getting weather for %s: %w", zone, err)
	}
	if err := doc.DataTo(&r); err != nil {
		return r, fmt.Errorf("error converting weather doc for %s: %w", zone, err)
	}
	return r, nil
}

func (s *FirestoreStore) ListWeather(ctx context.Context) ([]types.WeatherReading, error) {
	var out []types.WeatherReading
	iter := s.client.Collection(weatherCollection).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating weather collection: %w", err)
		}
		var r types.WeatherReading
		if err := doc.DataTo(&r); err != nil {
			log.Printf("Warning: skipping malformed weather doc %s: %v", doc.Ref.ID, err)
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *FirestoreStore) UpsertReading(ctx context.Context, r types.Reading) error {
	docID := HashString(r.Key)
	_, err := s.client.Collection(r.Signal).Doc(docID).Set(ctx, r)
	if err != nil {
		return fmt.Errorf("failed to upsert %s reading for %s: %w", r.Signal, r.Key, err)
	}
	return nil
}

func (s *FirestoreStore) GetReading(ctx context.Context, signal, key string) (types.Reading, error) {
	var r types.Reading
	doc, err := s.client.Collection(signal).Doc(HashString(key)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return r, ErrNotFound
		}
		return r, fmt.Errorf("error getting %s reading for %s: %w", signal, key, err)
	}
	if err := doc.DataTo(&r); err != nil {
		return r, fmt.Errorf("error converting %s doc for %s: %w", signal, key, err)
	}
	return r, nil
}

func (s *FirestoreStore) ListReadings(ctx context.Context, signal string) ([]types.Reading, error) {
	var out []types.Reading
	iter := s.client.Collection(signal).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating %s collection: %w", signal, err)
		}
		var r types.Reading
		if err := doc.DataTo(&r); err != nil {
			log.Printf("Warning: skipping malformed %s doc %s: %v", signal, doc.Ref.ID, err)
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type bulkDoc struct {
	id   string
	data interface{}
}

// replaceCollection clears a collection and bulk-inserts replacement
// docs. Used for list-valued signals that represent a sliding window.
func (s *FirestoreStore) replaceCollection(ctx context.Context, name string, docs []bulkDoc) error {
	collRef := s.client.Collection(name)

	bw := s.client.BulkWriter(ctx)
	iter := collRef.Documents(ctx)
	defer iter.Stop()
	deleted := 0
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("error iterating %s for replace: %w", name, err)
		}
		if _, err := bw.Delete(doc.Ref); err != nil {
			log.Printf("Error enqueueing delete in %s: %v", name, err)
		}
		deleted++
	}

	saved := 0
	for _, d := range docs {
		if d.id == "" {
			log.Printf("Warning: skipping %s doc with empty ID", name)
			continue
		}
		if _, err := bw.Set(collRef.Doc(d.id), d.data); err != nil {
			log.Printf("Error enqueueing %s doc %s: %v", name, d.id, err)
			continue
		}
		saved++
	}

	bw.Flush()
	log.Printf("Replaced collection %s: %d deleted, %d inserted", name, deleted, saved)
	return nil
}

func (s *FirestoreStore) ReplaceFires(ctx context.Context, fires []types.FireHotspot) error {
	docs := make([]bulkDoc, 0, len(fires))
	for _, f := range fires {
		docs = append(docs, bulkDoc{id: f.ID, data: f})
	}
	return s.replaceCollection(ctx, firesCollection, docs)
}

func (s *FirestoreStore) ListFires(ctx context.Context) ([]types.FireHotspot, error) {
	var out []types.FireHotspot
	iter := s.client.Collection(firesCollection).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating fires: %w", err)
		}
		var f types.FireHotspot
		if err := doc.DataTo(&f); err != nil {
			log.Printf("Warning: skipping malformed fire doc %s: %v", doc.Ref.ID, err)
			continue
		}
		f.ID = doc.Ref.ID
		out = append(out, f)
	}
	return out, nil
}

func (s *FirestoreStore) ReplaceConflictEvents(ctx context.Context, events []types.ConflictEvent) error {
	docs := make([]bulkDoc, 0, len(events))
	for _, e := range events {
		docs = append(docs, bulkDoc{id: e.ID, data: e})
	}
	return s.replaceCollection(ctx, conflictsCollection, docs)
}

func (s *FirestoreStore) ListConflictEvents(ctx context.Context) ([]types.ConflictEvent, error) {
	var out []types.ConflictEvent
	iter := s.client.Collection(conflictsCollection).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating conflict events: %w", err)
		}
		var e types.ConflictEvent
		if err := doc.DataTo(&e); err != nil {
			log.Printf("Warning: skipping malformed conflict event %s: %v", doc.Ref.ID, err)
			continue
		}
		e.ID = doc.Ref.ID
		out = append(out, e)
	}
	return out, nil
}

func (s *FirestoreStore) ReplaceNews(ctx context.Context, items []types.NewsItem) error {
	docs := make([]bulkDoc, 0, len(items))
	for _, n := range items {
		id := n.ID
		if id == "" {
			id = HashString(n.Title)
		}
		docs = append(docs, bulkDoc{id: id, data: n})
	}
	return s.replaceCollection(ctx, newsCollection, docs)
}

func (s *FirestoreStore) ListNews(ctx context.Context) ([]types.NewsItem, error) {
	var out []types.NewsItem
	iter := s.client.Collection(newsCollection).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating news: %w", err)
		}
		var n types.NewsItem
		if err := doc.DataTo(&n); err != nil {
			log.Printf("Warning: skipping malformed news doc %s: %v", doc.Ref.ID, err)
			continue
		}
		n.ID = doc.Ref.ID
		out = append(out, n)
	}
	return out, nil
}

func (s *FirestoreStore) ReplaceReports(ctx context.Context, reports []types.FieldReport) error {
	docs := make([]bulkDoc, 0, len(reports))
	for _, r := range reports {
		id := r.ID
		if id == "" {
			id = HashString(r.URI)
		}
		docs = append(docs, bulkDoc{id: id, data: r})
	}
	return s.replaceCollection(ctx, reportsCollection, docs)
}

func (s *FirestoreStore) ListReports(ctx context.Context) ([]types.FieldReport, error) {
	var out []types.FieldReport
	iter := s.client.Collection(reportsCollection).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating field reports: %w", err)
		}
		var r types.FieldReport
		if err := doc.DataTo(&r); err != nil {
			log.Printf("Warning: skipping malformed report doc %s: %v", doc.Ref.ID, err)
			continue
		}
		r.ID = doc.Ref.ID
		out = append(out, r)
	}
	return out, nil
}

func (s *FirestoreStore) GetBatchStatus(ctx context.Context) (types.BatchStatus, error) {
	var b types.BatchStatus
	doc, err := s.client.Collection(metaCollection).Doc(batchStatusDoc).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return b, ErrNotFound
		}
		return b, fmt.Errorf("error getting batch status: %w", err)
	}
	if err := doc.DataTo(&b); err != nil {
		return b, fmt.Errorf("error converting batch status doc: %w", err)
	}
	return b, nil
}

func (s *FirestoreStore) SetBatchStatus(ctx context.Context, b types.BatchStatus) error {
	_, err := s.client.Collection(metaCollection).Doc(batchStatusDoc).Set(ctx, b)
	if err != nil {
		return fmt.Errorf("failed to set batch status: %w", err)
	}
	return nil
}

func (s *FirestoreStore) GetLocation(ctx context.Context, name string) (types.LocationData, error) {
	var loc types.LocationData
	doc, err := s.client.Collection(locationsCollection).Doc(HashString(name)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return loc, ErrNotFound
		}
		return loc, fmt.Errorf("error getting location %s: %w", name, err)
	}
	if err := doc.DataTo(&loc); err != nil {
		return loc, fmt.Errorf("error converting location doc %s: %w", name, err)
	}
	return loc, nil
}

func (s *FirestoreStore) SaveLocation(ctx context.Context, loc types.LocationData) error {
	docID := HashString(loc.LocationName)
	_, err := s.client.Collection(locationsCollection).Doc(docID).Set(ctx, loc, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to save location %s: %w", loc.LocationName, err)
	}
	return nil
}

func (s *FirestoreStore) SaveWeatherSnapshot(ctx context.Context, snap types.WeatherSnapshot) error {
	_, err := s.client.Collection(weatherHistoryCollection).Doc(snap.ID).Set(ctx, snap)
	if err != nil {
		return fmt.Errorf("failed to save weather snapshot: %w", err)
	}
	return nil
}

func (s *FirestoreStore) ListWeatherHistory(ctx context.Context, limit int) ([]types.WeatherSnapshot, error) {
	var out []types.WeatherSnapshot
	iter := s.client.Collection(weatherHistoryCollection).
		OrderBy("fetchedAt", firestore.Desc).
		Limit(limit).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating weather history: %w", err)
		}
		var snap types.WeatherSnapshot
		if err := doc.DataTo(&snap); err != nil {
			log.Printf("Warning: skipping malformed snapshot %s: %v", doc.Ref.ID, err)
			continue
		}
		snap.ID = doc.Ref.ID
		out = append(out, snap)
	}
	return out, nil
}

func (s *FirestoreStore) SaveAnalysis(ctx context.Context, rec types.AnalysisRecord) error {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	_, err := s.client.Collection(aiHistoryCollection).Doc(rec.ID).Set(ctx, rec)
	if err != nil {
		return fmt.Errorf("failed to save analysis record: %w", err)
	}
	return nil
}

func (s *FirestoreStore) ListAnalysisHistory(ctx context.Context, limit int) ([]types.AnalysisRecord, error) {
	var out []types.AnalysisRecord
	iter := s.client.Collection(aiHistoryCollection).
		OrderBy("timestamp", firestore.Desc).
		Limit(limit).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating analysis history: %w", err)
		}
		var rec types.AnalysisRecord
		if err := doc.DataTo(&rec); err != nil {
			log.Printf("Warning: skipping malformed analysis doc %s: %v", doc.Ref.ID, err)
			continue
		}
		rec.ID = doc.Ref.ID
		out = append(out, rec)
	}
	return out, nil
}
