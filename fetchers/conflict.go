package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"go-bovine/db"
	"go-bovine/types"
)

const acledBaseURL = "https://api.acleddata.com/acled/read"

// ConflictFetcher pulls recent conflict events for South Sudan from the
// ACLED API and replaces the conflict_events collection wholesale.
// Bulk event queries are slow upstream, so this fetcher carries the
// longest timeout in the registry.
type ConflictFetcher struct {
	store   db.SignalStore
	client  *http.Client
	baseURL string
	apiKey  string
	email   string
}

func NewConflictFetcher(store db.SignalStore, apiKey, email string) *ConflictFetcher {
	return &ConflictFetcher{
		store:   store,
		client:  newHTTPClient(60 * time.Second),
		baseURL: acledBaseURL,
		apiKey:  apiKey,
		email:   email,
	}
}

func (f *ConflictFetcher) Name() string { return "conflict_events" }

// acledEvent mirrors the ACLED wire format; numeric fields arrive as
// strings.
type acledEvent struct {
	EventDate  string `json:"event_date"`
	EventType  string `json:"event_type"`
	Actor1     string `json:"actor1"`
	Actor2     string `json:"actor2"`
	Location   string `json:"location"`
	Latitude   string `json:"latitude"`
	Longitude  string `json:"longitude"`
	Fatalities string `json:"fatalities"`
	Notes      string `json:"notes"`
	Source     string `json:"source"`
}

type acledResponse struct {
	Status int          `json:"status"`
	Count  int          `json:"count"`
	Data   []acledEvent `json:"data"`
}

func (f *ConflictFetcher) Fetch(ctx context.Context) (string, error) {
	if f.apiKey == "" || f.email == "" {
		return "skipped: no ACLED credentials configured", nil
	}

	params := url.Values{}
	params.Set("key", f.apiKey)
	params.Set("email", f.email)
	params.Set("country", "South Sudan")
	params.Set("limit", "100")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("building ACLED request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ACLED request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ACLED returned status %d", resp.StatusCode)
	}

	var payload acledResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decoding ACLED response: %w", err)
	}

	events := make([]types.ConflictEvent, 0, len(payload.Data))
	for _, e := range payload.Data {
		lat, latErr := strconv.ParseFloat(e.Latitude, 64)
		lng, lngErr := strconv.ParseFloat(e.Longitude, 64)
		if latErr != nil || lngErr != nil {
			log.Printf("Skipping ACLED event at %s with bad coordinates", e.Location)
			continue
		}
		fatalities, _ := strconv.Atoi(e.Fatalities)

		events = append(events, types.ConflictEvent{
			ID:         uuid.NewString(),
			EventDate:  e.EventDate,
			EventType:  e.EventType,
			Actor1:     e.Actor1,
			Actor2:     e.Actor2,
			Location:   e.Location,
			Lat:        lat,
			Lng:        lng,
			Fatalities: fatalities,
			Notes:      e.Notes,
			Source:     e.Source,
		})
	}

	if err := f.store.ReplaceConflictEvents(ctx, events); err != nil {
		return "", fmt.Errorf("replacing conflict events: %w", err)
	}
	return fmt.Sprintf("replaced with %d events", len(events)), nil
}
