package fetchers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"go-bovine/db"
	"go-bovine/staticdata"
	"go-bovine/types"
)

// RainfallFetcher caches the trailing 7-day precipitation accumulation
// per grazing region.
type RainfallFetcher struct {
	store   db.SignalStore
	client  *http.Client
	baseURL string
}

func NewRainfallFetcher(store db.SignalStore) *RainfallFetcher {
	return &RainfallFetcher{
		store:   store,
		client:  newHTTPClient(30 * time.Second),
		baseURL: openMeteoBaseURL,
	}
}

func (f *RainfallFetcher) Name() string { return "rainfall" }

func (f *RainfallFetcher) Fetch(ctx context.Context) (string, error) {
	params := url.Values{}
	params.Set("daily", "precipitation_sum")
	params.Set("past_days", "7")
	params.Set("forecast_days", "1")

	updated := 0
	var lastErr error
	for _, region := range staticdata.GrazingRegions {
		resp, err := queryOpenMeteo(ctx, f.client, f.baseURL, region.Lat, region.Lng, params)
		if err != nil {
			log.Printf("Rainfall fetch failed for %s: %v", region.Name, err)
			lastErr = err
			continue
		}
		if len(resp.Daily.PrecipitationSum) == 0 {
			log.Printf("Rainfall fetch for %s returned no daily data, keeping cached value", region.Name)
			lastErr = fmt.Errorf("empty daily block for %s", region.Name)
			continue
		}

		// First seven entries are the past days of the window.
		total := 0.0
		for i, mm := range resp.Daily.PrecipitationSum {
			if i >= 7 {
				break
			}
			total += mm
		}

		reading := types.Reading{
			Key:       region.Name,
			Signal:    types.SignalRainfall,
			Value:     total,
			Unit:      "mm/7d",
			Source:    "Open-Meteo",
			Status:    types.FreshLive,
			FetchedAt: time.Now().UTC(),
		}
		if err := f.store.UpsertReading(ctx, reading); err != nil {
			log.Printf("Rainfall cache write failed for %s: %v", region.Name, err)
			lastErr = err
			continue
		}
		updated++
	}

	if updated == 0 {
		return "", fmt.Errorf("no regions updated: %w", lastErr)
	}
	return fmt.Sprintf("updated %d/%d regions", updated, len(staticdata.GrazingRegions)), nil
}
