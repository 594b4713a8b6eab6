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

// SoilFetcher pulls hourly topsoil moisture per grazing region from
// Open-Meteo and caches the 24-hour mean as one reading per region.
type SoilFetcher struct {
	store   db.SignalStore
	client  *http.Client
	baseURL string
}

func NewSoilFetcher(store db.SignalStore) *SoilFetcher {
	return &SoilFetcher{
		store:   store,
		client:  newHTTPClient(30 * time.Second),
		baseURL: openMeteoBaseURL,
	}
}

func (f *SoilFetcher) Name() string { return "soil_moisture" }

func (f *SoilFetcher) Fetch(ctx context.Context) (string, error) {
	params := url.Values{}
	params.Set("hourly", "soil_moisture_0_to_7cm")
	params.Set("forecast_days", "1")

	updated := 0
	var lastErr error
	for _, region := range staticdata.GrazingRegions {
		resp, err := queryOpenMeteo(ctx, f.client, f.baseURL, region.Lat, region.Lng, params)
		if err != nil {
			log.Printf("Soil moisture fetch failed for %s: %v", region.Name, err)
			lastErr = err
			continue
		}
		if len(resp.Hourly.SoilMoisture) == 0 {
			log.Printf("Soil moisture fetch for %s returned no hourly data, keeping cached value", region.Name)
			lastErr = fmt.Errorf("empty hourly block for %s", region.Name)
			continue
		}

		total := 0.0
		for _, v := range resp.Hourly.SoilMoisture {
			total += v
		}
		mean := total / float64(len(resp.Hourly.SoilMoisture))

		reading := types.Reading{
			Key:       region.Name,
			Signal:    types.SignalSoil,
			Value:     mean,
			Unit:      "m3/m3",
			Source:    "Open-Meteo",
			Status:    types.FreshLive,
			FetchedAt: time.Now().UTC(),
		}
		if err := f.store.UpsertReading(ctx, reading); err != nil {
			log.Printf("Soil moisture cache write failed for %s: %v", region.Name, err)
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
