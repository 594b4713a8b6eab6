package fetchers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"go-bovine/db"
	"go-bovine/staticdata"
	"go-bovine/types"
)

// Central reference point archived to weather_history each cycle.
const (
	centralLat      = 7.5
	centralLng      = 30.5
	centralLocation = "South Sudan Central (7.5°N, 30.5°E)"
)

// WeatherFetcher pulls a 14-day forecast window per conflict zone from
// Open-Meteo and upserts one WeatherReading per zone.
type WeatherFetcher struct {
	store   db.SignalStore
	client  *http.Client
	baseURL string
}

func NewWeatherFetcher(store db.SignalStore) *WeatherFetcher {
	return &WeatherFetcher{
		store:   store,
		client:  newHTTPClient(30 * time.Second),
		baseURL: openMeteoBaseURL,
	}
}

func (f *WeatherFetcher) Name() string { return "weather" }

func (f *WeatherFetcher) Fetch(ctx context.Context) (string, error) {
	params := url.Values{}
	params.Set("daily", "precipitation_sum,temperature_2m_max,et0_fao_evapotranspiration")
	params.Set("forecast_days", "14")

	updated := 0
	var lastErr error
	for _, zone := range staticdata.ConflictZones {
		resp, err := queryOpenMeteo(ctx, f.client, f.baseURL, zone.Lat, zone.Lng, params)
		if err != nil {
			log.Printf("Weather fetch failed for zone %s: %v", zone.Name, err)
			lastErr = err
			continue
		}
		if len(resp.Daily.PrecipitationSum) == 0 {
			log.Printf("Weather fetch for zone %s returned no daily data, keeping cached value", zone.Name)
			lastErr = fmt.Errorf("empty daily block for %s", zone.Name)
			continue
		}

		reading := types.WeatherReading{
			Zone:      zone.Name,
			Daily:     resp.Daily,
			Source:    "Open-Meteo",
			Status:    types.FreshLive,
			FetchedAt: time.Now().UTC(),
		}
		if err := f.store.UpsertWeather(ctx, reading); err != nil {
			log.Printf("Weather cache write failed for zone %s: %v", zone.Name, err)
			lastErr = err
			continue
		}
		updated++
	}

	f.archiveCentral(ctx, params)

	if updated == 0 {
		return "", fmt.Errorf("no zones updated: %w", lastErr)
	}
	return fmt.Sprintf("updated %d/%d zones", updated, len(staticdata.ConflictZones)), nil
}

// archiveCentral stores one central-point snapshot for the historical
// weather endpoint. Best-effort; failures only log.
func (f *WeatherFetcher) archiveCentral(ctx context.Context, params url.Values) {
	resp, err := queryOpenMeteo(ctx, f.client, f.baseURL, centralLat, centralLng, params)
	if err != nil {
		log.Printf("Central weather snapshot fetch failed: %v", err)
		return
	}
	snap := types.WeatherSnapshot{
		ID:        uuid.NewString(),
		Location:  centralLocation,
		Daily:     resp.Daily,
		FetchedAt: time.Now().UTC(),
	}
	if err := f.store.SaveWeatherSnapshot(ctx, snap); err != nil {
		log.Printf("Central weather snapshot save failed: %v", err)
	}
}
