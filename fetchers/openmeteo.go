package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go-bovine/types"
)

const openMeteoBaseURL = "https://api.open-meteo.com/v1/forecast"

// openMeteoResponse covers the daily and hourly blocks the fetchers
// request. Unknown fields are rejected at this boundary rather than
// silently dropped downstream.
type openMeteoResponse struct {
	Latitude  float64            `json:"latitude"`
	Longitude float64            `json:"longitude"`
	Daily     types.WeatherDaily `json:"daily"`
	Hourly    struct {
		Time         []string  `json:"time"`
		SoilMoisture []float64 `json:"soil_moisture_0_to_7cm"`
	} `json:"hourly"`
}

// queryOpenMeteo performs one forecast request against the Open-Meteo
// API (or a test double via baseURL).
func queryOpenMeteo(ctx context.Context, client *http.Client, baseURL string, lat, lng float64, extra url.Values) (openMeteoResponse, error) {
	var out openMeteoResponse

	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%.4f", lat))
	params.Set("longitude", fmt.Sprintf("%.4f", lng))
	params.Set("timezone", "Africa/Khartoum")
	for k, vs := range extra {
		for _, v := range vs {
			params.Set(k, v)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return out, fmt.Errorf("building Open-Meteo request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return out, fmt.Errorf("Open-Meteo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return out, fmt.Errorf("Open-Meteo returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decoding Open-Meteo response: %w", err)
	}
	return out, nil
}
