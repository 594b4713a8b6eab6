package fetchers

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"go-bovine/db"
	"go-bovine/types"
)

const firmsBaseURL = "https://firms.modaps.eosdis.nasa.gov/api/area/csv"

// South Sudan bounding box (west,south,east,north) for the FIRMS area
// query, and the VIIRS near-real-time product.
const (
	firmsArea   = "24,3,36,13"
	firmsSensor = "VIIRS_SNPP_NRT"
	firmsDays   = "1"
)

// FireFetcher pulls the last day of satellite fire hotspots over South
// Sudan from NASA FIRMS and replaces the fires collection wholesale.
type FireFetcher struct {
	store   db.SignalStore
	client  *http.Client
	baseURL string
	mapKey  string
}

func NewFireFetcher(store db.SignalStore, mapKey string) *FireFetcher {
	return &FireFetcher{
		store:   store,
		client:  newHTTPClient(30 * time.Second),
		baseURL: firmsBaseURL,
		mapKey:  mapKey,
	}
}

func (f *FireFetcher) Name() string { return "fires" }

func (f *FireFetcher) Fetch(ctx context.Context) (string, error) {
	if f.mapKey == "" {
		return "skipped: no FIRMS_MAP_KEY configured", nil
	}

	url := fmt.Sprintf("%s/%s/%s/%s/%s", f.baseURL, f.mapKey, firmsSensor, firmsArea, firmsDays)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building FIRMS request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("FIRMS request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("FIRMS returned status %d", resp.StatusCode)
	}

	hotspots, err := parseFIRMSCSV(resp.Body)
	if err != nil {
		return "", err
	}

	if err := f.store.ReplaceFires(ctx, hotspots); err != nil {
		return "", fmt.Errorf("replacing fires collection: %w", err)
	}
	return fmt.Sprintf("replaced with %d hotspots", len(hotspots)), nil
}

// parseFIRMSCSV reads the FIRMS area CSV by header name so column
// reordering upstream does not break parsing.
func parseFIRMSCSV(r io.Reader) ([]types.FireHotspot, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing FIRMS CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("FIRMS returned an empty body")
	}

	col := map[string]int{}
	for i, name := range records[0] {
		col[name] = i
	}
	for _, required := range []string{"latitude", "longitude", "acq_date"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("FIRMS CSV missing column %q", required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var hotspots []types.FireHotspot
	for _, row := range records[1:] {
		lat, latErr := strconv.ParseFloat(field(row, "latitude"), 64)
		lng, lngErr := strconv.ParseFloat(field(row, "longitude"), 64)
		if latErr != nil || lngErr != nil {
			log.Printf("Skipping FIRMS row with bad coordinates: %v", row)
			continue
		}
		brightness, _ := strconv.ParseFloat(field(row, "bright_ti4"), 64)
		frp, _ := strconv.ParseFloat(field(row, "frp"), 64)

		hotspots = append(hotspots, types.FireHotspot{
			ID:         uuid.NewString(),
			Lat:        lat,
			Lng:        lng,
			Brightness: brightness,
			AcqDate:    field(row, "acq_date"),
			Satellite:  field(row, "satellite"),
			Confidence: field(row, "confidence"),
			FRP:        frp,
		})
	}
	return hotspots, nil
}
