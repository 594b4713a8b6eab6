package types

import "time"

// Herd is an estimated herd position with environmental readings attached
// at generation time. Regenerated on every request from the signal cache;
// name, heads, ethnicity and region are fixed reference values.
type Herd struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	Heads        int       `json:"heads"`
	Region       string    `json:"region"`
	Trend        string    `json:"trend"` // compass heading of movement
	Speed        float64   `json:"speed"` // km/day
	WaterDays    int       `json:"water_days"`
	NDVI         float64   `json:"ndvi"`
	SoilMoisture float64   `json:"soil_moisture"`
	Ethnicity    string    `json:"ethnicity"`
	Note         string    `json:"note"`
	FireNearby   bool      `json:"fire_nearby"`
	DataStatus   Freshness `json:"data_status"`
	LastUpdated  time.Time `json:"last_updated"`
}

// WaterSource is a named water point with a reliability estimate.
type WaterSource struct {
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Type        string  `json:"type"`
	Reliability float64 `json:"reliability"`
}

// GrazingRegion is one monitored grazing region with its NDVI baseline.
type GrazingRegion struct {
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	NDVI     float64 `json:"ndvi"` // historical baseline
	Water    string  `json:"water"`
	Trend    string  `json:"trend"`
	Pressure string  `json:"pressure"`
}

// NDVIZone is a static vegetation overlay region.
type NDVIZone struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Radius int     `json:"radius"`
	NDVI   float64 `json:"ndvi"`
	Label  string  `json:"label"`
}

// HistoricalConflict is one recorded past incident used for backtesting.
type HistoricalConflict struct {
	Date         string   `json:"date"`
	Location     string   `json:"location"`
	Lat          float64  `json:"lat"`
	Lng          float64  `json:"lng"`
	Type         string   `json:"type"`
	Casualties   int      `json:"casualties"`
	CattleStolen int      `json:"cattle_stolen"`
	Ethnicities  []string `json:"ethnicities"`
}
