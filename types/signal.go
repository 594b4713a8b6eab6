package types

import "time"

// Freshness classifies how current a cached value is.
type Freshness string

const (
	FreshLive       Freshness = "live"
	FreshCached     Freshness = "cached"
	FreshEstimated  Freshness = "estimated"
	FreshHistorical Freshness = "historical"
	FreshStatic     Freshness = "static"
)

// Scalar signal types. Each maps to one cache collection keyed by
// region or zone name.
const (
	SignalNDVI     = "ndvi"
	SignalSoil     = "soil_moisture"
	SignalRainfall = "rainfall"
)

// Reading is one normalized scalar observation for a region or zone.
type Reading struct {
	Key       string    `firestore:"key" json:"key"`
	Signal    string    `firestore:"signal" json:"signal"`
	Value     float64   `firestore:"value" json:"value"`
	Unit      string    `firestore:"unit" json:"unit"`
	Source    string    `firestore:"source" json:"source"`
	Status    Freshness `firestore:"dataStatus" json:"data_status"`
	FetchedAt time.Time `firestore:"fetchedAt" json:"fetched_at"`
}

// WeatherDaily mirrors the daily block of an Open-Meteo forecast response.
type WeatherDaily struct {
	Time               []string  `firestore:"time" json:"time"`
	PrecipitationSum   []float64 `firestore:"precipitationSum" json:"precipitation_sum"`
	TemperatureMax     []float64 `firestore:"temperatureMax" json:"temperature_2m_max"`
	Evapotranspiration []float64 `firestore:"evapotranspiration" json:"et0_fao_evapotranspiration"`
}

// WeatherReading is the cached forecast window for one zone.
type WeatherReading struct {
	Zone      string       `firestore:"zone" json:"zone"`
	Daily     WeatherDaily `firestore:"daily" json:"daily"`
	Source    string       `firestore:"source" json:"source"`
	Status    Freshness    `firestore:"dataStatus" json:"data_status"`
	FetchedAt time.Time    `firestore:"fetchedAt" json:"fetched_at"`
}

// RainSum7d returns the precipitation accumulated over the first seven
// days of the window.
func (w WeatherReading) RainSum7d() float64 {
	total := 0.0
	for i, mm := range w.Daily.PrecipitationSum {
		if i >= 7 {
			break
		}
		total += mm
	}
	return total
}

// FireHotspot is one satellite-detected thermal anomaly.
type FireHotspot struct {
	ID         string  `firestore:"-" json:"id"`
	Lat        float64 `firestore:"lat" json:"lat"`
	Lng        float64 `firestore:"lng" json:"lng"`
	Brightness float64 `firestore:"brightness" json:"brightness"`
	AcqDate    string  `firestore:"acqDate" json:"acq_date"`
	Satellite  string  `firestore:"satellite" json:"satellite"`
	Confidence string  `firestore:"confidence" json:"confidence"`
	FRP        float64 `firestore:"frp" json:"frp"`
}

// ConflictEvent is one recorded conflict incident from the events feed.
type ConflictEvent struct {
	ID         string  `firestore:"-" json:"id"`
	EventDate  string  `firestore:"eventDate" json:"event_date"`
	EventType  string  `firestore:"eventType" json:"event_type"`
	Actor1     string  `firestore:"actor1" json:"actor1"`
	Actor2     string  `firestore:"actor2" json:"actor2"`
	Location   string  `firestore:"location" json:"location"`
	Lat        float64 `firestore:"lat" json:"lat"`
	Lng        float64 `firestore:"lng" json:"lng"`
	Fatalities int     `firestore:"fatalities" json:"fatalities"`
	Notes      string  `firestore:"notes" json:"notes"`
	Source     string  `firestore:"source" json:"source"`
}

// NewsItem is one article from the news feed.
type NewsItem struct {
	ID             string    `firestore:"-" json:"id"`
	Title          string    `firestore:"title" json:"title"`
	Source         string    `firestore:"source" json:"source"`
	URL            string    `firestore:"url" json:"url"`
	PublishedAt    string    `firestore:"publishedAt" json:"published_at"`
	Summary        string    `firestore:"summary" json:"summary"`
	RelevanceScore float64   `firestore:"relevanceScore" json:"relevance_score"`
	Location       string    `firestore:"location" json:"location"`
	Keywords       []string  `firestore:"keywords" json:"keywords"`
	Status         Freshness `firestore:"dataStatus" json:"data_status"`
}

// FieldReport is one social post pulled from the reports feed.
type FieldReport struct {
	ID          string `firestore:"-" json:"id"`
	Handle      string `firestore:"handle" json:"handle"`
	DisplayName string `firestore:"displayName" json:"display_name"`
	Text        string `firestore:"text" json:"text"`
	PostedAt    string `firestore:"postedAt" json:"posted_at"`
	URI         string `firestore:"uri" json:"uri"`
}

// BatchStatus is the singleton record describing the last refresh cycle.
type BatchStatus struct {
	LastUpdate time.Time         `firestore:"lastUpdate" json:"last_update"`
	NextUpdate time.Time         `firestore:"nextUpdate" json:"next_update"`
	InProgress bool              `firestore:"-" json:"in_progress"`
	Outcomes   map[string]string `firestore:"outcomes" json:"outcomes"`
}

// LocationData is a geocode-cache entry for a named place.
type LocationData struct {
	LocationName     string  `firestore:"locationName" json:"location_name"`
	FormattedAddress string  `firestore:"formattedAddress" json:"formatted_address"`
	Lat              float64 `firestore:"lat" json:"lat"`
	Lng              float64 `firestore:"lng" json:"lng"`
}

// AnalysisRecord is one saved AI query/response pair.
type AnalysisRecord struct {
	ID        string    `firestore:"-" json:"id"`
	Query     string    `firestore:"query" json:"query"`
	Response  string    `firestore:"response" json:"response"`
	Timestamp time.Time `firestore:"timestamp" json:"timestamp"`
}

// WeatherSnapshot is one archived central-point forecast pull.
type WeatherSnapshot struct {
	ID        string       `firestore:"-" json:"id"`
	Location  string       `firestore:"location" json:"location"`
	Daily     WeatherDaily `firestore:"daily" json:"daily"`
	FetchedAt time.Time    `firestore:"fetchedAt" json:"fetched_at"`
}
