package fetchers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-bovine/db"
	"go-bovine/staticdata"
	"go-bovine/types"
)

const openMeteoBody = `{
	"latitude": 6.85,
	"longitude": 33.05,
	"daily": {
		"time": ["2026-02-09","2026-02-10","2026-02-11","2026-02-12","2026-02-13","2026-02-14","2026-02-15"],
		"precipitation_sum": [0.0, 1.2, 0.0, 3.4, 0.0, 0.0, 2.0],
		"temperature_2m_max": [36.1, 35.4, 34.9, 36.0, 37.2, 36.8, 35.5],
		"et0_fao_evapotranspiration": [5.1, 5.0, 4.9, 5.2, 5.4, 5.3, 5.0]
	}
}`

func TestWeatherFetcherUpsertsEveryZone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Africa/Khartoum", r.URL.Query().Get("timezone"))
		w.Write([]byte(openMeteoBody))
	}))
	defer srv.Close()

	store := db.NewMemoryStore()
	f := NewWeatherFetcher(store)
	f.baseURL = srv.URL

	outcome, err := f.Fetch(context.Background())
	require.NoError(t, err)
	assert.Contains(t, outcome, "8/8 zones")

	readings, err := store.ListWeather(context.Background())
	require.NoError(t, err)
	require.Len(t, readings, len(staticdata.ConflictZones))
	for _, r := range readings {
		assert.Equal(t, types.FreshLive, r.Status)
		assert.InDelta(t, 6.6, r.RainSum7d(), 1e-9)
	}

	// The central snapshot is archived alongside the zone readings.
	snaps, err := store.ListWeatherHistory(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, snaps, 1)
}

func TestWeatherFetcherFailureLeavesCacheUntouched(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()
	prior := types.WeatherReading{
		Zone:      staticdata.ConflictZones[0].Name,
		Daily:     types.WeatherDaily{PrecipitationSum: []float64{1, 2, 3}},
		Status:    types.FreshLive,
		FetchedAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, store.UpsertWeather(ctx, prior))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	f := NewWeatherFetcher(store)
	f.baseURL = srv.URL

	_, err := f.Fetch(ctx)
	assert.Error(t, err)

	got, err := store.GetWeather(ctx, prior.Zone)
	require.NoError(t, err)
	assert.Equal(t, prior.Daily, got.Daily)
}

func TestParseFIRMSCSV(t *testing.T) {
	body := strings.Join([]string{
		"country_id,latitude,longitude,bright_ti4,acq_date,acq_time,satellite,confidence,frp",
		"SSD,7.123,31.456,330.5,2026-02-10,0142,N,nominal,12.3",
		"SSD,bad,31.0,330.0,2026-02-10,0142,N,low,1.0",
		"SSD,8.001,29.002,295.1,2026-02-10,0143,N,high,4.7",
	}, "\n")

	hotspots, err := parseFIRMSCSV(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, hotspots, 2, "bad-coordinate rows are skipped")

	assert.Equal(t, 7.123, hotspots[0].Lat)
	assert.Equal(t, 31.456, hotspots[0].Lng)
	assert.Equal(t, 330.5, hotspots[0].Brightness)
	assert.Equal(t, "2026-02-10", hotspots[0].AcqDate)
	assert.Equal(t, "nominal", hotspots[0].Confidence)
	assert.Equal(t, 12.3, hotspots[0].FRP)
	assert.NotEmpty(t, hotspots[0].ID)
}

func TestParseFIRMSCSVMissingColumn(t *testing.T) {
	_, err := parseFIRMSCSV(strings.NewReader("latitude,longitude\n7.0,31.0"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "acq_date")
}

func TestFireFetcherSkipsWithoutKey(t *testing.T) {
	f := NewFireFetcher(db.NewMemoryStore(), "")
	outcome, err := f.Fetch(context.Background())
	require.NoError(t, err)
	assert.Contains(t, outcome, "skipped")
}

func TestFireFetcherReplacesCollection(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()
	require.NoError(t, store.ReplaceFires(ctx, []types.FireHotspot{{Lat: 1, Lng: 1}}))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "VIIRS_SNPP_NRT")
		w.Write([]byte("latitude,longitude,acq_date\n7.5,30.5,2026-02-10\n8.1,31.2,2026-02-10\n"))
	}))
	defer srv.Close()

	f := NewFireFetcher(store, "testkey")
	f.baseURL = srv.URL

	outcome, err := f.Fetch(ctx)
	require.NoError(t, err)
	assert.Contains(t, outcome, "2 hotspots")

	fires, err := store.ListFires(ctx)
	require.NoError(t, err)
	require.Len(t, fires, 2, "previous window is replaced, not appended")
}

func TestConflictFetcherParsesStringNumerics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "South Sudan", r.URL.Query().Get("country"))
		w.Write([]byte(`{"status":200,"count":2,"data":[
			{"event_date":"2026-02-08","event_type":"Battles","actor1":"Militia A","actor2":"Militia B",
			 "location":"Pibor","latitude":"6.80","longitude":"33.13","fatalities":"4","notes":"n","source":"s"},
			{"event_date":"2026-02-09","event_type":"Riots","actor1":"X","actor2":"",
			 "location":"Bor","latitude":"not-a-number","longitude":"31.56","fatalities":"0","notes":"","source":"s"}
		]}`))
	}))
	defer srv.Close()

	store := db.NewMemoryStore()
	f := NewConflictFetcher(store, "key", "a@b.org")
	f.baseURL = srv.URL

	outcome, err := f.Fetch(context.Background())
	require.NoError(t, err)
	assert.Contains(t, outcome, "1 events")

	events, err := store.ListConflictEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 6.80, events[0].Lat)
	assert.Equal(t, 4, events[0].Fatalities)
	assert.Equal(t, "Battles", events[0].EventType)
}

func TestConflictFetcherSkipsWithoutCredentials(t *testing.T) {
	f := NewConflictFetcher(db.NewMemoryStore(), "", "")
	outcome, err := f.Fetch(context.Background())
	require.NoError(t, err)
	assert.Contains(t, outcome, "skipped")
}

func TestNewsFetcherFallsBackToCurated(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()
	f := NewNewsFetcher(store, "", nil) // no key: live path is unavailable

	outcome, err := f.Fetch(ctx)
	require.NoError(t, err)
	assert.Contains(t, outcome, "curated")

	items, err := store.ListNews(ctx)
	require.NoError(t, err)
	require.Len(t, items, len(staticdata.CuratedNews))
	for _, n := range items {
		assert.NotEmpty(t, n.ID)
		assert.Equal(t, types.FreshStatic, n.Status)
	}
}

func TestNewsFetcherMergesAndDeduplicates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Same article for every query; it must appear once.
		w.Write([]byte(`{"articles":[{"title":"Cattle raid in Jonglei","description":"d",
			"url":"https://example.org/a","publishedAt":"2026-02-10T06:00:00Z","source":{"name":"Wire"}}]}`))
	}))
	defer srv.Close()

	store := db.NewMemoryStore()
	f := NewNewsFetcher(store, "key", nil)
	f.baseURL = srv.URL

	outcome, err := f.Fetch(context.Background())
	require.NoError(t, err)
	assert.Contains(t, outcome, "1 live articles")

	items, err := store.ListNews(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, types.FreshLive, items[0].Status)
	assert.Equal(t, "Wire", items[0].Source)
}

func TestEstimateNDVI(t *testing.T) {
	// Dry week pulls the baseline down to 80%.
	assert.InDelta(t, 0.40, EstimateNDVI(0.5, 0), 1e-9)
	// 15mm week: scale 0.80 + 15/75 = 1.0.
	assert.InDelta(t, 0.5, EstimateNDVI(0.5, 15), 1e-9)
	// Clamped at both ends.
	assert.Equal(t, 0.95, EstimateNDVI(0.9, 200))
	assert.Equal(t, 0.05, EstimateNDVI(0.01, 0))
}

func TestSoilFetcherAveragesHourly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "soil_moisture_0_to_7cm", r.URL.Query().Get("hourly"))
		w.Write([]byte(`{"hourly":{"time":["2026-02-10T00:00","2026-02-10T01:00","2026-02-10T02:00","2026-02-10T03:00"],
			"soil_moisture_0_to_7cm":[0.10,0.20,0.30,0.40]}}`))
	}))
	defer srv.Close()

	store := db.NewMemoryStore()
	f := NewSoilFetcher(store)
	f.baseURL = srv.URL

	_, err := f.Fetch(context.Background())
	require.NoError(t, err)

	r, err := store.GetReading(context.Background(), types.SignalSoil, "Jonglei")
	require.NoError(t, err)
	assert.InDelta(t, 0.25, r.Value, 1e-9)
	assert.Equal(t, "m3/m3", r.Unit)
	assert.Equal(t, types.FreshLive, r.Status)
}

func TestRainfallFetcherSumsSevenDays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.URL.Query().Get("past_days"))
		w.Write([]byte(`{"daily":{"time":["d1","d2","d3","d4","d5","d6","d7","d8"],
			"precipitation_sum":[1,2,3,4,5,6,7,100]}}`))
	}))
	defer srv.Close()

	store := db.NewMemoryStore()
	f := NewRainfallFetcher(store)
	f.baseURL = srv.URL

	_, err := f.Fetch(context.Background())
	require.NoError(t, err)

	r, err := store.GetReading(context.Background(), types.SignalRainfall, "Jonglei")
	require.NoError(t, err)
	assert.InDelta(t, 28.0, r.Value, 1e-9, "only the trailing seven days count")
	assert.Equal(t, "mm/7d", r.Unit)
}
