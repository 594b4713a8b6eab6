package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-bovine/db"
	"go-bovine/staticdata"
	"go-bovine/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func doGet(t *testing.T, handler gin.HandlerFunc, path string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	r := gin.New()
	r.GET(path, handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestGetHerdsColdStart(t *testing.T) {
	store := db.NewMemoryStore()
	w, body := doGet(t, func(c *gin.Context) { GetHerds(c, store) }, "/api/herds")

	assert.Equal(t, http.StatusOK, w.Code)

	var herdList []types.Herd
	require.NoError(t, json.Unmarshal(body["herds"], &herdList))
	assert.Len(t, herdList, len(staticdata.HerdRefs))

	var status string
	require.NoError(t, json.Unmarshal(body["data_status"], &status))
	assert.Equal(t, string(types.FreshHistorical), status)
}

func TestGetConflictZonesSortedWithCounts(t *testing.T) {
	store := db.NewMemoryStore()
	w, body := doGet(t, func(c *gin.Context) { GetConflictZones(c, store) }, "/api/conflict-zones")

	assert.Equal(t, http.StatusOK, w.Code)

	var zones []types.AssessedZone
	require.NoError(t, json.Unmarshal(body["zones"], &zones))
	require.Len(t, zones, len(staticdata.ConflictZones))
	for i := 1; i < len(zones); i++ {
		assert.GreaterOrEqual(t, zones[i-1].RealTimeRisk, zones[i].RealTimeRisk)
	}

	var critical, high int
	require.NoError(t, json.Unmarshal(body["critical_count"], &critical))
	require.NoError(t, json.Unmarshal(body["high_count"], &high))
	n := 0
	for _, z := range zones {
		switch z.RealTimeLevel {
		case types.RiskCritical:
			n++
		case types.RiskHigh:
			n++
		}
	}
	assert.Equal(t, n, critical+high)
}

func TestGetNewsColdStartServesCurated(t *testing.T) {
	store := db.NewMemoryStore()
	w, body := doGet(t, func(c *gin.Context) { GetNews(c, store) }, "/api/news")

	assert.Equal(t, http.StatusOK, w.Code)

	var articles []types.NewsItem
	require.NoError(t, json.Unmarshal(body["articles"], &articles))
	assert.Len(t, articles, len(staticdata.CuratedNews))

	var status string
	require.NoError(t, json.Unmarshal(body["data_status"], &status))
	assert.Equal(t, string(types.FreshStatic), status)
}

func TestGetNDVIColdStartServesBaselines(t *testing.T) {
	store := db.NewMemoryStore()
	_, body := doGet(t, func(c *gin.Context) { GetNDVI(c, store) }, "/api/ndvi")

	var readings []types.Reading
	require.NoError(t, json.Unmarshal(body["readings"], &readings))
	require.Len(t, readings, len(staticdata.GrazingRegions))
	for _, r := range readings {
		assert.Equal(t, types.FreshHistorical, r.Status)
	}
}

func TestGetWeatherDegradesStaleLiveToCached(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()
	require.NoError(t, store.UpsertWeather(ctx, types.WeatherReading{
		Zone:      "Stale Zone",
		Daily:     types.WeatherDaily{PrecipitationSum: []float64{1}},
		Status:    types.FreshLive,
		FetchedAt: time.Now().Add(-time.Hour),
	}))

	_, body := doGet(t, func(c *gin.Context) { GetWeather(c, store) }, "/api/weather")

	var zones []types.WeatherReading
	require.NoError(t, json.Unmarshal(body["zones"], &zones))
	require.Len(t, zones, 1)
	assert.Equal(t, types.FreshCached, zones[0].Status)
}

func TestGetStatsAggregates(t *testing.T) {
	store := db.NewMemoryStore()
	_, body := doGet(t, func(c *gin.Context) { GetStats(c, store) }, "/api/stats")

	var heads int
	require.NoError(t, json.Unmarshal(body["total_cattle"], &heads))
	want := 0
	for _, ref := range staticdata.HerdRefs {
		want += ref.Heads
	}
	assert.Equal(t, want, heads)

	var herdCount int
	require.NoError(t, json.Unmarshal(body["total_herds"], &herdCount))
	assert.Equal(t, len(staticdata.HerdRefs), herdCount)

	// Reference fallback rows: herds with 3 or fewer water days.
	var pressure int
	require.NoError(t, json.Unmarshal(body["high_pressure_herds"], &pressure))
	wantPressure := 0
	for _, ref := range staticdata.HerdRefs {
		if ref.WaterDays <= 3 {
			wantPressure++
		}
	}
	assert.Equal(t, wantPressure, pressure)
}

func TestStaticEndpoints(t *testing.T) {
	for _, tc := range []struct {
		path    string
		handler gin.HandlerFunc
		key     string
		count   int
	}{
		{"/api/water-sources", GetWaterSources, "sources", len(staticdata.WaterSources)},
		{"/api/grazing-regions", GetGrazingRegions, "regions", len(staticdata.GrazingRegions)},
		{"/api/migration-corridors", GetMigrationCorridors, "corridors", len(staticdata.MigrationCorridors)},
		{"/api/ndvi-zones", GetNDVIZones, "zones", len(staticdata.NDVIZones)},
		{"/api/historical-conflicts", GetHistoricalConflicts, "conflicts", len(staticdata.HistoricalConflicts)},
	} {
		w, body := doGet(t, tc.handler, tc.path)
		assert.Equal(t, http.StatusOK, w.Code, tc.path)

		var count int
		require.NoError(t, json.Unmarshal(body["count"], &count), tc.path)
		assert.Equal(t, tc.count, count, tc.path)

		var status string
		require.NoError(t, json.Unmarshal(body["data_status"], &status), tc.path)
		assert.Equal(t, string(types.FreshStatic), status, tc.path)
	}
}

func TestPostAnalysisRejectsMissingQuery(t *testing.T) {
	r := gin.New()
	r.POST("/api/analyze", func(c *gin.Context) { PostAnalysis(c, nil) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWorstFreshness(t *testing.T) {
	mk := func(statuses ...types.Freshness) []types.Herd {
		hs := make([]types.Herd, len(statuses))
		for i, s := range statuses {
			hs[i] = types.Herd{DataStatus: s}
		}
		return hs
	}

	assert.Equal(t, types.FreshLive, worstFreshness(mk(types.FreshLive, types.FreshLive)))
	assert.Equal(t, types.FreshCached, worstFreshness(mk(types.FreshLive, types.FreshCached)))
	assert.Equal(t, types.FreshEstimated, worstFreshness(mk(types.FreshCached, types.FreshEstimated)))
	assert.Equal(t, types.FreshHistorical, worstFreshness(mk(types.FreshEstimated, types.FreshHistorical)))
	assert.Equal(t, types.FreshLive, worstFreshness(nil))
}

func TestEffectiveStatus(t *testing.T) {
	now := time.Now()
	assert.Equal(t, types.FreshLive, effectiveStatus(types.FreshLive, now))
	assert.Equal(t, types.FreshCached, effectiveStatus(types.FreshLive, now.Add(-11*time.Minute)))
	assert.Equal(t, types.FreshEstimated, effectiveStatus(types.FreshEstimated, now.Add(-time.Hour)))
}
