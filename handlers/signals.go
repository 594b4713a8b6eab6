package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"go-bovine/db"
	"go-bovine/staticdata"
	"go-bovine/types"
)

// A reading written as live degrades to cached once it is older than
// the refresh interval.
const liveWindow = 10 * time.Minute

func effectiveStatus(s types.Freshness, fetchedAt time.Time) types.Freshness {
	if s == types.FreshLive && time.Since(fetchedAt) > liveWindow {
		return types.FreshCached
	}
	return s
}

// worstFreshness picks the summary tag for a herd payload: the least
// fresh classification present.
func worstFreshness(herdList []types.Herd) types.Freshness {
	rank := map[types.Freshness]int{
		types.FreshLive:       0,
		types.FreshCached:     1,
		types.FreshEstimated:  2,
		types.FreshHistorical: 3,
		types.FreshStatic:     3,
	}
	worst := types.FreshLive
	for _, h := range herdList {
		if rank[h.DataStatus] > rank[worst] {
			worst = h.DataStatus
		}
	}
	return worst
}

// GetWeather returns the cached per-zone forecast windows.
func GetWeather(c *gin.Context, store db.SignalStore) {
	readings, err := store.ListWeather(c.Request.Context())
	if err != nil || len(readings) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"zones":       []types.WeatherReading{},
			"count":       0,
			"source":      "Open-Meteo",
			"data_status": types.FreshHistorical,
		})
		return
	}

	latest := readings[0].FetchedAt
	for i := range readings {
		readings[i].Status = effectiveStatus(readings[i].Status, readings[i].FetchedAt)
		if readings[i].FetchedAt.After(latest) {
			latest = readings[i].FetchedAt
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"zones":        readings,
		"count":        len(readings),
		"source":       "Open-Meteo",
		"data_status":  effectiveStatus(types.FreshLive, latest),
		"last_updated": latest,
	})
}

// getReadings serves one scalar signal collection, with a fallback row
// set for cold starts.
func getReadings(c *gin.Context, store db.SignalStore, signal string, fallback func() []types.Reading) {
	readings, err := store.ListReadings(c.Request.Context(), signal)
	if err != nil || len(readings) == 0 {
		rows := fallback()
		c.JSON(http.StatusOK, gin.H{
			"readings":    rows,
			"count":       len(rows),
			"data_status": types.FreshHistorical,
		})
		return
	}

	latest := readings[0].FetchedAt
	for i := range readings {
		readings[i].Status = effectiveStatus(readings[i].Status, readings[i].FetchedAt)
		if readings[i].FetchedAt.After(latest) {
			latest = readings[i].FetchedAt
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"readings":     readings,
		"count":        len(readings),
		"data_status":  readings[0].Status,
		"last_updated": latest,
	})
}

// GetNDVI returns vegetation readings, falling back to regional
// baselines before the first refresh.
func GetNDVI(c *gin.Context, store db.SignalStore) {
	getReadings(c, store, types.SignalNDVI, func() []types.Reading {
		rows := make([]types.Reading, 0, len(staticdata.GrazingRegions))
		for _, r := range staticdata.GrazingRegions {
			rows = append(rows, types.Reading{
				Key:    r.Name,
				Signal: types.SignalNDVI,
				Value:  r.NDVI,
				Unit:   "index",
				Source: "historical baseline",
				Status: types.FreshHistorical,
			})
		}
		return rows
	})
}

// GetRainfall returns 7-day precipitation accumulations per region.
func GetRainfall(c *gin.Context, store db.SignalStore) {
	getReadings(c, store, types.SignalRainfall, func() []types.Reading { return []types.Reading{} })
}

// GetSoilMoisture returns topsoil moisture readings per region.
func GetSoilMoisture(c *gin.Context, store db.SignalStore) {
	getReadings(c, store, types.SignalSoil, func() []types.Reading { return []types.Reading{} })
}

// GetFires returns the current fire hotspot window.
func GetFires(c *gin.Context, store db.SignalStore) {
	fires, err := store.ListFires(c.Request.Context())
	if err != nil {
		fires = nil
	}
	if fires == nil {
		fires = []types.FireHotspot{}
	}
	c.JSON(http.StatusOK, gin.H{
		"hotspots":    fires,
		"count":       len(fires),
		"source":      "NASA FIRMS",
		"data_status": types.FreshCached,
	})
}

// GetConflictEvents returns the current conflict event window.
func GetConflictEvents(c *gin.Context, store db.SignalStore) {
	events, err := store.ListConflictEvents(c.Request.Context())
	if err != nil || events == nil {
		events = []types.ConflictEvent{}
	}
	c.JSON(http.StatusOK, gin.H{
		"events":      events,
		"count":       len(events),
		"source":      "ACLED",
		"data_status": types.FreshCached,
	})
}

// GetNews returns cached articles, or the curated set on a cold start.
func GetNews(c *gin.Context, store db.SignalStore) {
	items, err := store.ListNews(c.Request.Context())
	status := types.FreshCached
	if err != nil || len(items) == 0 {
		items = append([]types.NewsItem(nil), staticdata.CuratedNews...)
		for i := range items {
			items[i].ID = uuid.NewString()
		}
		status = types.FreshStatic
	}
	c.JSON(http.StatusOK, gin.H{
		"articles":     items,
		"count":        len(items),
		"data_status":  status,
		"last_updated": time.Now().UTC(),
	})
}

// GetFieldReports returns the current social report window.
func GetFieldReports(c *gin.Context, store db.SignalStore) {
	reports, err := store.ListReports(c.Request.Context())
	if err != nil || reports == nil {
		reports = []types.FieldReport{}
	}
	c.JSON(http.StatusOK, gin.H{
		"reports":     reports,
		"count":       len(reports),
		"source":      "Bluesky",
		"data_status": types.FreshCached,
	})
}
