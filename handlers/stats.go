package handlers

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-bovine/db"
	"go-bovine/herds"
	"go-bovine/risk"
	"go-bovine/staticdata"
	"go-bovine/types"
)

// A herd this close to running out of water access counts as
// high-pressure.
const pressureWaterDays = 3

// GetStats aggregates the headline dashboard numbers: cattle tracked,
// grazing condition averages, and zone counts by assessed level.
func GetStats(c *gin.Context, store db.SignalStore) {
	ctx := c.Request.Context()
	herdList := herds.Generate(ctx, store)

	totalCattle := 0
	totalNDVI := 0.0
	highPressure := 0
	for _, h := range herdList {
		totalCattle += h.Heads
		totalNDVI += h.NDVI
		if h.WaterDays <= pressureWaterDays {
			highPressure++
		}
	}
	avgNDVI := 0.0
	if len(herdList) > 0 {
		avgNDVI = totalNDVI / float64(len(herdList))
	}

	// Region-wide 7-day rainfall, averaged over cached region readings.
	rain7d := 0.0
	if readings, err := store.ListReadings(ctx, types.SignalRainfall); err == nil && len(readings) > 0 {
		for _, r := range readings {
			rain7d += r.Value
		}
		rain7d /= float64(len(readings))
	}

	weatherByZone := map[string]types.WeatherReading{}
	if ws, err := store.ListWeather(ctx); err == nil {
		for _, w := range ws {
			weatherByZone[w.Zone] = w
		}
	}
	assessed := risk.AssessAll(staticdata.ConflictZones, herdList, weatherByZone)

	critical, high := 0, 0
	for _, z := range assessed {
		switch z.RealTimeLevel {
		case types.RiskCritical:
			critical++
		case types.RiskHigh:
			high++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total_herds":             len(herdList),
		"total_cattle":            totalCattle,
		"avg_ndvi":                math.Round(avgNDVI*100) / 100,
		"rain_7day_mm":            math.Round(rain7d*10) / 10,
		"high_pressure_herds":     highPressure,
		"critical_conflict_zones": critical,
		"high_risk_zones":         high,
		"data_status":             worstFreshness(herdList),
		"last_updated":            time.Now().UTC(),
	})
}
