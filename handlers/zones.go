package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-bovine/db"
	"go-bovine/herds"
	"go-bovine/risk"
	"go-bovine/staticdata"
	"go-bovine/types"
)

// GetConflictZones returns every zone with its live risk assessment,
// sorted by descending score.
func GetConflictZones(c *gin.Context, store db.SignalStore) {
	ctx := c.Request.Context()

	herdList := herds.Generate(ctx, store)

	weatherByZone := map[string]types.WeatherReading{}
	if readings, err := store.ListWeather(ctx); err == nil {
		for _, w := range readings {
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
		"zones":          assessed,
		"count":          len(assessed),
		"critical_count": critical,
		"high_count":     high,
		"last_updated":   time.Now().UTC(),
	})
}
