package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-bovine/db"
	"go-bovine/types"
)

func historyLimit(c *gin.Context) int {
	limit := 30
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	return limit
}

// GetWeatherHistory returns archived central-region snapshots, newest
// first.
func GetWeatherHistory(c *gin.Context, store db.SignalStore) {
	limit := historyLimit(c)
	snaps, err := store.ListWeatherHistory(c.Request.Context(), limit)
	if err != nil || snaps == nil {
		snaps = []types.WeatherSnapshot{}
	}
	c.JSON(http.StatusOK, gin.H{
		"snapshots": snaps,
		"count":     len(snaps),
	})
}

// GetAnalysisHistory returns past analyst answers, newest first.
func GetAnalysisHistory(c *gin.Context, store db.SignalStore) {
	limit := historyLimit(c)
	records, err := store.ListAnalysisHistory(c.Request.Context(), limit)
	if err != nil || records == nil {
		records = []types.AnalysisRecord{}
	}
	c.JSON(http.StatusOK, gin.H{
		"analyses": records,
		"count":    len(records),
	})
}
