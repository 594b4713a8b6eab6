package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-bovine/scheduler"
)

type sourceInfo struct {
	Name     string `json:"name"`
	Provider string `json:"provider"`
	Cadence  string `json:"cadence"`
	Outcome  string `json:"last_outcome,omitempty"`
}

var sourceCatalog = []sourceInfo{
	{Name: "weather", Provider: "Open-Meteo", Cadence: "10m"},
	{Name: "soil_moisture", Provider: "Open-Meteo", Cadence: "10m"},
	{Name: "rainfall", Provider: "Open-Meteo", Cadence: "10m"},
	{Name: "ndvi", Provider: "baseline+rainfall model", Cadence: "10m"},
	{Name: "fires", Provider: "NASA FIRMS", Cadence: "10m"},
	{Name: "conflict_events", Provider: "ACLED", Cadence: "10m"},
	{Name: "news", Provider: "GNews", Cadence: "10m"},
	{Name: "field_reports", Provider: "Bluesky", Cadence: "10m"},
}

// GetDataSources lists every upstream feed with its most recent
// fetch outcome.
func GetDataSources(c *gin.Context, sched *scheduler.Scheduler) {
	status := sched.Status()
	out := make([]sourceInfo, 0, len(sourceCatalog))
	for _, s := range sourceCatalog {
		s.Outcome = status.Outcomes[s.Name]
		out = append(out, s)
	}
	c.JSON(http.StatusOK, gin.H{
		"sources":     out,
		"count":       len(out),
		"last_update": status.LastUpdate,
		"next_update": status.NextUpdate,
	})
}
