package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-bovine/staticdata"
	"go-bovine/types"
)

// The reference layers below change on survey timescales, not refresh
// cycles, so they are served straight from the compiled-in tables.

func GetWaterSources(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sources":     staticdata.WaterSources,
		"count":       len(staticdata.WaterSources),
		"data_status": types.FreshStatic,
	})
}

func GetGrazingRegions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"regions":     staticdata.GrazingRegions,
		"count":       len(staticdata.GrazingRegions),
		"data_status": types.FreshStatic,
	})
}

func GetMigrationCorridors(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"corridors":   staticdata.MigrationCorridors,
		"count":       len(staticdata.MigrationCorridors),
		"data_status": types.FreshStatic,
	})
}

func GetNDVIZones(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"zones":       staticdata.NDVIZones,
		"count":       len(staticdata.NDVIZones),
		"data_status": types.FreshStatic,
	})
}

func GetHistoricalConflicts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"conflicts":   staticdata.HistoricalConflicts,
		"count":       len(staticdata.HistoricalConflicts),
		"data_status": types.FreshStatic,
	})
}
