package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-bovine/ai"
	"go-bovine/db"
	"go-bovine/handlers"
	"go-bovine/scheduler"
)

func corsMiddleware(clientURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := "*"
		if clientURL != "" {
			origin = clientURL
		}
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func SetupRouter(store db.SignalStore, sched *scheduler.Scheduler, analyst *ai.Analyst, clientURL string) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware(clientURL))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "BOVINE conflict early warning API",
		})
	})

	// api routes
	api := r.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"message": "BOVINE cattle movement intelligence API",
				"status":  sched.Status(),
			})
		})
		api.GET("/herds", func(c *gin.Context) { handlers.GetHerds(c, store) })
		api.GET("/conflict-zones", func(c *gin.Context) { handlers.GetConflictZones(c, store) })
		api.GET("/stats", func(c *gin.Context) { handlers.GetStats(c, store) })

		api.GET("/weather", func(c *gin.Context) { handlers.GetWeather(c, store) })
		api.GET("/ndvi", func(c *gin.Context) { handlers.GetNDVI(c, store) })
		api.GET("/rainfall", func(c *gin.Context) { handlers.GetRainfall(c, store) })
		api.GET("/soil-moisture", func(c *gin.Context) { handlers.GetSoilMoisture(c, store) })
		api.GET("/fires", func(c *gin.Context) { handlers.GetFires(c, store) })
		api.GET("/conflict-events", func(c *gin.Context) { handlers.GetConflictEvents(c, store) })
		api.GET("/news", func(c *gin.Context) { handlers.GetNews(c, store) })
		api.GET("/field-reports", func(c *gin.Context) { handlers.GetFieldReports(c, store) })

		api.GET("/water-sources", handlers.GetWaterSources)
		api.GET("/grazing-regions", handlers.GetGrazingRegions)
		api.GET("/corridors", handlers.GetMigrationCorridors)
		api.GET("/ndvi-zones", handlers.GetNDVIZones)
		api.GET("/historical-conflicts", handlers.GetHistoricalConflicts)

		api.GET("/data-sources", func(c *gin.Context) { handlers.GetDataSources(c, sched) })
		api.POST("/trigger-update", func(c *gin.Context) { handlers.TriggerUpdate(c, sched) })
		api.GET("/update-status", func(c *gin.Context) { handlers.GetUpdateStatus(c, sched) })

		api.GET("/historical/weather", func(c *gin.Context) { handlers.GetWeatherHistory(c, store) })
		api.GET("/historical/analysis", func(c *gin.Context) { handlers.GetAnalysisHistory(c, store) })

		api.POST("/ai/analyze", func(c *gin.Context) { handlers.PostAnalysis(c, analyst) })
	}

	return r
}
