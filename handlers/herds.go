package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-bovine/db"
	"go-bovine/herds"
)

// GetHerds returns the current herd estimates generated from the signal
// cache.
func GetHerds(c *gin.Context, store db.SignalStore) {
	herdList := herds.Generate(c.Request.Context(), store)

	status := worstFreshness(herdList)

	c.JSON(http.StatusOK, gin.H{
		"herds":        herdList,
		"count":        len(herdList),
		"methodology":  herds.MethodologyNote,
		"data_status":  status,
		"last_updated": time.Now().UTC(),
	})
}
