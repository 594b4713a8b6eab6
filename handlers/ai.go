package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-bovine/ai"
)

type analysisRequest struct {
	Query string `json:"query" binding:"required"`
}

// PostAnalysis runs the analyst over the current signal snapshot. This
// is the one endpoint that surfaces upstream failure to the caller.
func PostAnalysis(c *gin.Context, analyst *ai.Analyst) {
	var req analysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	answer, err := analyst.Analyze(c.Request.Context(), req.Query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":     req.Query,
		"analysis":  answer,
		"timestamp": time.Now().UTC(),
	})
}
