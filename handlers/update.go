package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-bovine/scheduler"
)

// TriggerUpdate kicks off a refresh cycle in the background and returns
// immediately. If a cycle is already running the trigger is dropped.
func TriggerUpdate(c *gin.Context, sched *scheduler.Scheduler) {
	// The cycle outlives the request, so it gets its own context.
	sched.TriggerAsync(context.Background())
	c.JSON(http.StatusOK, gin.H{
		"message": "refresh triggered",
		"status":  sched.Status(),
	})
}

// GetUpdateStatus reports the batch cycle state.
func GetUpdateStatus(c *gin.Context, sched *scheduler.Scheduler) {
	c.JSON(http.StatusOK, sched.Status())
}
