package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController reports process liveness and store connectivity.
type HealthController struct {
	ping func(ctx context.Context) error // nil when no store is configured
}

func NewHealthController(ping func(ctx context.Context) error) *HealthController {
	return &HealthController{ping: ping}
}

// Health handles GET /api/health.
func (hc *HealthController) Health(c *gin.Context) {
	database := "disconnected"
	if hc.ping != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := hc.ping(pingCtx); err == nil {
			database = "connected"
		} else {
			database = "error"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"status":   "ok",
		"database": database,
	})
}
