package handler

import (
	"net/http"
	"time"

	"wolf-ai/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StatsHandler interface {
	GetStats(c *gin.Context)
	HealthCheck(c *gin.Context)
}

type statsHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewStatsHandler(st *store.Store, logger *zap.Logger) StatsHandler {
	return &statsHandler{store: st, logger: logger}
}

// GetStats handles GET /api/stats
func (h *statsHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Stats())
}

// HealthCheck handles GET /api/health
func (h *statsHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
