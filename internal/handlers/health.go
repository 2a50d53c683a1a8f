package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type healthResponse struct {
	Status      string `json:"status"`
	Storage     string `json:"storage"`
	Sessions    string `json:"sessions"`
	Environment string `json:"environment"`
}

func (h HandlerSet) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	storage := "memory"
	if h.db != nil {
		storage = "postgres"
		if err := h.db.Ping(ctx); err != nil {
			storage = "error"
			h.log.Error().Err(err).Msg("database ping failed")
		}
	}

	sessions := "memory"
	if h.cache != nil {
		sessions = "redis"
		if err := h.cache.Ping(ctx).Err(); err != nil {
			sessions = "error"
			h.log.Error().Err(err).Msg("redis ping failed")
		}
	}

	c.JSON(http.StatusOK, healthResponse{
		Status:      "ok",
		Storage:     storage,
		Sessions:    sessions,
		Environment: h.cfg.Environment,
	})
}
