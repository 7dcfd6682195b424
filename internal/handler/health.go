package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/abhishek622/entrystore/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

// Health pings the store
// GET /healthz
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := h.EntryRepo.Ping(ctx); err != nil {
		h.Logger.Warn("health: store unreachable", zap.Error(err))
		response.Unavailable(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
