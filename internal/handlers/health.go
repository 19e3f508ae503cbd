package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taskmaster/taskmaster-api/internal/apierrors"
	"github.com/taskmaster/taskmaster-api/internal/store"
)

type HealthHandler struct {
	store store.Gateway
}

func NewHealthHandler(gw store.Gateway) *HealthHandler {
	return &HealthHandler{store: gw}
}

// Root is the liveness banner.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "TaskMaster API",
	})
}

// Health probes store connectivity. Readiness fails with 503 when the store
// cannot be reached.
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.store.Ping(); err != nil {
		apierrors.ServiceUnavailable(c, "Service unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}
