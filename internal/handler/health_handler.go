package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bloom/internal/port"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	gateway port.ModelGateway
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(gateway port.ModelGateway) *HealthHandler {
	return &HealthHandler{gateway: gateway}
}

// Root handles GET /
func (h *HealthHandler) Root(c *gin.Context) {
	RespondMessage(c, "bloom backend")
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz. It does not call the model; the API key is
// checked per request.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.gateway == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "model gateway not configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "model": h.gateway.Model()})
}
