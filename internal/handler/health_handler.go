package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"immodok/internal/port"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	objects port.ObjectSource
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(objects port.ObjectSource) *HealthHandler {
	return &HealthHandler{objects: objects}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz. A broken registry file degrades
// processing rather than failing it, so it is reported as a warning,
// not as unreadiness.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if _, err := h.objects.LoadObjects(c.Request.Context()); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"status":           "ok",
			"registry_warning": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
