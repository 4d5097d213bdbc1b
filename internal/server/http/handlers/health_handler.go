package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports process and storage health.
type HealthHandler struct {
	facade HealthFacade
}

// NewHealthHandler creates HealthHandler instance.
func NewHealthHandler(facade HealthFacade) *HealthHandler {
	return &HealthHandler{facade: facade}
}

// Live handles GET /health.
func (h *HealthHandler) Live(c *gin.Context) {
	c.Status(http.StatusOK)
}

// Ready handles GET /ready. Fails when the database is unreachable.
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.facade.HealthCheck(c.Request.Context()); err != nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	c.Status(http.StatusOK)
}
