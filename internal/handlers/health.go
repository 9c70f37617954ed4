package handlers

import (
	"net/http"

	"second_brain/internal/service"

	"github.com/gin-gonic/gin"
)

// health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  service.HealthReport
// @Failure      503  {object}  service.HealthReport
// @Router       /api/v1/health [get]
func (h *Handler) health(c *gin.Context) {
	if h.services.Health == nil {
		c.JSON(http.StatusOK, gin.H{"status": service.StatusHealthy})
		return
	}

	report := h.services.Check(c.Request.Context())
	code := http.StatusOK
	if report.Status != service.StatusHealthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, report)
}
