package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"apicatalog/internal/domain"
	"apicatalog/internal/port"
)

// readinessProbeID is looked up to check the repository answers; absence is fine.
const readinessProbeID = "readiness-probe"

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	repo port.ApiRepository
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(repo port.ApiRepository) *HealthHandler {
	return &HealthHandler{repo: repo}
}

// Liveness handles GET /healthz
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "Server is alive"
// @Router /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
// @Summary Readiness check
// @Description Checks that the API repository answers lookups
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "Ready"
// @Failure 503 {object} map[string]string "Repository not reachable"
// @Router /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "repository not reachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *HealthHandler) ping(ctx context.Context) error {
	if _, err := h.repo.FindByID(ctx, readinessProbeID); err != nil && !errors.Is(err, domain.ErrApiNotFound) {
		return err
	}
	return nil
}
