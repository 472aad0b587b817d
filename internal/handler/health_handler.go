package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docuextract/internal/service"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	extractionService service.ExtractionService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(extractionService service.ExtractionService) *HealthHandler {
	return &HealthHandler{extractionService: extractionService}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz. The service is not ready without an API credential.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if !h.extractionService.CredentialConfigured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":                "unavailable",
			"credential_configured": false,
			"error":                 "API key not configured",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "credential_configured": true})
}
