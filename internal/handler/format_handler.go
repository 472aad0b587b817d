package handler

import (
	"github.com/gin-gonic/gin"

	"docuextract/internal/catalog"
	"docuextract/internal/classifier"
	"docuextract/internal/domain"
)

// FormatHandler serves the output format catalog.
type FormatHandler struct{}

// NewFormatHandler creates a new FormatHandler.
func NewFormatHandler() *FormatHandler {
	return &FormatHandler{}
}

// List handles GET /api/v1/formats
// @Summary List output formats
// @Description List the supported output formats and the accepted upload types
// @Tags formats
// @Produce json
// @Success 200 {object} Response{data=FormatsResponse} "Output formats"
// @Security BearerAuth
// @Router /formats [get]
func (h *FormatHandler) List(c *gin.Context) {
	RespondOK(c, FormatsResponse{
		Formats:           catalog.All(),
		DefaultFormat:     catalog.DefaultFormat,
		AllowedMediaTypes: classifier.AllowedMediaTypes(),
		MaxFileSizeBytes:  domain.MaxFileSizeBytes,
	})
}
