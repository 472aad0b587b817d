package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"docuextract/internal/domain"
	"docuextract/internal/export"
	"docuextract/internal/present"
	"docuextract/internal/service"
)

// ExtractionHandler handles document extraction endpoints.
type ExtractionHandler struct {
	extractionService service.ExtractionService
	logger            *zap.Logger
}

// NewExtractionHandler creates a new ExtractionHandler.
func NewExtractionHandler(extractionService service.ExtractionService, logger *zap.Logger) *ExtractionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExtractionHandler{extractionService: extractionService, logger: logger}
}

// Create handles POST /api/v1/extractions
// @Summary Extract content from a document
// @Description Upload a document (TXT, MD, PNG, JPG, WEBP, PDF, max 10MB) and receive AI-extracted content in the chosen format
// @Tags extractions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document to extract from"
// @Param format formData string false "Output format: SUMMARY, JSON_EXTRACT or KEY_VALUE_PAIRS" default(SUMMARY)
// @Param instructions formData string false "Optional custom instructions"
// @Param export formData string false "Return a file instead of JSON: csv or xlsx"
// @Success 200 {object} Response{data=ExtractionResponse} "Extraction completed"
// @Failure 400 {object} ErrorResponseBody "Missing file, bad format, or unreadable file"
// @Failure 409 {object} ErrorResponseBody "Another extraction is in progress"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 415 {object} ErrorResponseBody "Unsupported file type"
// @Failure 502 {object} ErrorResponseBody "Generation API request failed"
// @Failure 503 {object} ErrorResponseBody "API key not configured"
// @Security BearerAuth
// @Router /extractions [post]
func (h *ExtractionHandler) Create(c *gin.Context) {
	var exportKind export.Kind
	if raw := c.PostForm("export"); raw != "" {
		kind, err := export.ParseKind(raw)
		if err != nil {
			HandleError(c, h.logger, err)
			return
		}
		exportKind = kind
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		HandleError(c, h.logger, domain.ErrMissingFile)
		return
	}
	defer func() { _ = file.Close() }()

	input := service.ExtractInput{
		FileName:     header.Filename,
		MediaType:    header.Header.Get("Content-Type"),
		Size:         header.Size,
		Body:         file,
		FormatID:     domain.FormatID(c.PostForm("format")),
		Instructions: c.PostForm("instructions"),
	}

	outcome, err := h.extractionService.Extract(c.Request.Context(), input)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}

	if exportKind != "" {
		var buf bytes.Buffer
		if err := export.Write(&buf, exportKind, outcome); err != nil {
			HandleError(c, h.logger, fmt.Errorf("exporting outcome: %w", err))
			return
		}
		filename := export.BuildFilename(header.Filename, outcome.Format, string(exportKind))
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		c.Data(http.StatusOK, exportKind.ContentType(), buf.Bytes())
		return
	}

	RespondOK(c, NewExtractionResponse(outcome))
}

// Status handles GET /api/v1/extractions/status
// @Summary Extraction lifecycle status
// @Description Report whether an extraction is running, and how the last one ended
// @Tags extractions
// @Produce json
// @Success 200 {object} Response{data=service.Status} "Lifecycle status"
// @Security BearerAuth
// @Router /extractions/status [get]
func (h *ExtractionHandler) Status(c *gin.Context) {
	RespondOK(c, h.extractionService.Status())
}

// NewExtractionResponse builds the API view of an outcome.
func NewExtractionResponse(o *domain.ExtractionOutcome) ExtractionResponse {
	return ExtractionResponse{
		ID:          o.ID.String(),
		Format:      o.Format,
		ContentKind: o.ContentKind,
		Content:     o.Content,
		RawText:     o.RawText,
		Rendered:    present.Render(o),
		CopyText:    present.CopyText(o),
		Model:       o.Model,
		CompletedAt: o.CompletedAt,
	}
}
