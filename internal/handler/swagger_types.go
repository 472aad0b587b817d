package handler

import (
	"time"

	"docuextract/internal/domain"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// Response is the generic success envelope.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data"`
}

// ErrorResponseBody is the error envelope.
type ErrorResponseBody struct {
	Success bool     `json:"success" example:"false"`
	Error   APIError `json:"error"`
}

// FormatsResponse lists the catalog and upload limits.
type FormatsResponse struct {
	Formats           []domain.OutputFormatSpec `json:"formats"`
	DefaultFormat     domain.FormatID           `json:"default_format" example:"SUMMARY"`
	AllowedMediaTypes []string                  `json:"allowed_media_types"`
	MaxFileSizeBytes  int64                     `json:"max_file_size_bytes" example:"10485760"`
}

// ExtractionResponse is the API view of a completed extraction. Content is a
// string, a JSON value, or {"error", "rawResponse"} depending on content_kind.
type ExtractionResponse struct {
	ID          string                   `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Format      domain.FormatID          `json:"format" example:"JSON_EXTRACT"`
	ContentKind domain.ContentKind       `json:"content_kind" example:"structured"`
	Content     domain.NormalizedContent `json:"content" swaggertype:"object"`
	RawText     string                   `json:"raw_text,omitempty"`
	Rendered    string                   `json:"rendered"`
	CopyText    string                   `json:"copy_text"`
	Model       string                   `json:"model" example:"gemini-2.5-flash-preview-04-17"`
	CompletedAt time.Time                `json:"completed_at"`
}
