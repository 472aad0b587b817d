package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"docuextract/internal/domain"
	"docuextract/internal/export"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	var remoteErr *domain.RemoteError
	switch {
	case errors.Is(err, domain.ErrTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "File is too large. Maximum size is 10MB."
	case errors.Is(err, domain.ErrUnsupportedType):
		return http.StatusUnsupportedMediaType, "UNSUPPORTED_FILE_TYPE", "Unsupported file type. Please upload a text, image, or PDF file."
	case errors.Is(err, domain.ErrFileReadFailure):
		return http.StatusBadRequest, "FILE_READ_FAILED", err.Error()
	case errors.Is(err, domain.ErrMissingFile):
		return http.StatusBadRequest, "MISSING_FILE", "Please select a file first."
	case errors.Is(err, domain.ErrFormatNotFound):
		return http.StatusBadRequest, "FORMAT_NOT_FOUND", "Invalid output format selected."
	case errors.Is(err, export.ErrUnknownKind):
		return http.StatusBadRequest, "UNKNOWN_EXPORT_FORMAT", export.ErrUnknownKind.Error()
	case errors.Is(err, domain.ErrMissingCredential):
		return http.StatusServiceUnavailable, "MISSING_CREDENTIAL", "API Key is not configured. Please set the API key environment variable."
	case errors.Is(err, domain.ErrExtractionInProgress):
		return http.StatusConflict, "EXTRACTION_IN_PROGRESS", "An extraction is already in progress; wait for it to finish."
	case errors.As(err, &remoteErr):
		return http.StatusBadGateway, "REMOTE_ERROR", remoteErr.Error()
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, logger *zap.Logger, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 && logger != nil {
		requestID, _ := c.Get("request_id")
		logger.Error("handler.internal_error",
			zap.Any("request_id", requestID),
			zap.Int("status", status),
			zap.Error(err),
		)
	}
	RespondError(c, status, code, msg)
}
