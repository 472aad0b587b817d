package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTooLarge             = errors.New("file exceeds maximum allowed size")
	ErrUnsupportedType      = errors.New("unsupported file type")
	ErrFileReadFailure      = errors.New("failed to read file")
	ErrMissingFile          = errors.New("no file provided")
	ErrMissingCredential    = errors.New("API key not found; set the API key environment variable")
	ErrFormatNotFound       = errors.New("output format not found")
	ErrExtractionInProgress = errors.New("an extraction is already in progress")
	ErrIllegalTransition    = errors.New("illegal extraction state transition")
)

// RemoteError reports a failure of the remote generation call. The underlying
// transport or service error is kept for errors.Is / errors.As.
type RemoteError struct {
	Message    string
	StatusCode int
	Err        error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("extraction request failed: %s", e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// NewRemoteError wraps err as a RemoteError. statusCode is 0 when no HTTP response was received.
func NewRemoteError(statusCode int, err error) *RemoteError {
	msg := "unknown error communicating with the generation API"
	if err != nil {
		msg = err.Error()
	}
	return &RemoteError{Message: msg, StatusCode: statusCode, Err: err}
}
