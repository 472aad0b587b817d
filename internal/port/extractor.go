package port

import (
	"context"

	"docuextract/internal/domain"
)

// Extractor sends a shaped extraction request to a generation backend and returns
// the response's primary text verbatim.
type Extractor interface {
	Send(ctx context.Context, req domain.ExtractionRequest) (string, error)
	// CredentialConfigured reports whether an API credential is currently present.
	CredentialConfigured() bool
}
