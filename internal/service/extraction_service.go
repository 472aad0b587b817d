package service

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"docuextract/internal/catalog"
	"docuextract/internal/domain"
	"docuextract/internal/extraction"
	"docuextract/internal/port"
	"docuextract/internal/upload"
)

// ExtractInput is the DTO for one extraction submission.
type ExtractInput struct {
	FileName     string
	MediaType    string
	Size         int64
	Body         io.Reader
	FormatID     domain.FormatID
	Instructions string
}

// ExtractionService defines the extraction pipeline contract.
type ExtractionService interface {
	Extract(ctx context.Context, input ExtractInput) (*domain.ExtractionOutcome, error)
	Status() Status
	CredentialConfigured() bool
}

type extractionService struct {
	builder   *extraction.Builder
	extractor port.Extractor
	lifecycle *Lifecycle
	logger    *zap.Logger
}

// NewExtractionService creates a new ExtractionService implementation.
func NewExtractionService(builder *extraction.Builder, extractor port.Extractor, logger *zap.Logger) ExtractionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &extractionService{
		builder:   builder,
		extractor: extractor,
		lifecycle: NewLifecycle(),
		logger:    logger,
	}
}

// Extract runs classify, read, lookup, build, send and normalize as one guarded run.
// Validation and configuration errors return before the remote call. A malformed
// structured response is not an error: it comes back as a parse-failure outcome.
func (s *extractionService) Extract(ctx context.Context, input ExtractInput) (outcome *domain.ExtractionOutcome, err error) {
	if err := s.lifecycle.Begin(); err != nil {
		s.logger.Info("extraction.rejected", zap.Error(err))
		return nil, err
	}
	defer func() {
		if cErr := s.lifecycle.Complete(err); cErr != nil {
			s.logger.Error("extraction.lifecycle", zap.Error(cErr))
		}
	}()

	doc, err := upload.Read(upload.Input{
		FileName:  input.FileName,
		MediaType: input.MediaType,
		Size:      input.Size,
		Body:      input.Body,
	})
	if err != nil {
		s.logger.Info("extraction.validation_failed",
			zap.String("file", input.FileName),
			zap.String("media_type", input.MediaType),
			zap.Int64("size", input.Size),
			zap.Error(err),
		)
		return nil, err
	}

	if !s.extractor.CredentialConfigured() {
		return nil, domain.ErrMissingCredential
	}

	formatID := input.FormatID
	if strings.TrimSpace(string(formatID)) == "" {
		formatID = catalog.DefaultFormat
	}
	format, err := catalog.Lookup(formatID)
	if err != nil {
		return nil, err
	}

	req := s.builder.Build(doc, format, input.Instructions)

	if err := s.lifecycle.AwaitResponse(); err != nil {
		return nil, err
	}

	s.logger.Info("extraction.started",
		zap.String("file", doc.FileName),
		zap.String("category", string(doc.Category)),
		zap.String("format", string(format.ID)),
		zap.String("model", req.Model),
	)

	raw, err := s.extractor.Send(ctx, req)
	if err != nil {
		s.logger.Warn("extraction.remote_failed", zap.String("file", doc.FileName), zap.Error(err))
		return nil, err
	}

	normalized := extraction.Normalize(raw, format.RequiresStructuredOutput)
	if normalized.Content.Kind == domain.ContentParseFailure {
		s.logger.Warn("extraction.parse_failed",
			zap.String("file", doc.FileName),
			zap.Int("raw_bytes", len(raw)),
		)
	}

	outcome = &domain.ExtractionOutcome{
		ID:          uuid.New(),
		Format:      format.ID,
		Content:     normalized.Content,
		ContentKind: normalized.Content.Kind,
		RawText:     normalized.RawText,
		Model:       req.Model,
		CompletedAt: time.Now().UTC(),
	}

	s.logger.Info("extraction.completed",
		zap.String("id", outcome.ID.String()),
		zap.String("content_kind", string(outcome.ContentKind)),
	)
	return outcome, nil
}

func (s *extractionService) Status() Status {
	return s.lifecycle.Status()
}

func (s *extractionService) CredentialConfigured() bool {
	return s.extractor.CredentialConfigured()
}
