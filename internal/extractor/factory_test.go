package extractor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"docuextract/internal/config"
	"docuextract/internal/domain"
	"docuextract/internal/extractor"
	_ "docuextract/internal/extractor/gemini"
	"docuextract/internal/port"
)

type stubExtractor struct{ text string }

func (s stubExtractor) Send(context.Context, domain.ExtractionRequest) (string, error) {
	return s.text, nil
}

func (s stubExtractor) CredentialConfigured() bool { return true }

func TestRegisterProvider_AndNew(t *testing.T) {
	extractor.RegisterProvider("test-provider", func(cfg *config.ExtractorConfig, logger *zap.Logger) (port.Extractor, error) {
		return stubExtractor{text: cfg.TextModel}, nil
	})

	e, err := extractor.New(&config.ExtractorConfig{Provider: "test-provider", TextModel: "m"}, zap.NewNop())
	require.NoError(t, err)

	text, err := e.Send(context.Background(), domain.ExtractionRequest{})
	require.NoError(t, err)
	assert.Equal(t, "m", text)
}

func TestNew_GeminiRegistered(t *testing.T) {
	assert.Contains(t, extractor.Providers(), "gemini")

	e, err := extractor.New(&config.ExtractorConfig{Provider: "gemini", APIKeyEnv: "DOCUEXTRACT_FACTORY_TEST_KEY"}, zap.NewNop())
	require.NoError(t, err)

	t.Setenv("DOCUEXTRACT_FACTORY_TEST_KEY", "")
	assert.False(t, e.CredentialConfigured())
	t.Setenv("DOCUEXTRACT_FACTORY_TEST_KEY", "k")
	assert.True(t, e.CredentialConfigured())
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := extractor.New(&config.ExtractorConfig{Provider: "nope"}, zap.NewNop())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown extractor provider")
}
