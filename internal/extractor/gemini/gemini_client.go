package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"docuextract/internal/config"
	"docuextract/internal/domain"
	"docuextract/internal/extractor"
	"docuextract/internal/port"
)

const (
	apiBaseURL      = "https://generativelanguage.googleapis.com/v1beta/models"
	maxResponseSize = 50 * 1024 * 1024
)

// ProviderName is the extractor.provider value selecting this client.
const ProviderName = "gemini"

func init() {
	extractor.RegisterProvider(ProviderName, func(cfg *config.ExtractorConfig, logger *zap.Logger) (port.Extractor, error) {
		return NewClient(cfg, logger), nil
	})
}

// KeySource yields the API key. It is called on every Send so the credential is
// read from process configuration at call time.
type KeySource func() string

// EnvKeySource reads the first non-empty variable among names.
func EnvKeySource(names ...string) KeySource {
	return func() string {
		for _, name := range names {
			if v := strings.TrimSpace(os.Getenv(name)); v != "" {
				return v
			}
		}
		return ""
	}
}

// StaticKeySource always returns key.
func StaticKeySource(key string) KeySource {
	return func() string { return key }
}

// Client implements port.Extractor using the Gemini generateContent API.
type Client struct {
	keys    KeySource
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient creates a Gemini client from config. The key is looked up in the
// environment variable named by cfg.APIKeyEnv on every call.
func NewClient(cfg *config.ExtractorConfig, logger *zap.Logger) *Client {
	return NewClientWithKeySource(cfg, EnvKeySource(cfg.APIKeyEnv), logger)
}

// NewClientWithKeySource creates a client with an explicit key source (for testing).
func NewClientWithKeySource(cfg *config.ExtractorConfig, keys KeySource, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	baseURL := strings.TrimRight(cfg.Endpoint, "/")
	if baseURL == "" {
		baseURL = apiBaseURL
	}
	// No timeout unless configured; cancellation comes from the caller's context.
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	return &Client{
		keys:    keys,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// CredentialConfigured reports whether the key source currently yields a key.
func (c *Client) CredentialConfigured() bool {
	return c.keys() != ""
}

// Send performs one generateContent call and returns the first candidate's text.
func (c *Client) Send(ctx context.Context, req domain.ExtractionRequest) (string, error) {
	apiKey := c.keys()
	if apiKey == "" {
		return "", domain.ErrMissingCredential
	}

	bodyBytes, err := json.Marshal(toGeminiRequest(req))
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s:generateContent", c.baseURL, req.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", apiKey)

	start := time.Now()
	c.logger.Debug("gemini.request",
		zap.String("model", req.Model),
		zap.String("category", string(req.Category)),
		zap.Bool("structured", req.RequiresStructuredOutput),
		zap.Int("bytes", len(bodyBytes)),
	)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		c.logger.Warn("gemini.send_error", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return "", domain.NewRemoteError(0, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", domain.NewRemoteError(resp.StatusCode, fmt.Errorf("reading response: %w", err))
	}

	c.logger.Debug("gemini.response",
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(respBody)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		return "", domain.NewRemoteError(resp.StatusCode, apiError(resp.StatusCode, respBody))
	}

	text, err := parseResponse(respBody)
	if err != nil {
		return "", domain.NewRemoteError(resp.StatusCode, err)
	}
	return text, nil
}

type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig *geminiGenConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
	Text       string            `json:"text,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiGenConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

func toGeminiRequest(req domain.ExtractionRequest) geminiRequest {
	parts := make([]geminiPart, 0, len(req.Segments))
	for _, seg := range req.Segments {
		if seg.InlineData != nil {
			parts = append(parts, geminiPart{InlineData: &geminiInlineData{
				MimeType: seg.InlineData.MediaType,
				Data:     seg.InlineData.Data,
			}})
			continue
		}
		parts = append(parts, geminiPart{Text: seg.Text})
	}

	out := geminiRequest{Contents: []geminiContent{{Role: "user", Parts: parts}}}
	if req.ResponseFormat == domain.ResponseFormatStructured {
		out.GenerationConfig = &geminiGenConfig{ResponseMimeType: "application/json"}
	}
	return out
}

// geminiResponse models the parts of the Gemini response we read.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
	Error *geminiError `json:"error,omitempty"`
}

type geminiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func apiError(status int, body []byte) error {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Error != nil && resp.Error.Message != "" {
		return fmt.Errorf("gemini API error (status %d, %s): %s", status, resp.Error.Status, resp.Error.Message)
	}
	return fmt.Errorf("gemini API error (status %d): %s", status, truncate(string(body), 500))
}

func parseResponse(body []byte) (string, error) {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("gemini API error [%d]: %s", resp.Error.Code, resp.Error.Message)
	}
	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("prompt blocked: %s", resp.PromptFeedback.BlockReason)
		}
		return "", errors.New("empty response from API: no candidates")
	}

	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", fmt.Errorf("empty response from API: no parts (finish reason %q)", resp.Candidates[0].FinishReason)
	}

	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
