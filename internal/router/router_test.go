package router_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"docuextract/internal/config"
	"docuextract/internal/extraction"
	"docuextract/internal/handler"
	"docuextract/internal/router"
	"docuextract/internal/service"
	"docuextract/mocks"
)

func setup(t *testing.T, token string, ext *mocks.MockExtractor) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		Auth: config.AuthConfig{Token: token},
	}
	svc := service.NewExtractionService(extraction.NewBuilder("", ""), ext, zap.NewNop())
	return router.Setup(cfg, zap.NewNop(),
		handler.NewExtractionHandler(svc, zap.NewNop()),
		handler.NewFormatHandler(),
		handler.NewHealthHandler(svc))
}

func TestRouter_Healthz(t *testing.T) {
	r := setup(t, "", new(mocks.MockExtractor))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_APIRequiresToken(t *testing.T) {
	r := setup(t, "s3cret", new(mocks.MockExtractor))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/formats", http.NoBody)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/v1/formats", http.NoBody)
	req.Header.Set("Authorization", "Bearer s3cret")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_ExtractionEndToEnd(t *testing.T) {
	ext := new(mocks.MockExtractor)
	ext.On("CredentialConfigured").Return(true)
	ext.On("Send", mock.Anything, mock.Anything).Return("```json\n{\"name\":\"Jane\"}\n```", nil)
	r := setup(t, "", ext)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "card.txt")
	require.NoError(t, err)
	_, _ = part.Write([]byte("Name: Jane"))
	require.NoError(t, writer.WriteField("format", "JSON_EXTRACT"))
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/extractions", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]any)
	assert.Equal(t, "structured", data["content_kind"])
	assert.Equal(t, map[string]any{"name": "Jane"}, data["content"])

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/v1/extractions/status", http.NoBody)
	r.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), `"state":"done"`)
}
