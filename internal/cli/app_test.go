package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	urfave "github.com/urfave/cli/v2"
	"github.com/xuri/excelize/v2"

	"docuextract/internal/cli"
	"docuextract/internal/domain"
	"docuextract/internal/port"
	"docuextract/mocks"
)

func newTestApp(ext port.Extractor) (*urfave.App, *bytes.Buffer, *bytes.Buffer) {
	app := cli.NewAppWithExtractor(ext)
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	app.Writer = stdout
	app.ErrWriter = stderr
	app.ExitErrHandler = func(*urfave.Context, error) {}
	return app, stdout, stderr
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFormats(t *testing.T) {
	app, stdout, _ := newTestApp(nil)

	require.NoError(t, app.Run([]string{"extract", "formats"}))

	out := stdout.String()
	assert.Contains(t, out, "SUMMARY")
	assert.Contains(t, out, "JSON_EXTRACT")
	assert.Contains(t, out, "KEY_VALUE_PAIRS")
	assert.Contains(t, out, "application/pdf")
}

func TestRun_PrintsRendered(t *testing.T) {
	t.Setenv("DOCUEXTRACT_LOG_LEVEL", "error")
	ext := new(mocks.MockExtractor)
	ext.On("CredentialConfigured").Return(true)
	ext.On("Send", mock.Anything, mock.MatchedBy(func(req domain.ExtractionRequest) bool {
		return req.RequiresStructuredOutput
	})).Return("```json\n{\"a\":1}\n```", nil)

	app, stdout, _ := newTestApp(ext)
	path := writeTemp(t, "in.txt", "a is one")

	require.NoError(t, app.Run([]string{"extract", "run", "--file", path, "--format", "json_extract"}))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", stdout.String())
}

func TestRun_CopyPrintsRaw(t *testing.T) {
	t.Setenv("DOCUEXTRACT_LOG_LEVEL", "error")
	ext := new(mocks.MockExtractor)
	ext.On("CredentialConfigured").Return(true)
	ext.On("Send", mock.Anything, mock.Anything).Return("```json\n{\"a\":1}\n```", nil)

	app, stdout, _ := newTestApp(ext)
	path := writeTemp(t, "in.txt", "a is one")

	require.NoError(t, app.Run([]string{"extract", "run", "--file", path, "--format", "JSON_EXTRACT", "--copy"}))
	assert.Equal(t, "```json\n{\"a\":1}\n```\n", stdout.String())
}

func TestRun_ExportXLSX(t *testing.T) {
	t.Setenv("DOCUEXTRACT_LOG_LEVEL", "error")
	ext := new(mocks.MockExtractor)
	ext.On("CredentialConfigured").Return(true)
	ext.On("Send", mock.Anything, mock.Anything).Return("Name: Jane\nCity: Oslo", nil)

	app, _, stderr := newTestApp(ext)
	path := writeTemp(t, "card.txt", "Jane from Oslo")
	out := filepath.Join(t.TempDir(), "card.xlsx")

	require.NoError(t, app.Run([]string{"extract", "run", "-f", path, "--format", "KEY_VALUE_PAIRS", "--export", "xlsx", "--out", out}))
	assert.Contains(t, stderr.String(), out)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows("Extraction")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Field", "Value"}, {"Name", "Jane"}, {"City", "Oslo"}}, rows)
}

func TestRun_UnsupportedFile(t *testing.T) {
	t.Setenv("DOCUEXTRACT_LOG_LEVEL", "error")
	ext := new(mocks.MockExtractor)
	app, _, _ := newTestApp(ext)
	path := writeTemp(t, "archive.zip", "PK")

	err := app.Run([]string{"extract", "run", "--file", path})
	require.Error(t, err)

	exitErr, ok := err.(urfave.ExitCoder)
	require.True(t, ok)
	assert.Equal(t, 2, exitErr.ExitCode())
	ext.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestRun_RemoteFailureExitCode(t *testing.T) {
	t.Setenv("DOCUEXTRACT_LOG_LEVEL", "error")
	ext := new(mocks.MockExtractor)
	ext.On("CredentialConfigured").Return(true)
	ext.On("Send", mock.Anything, mock.Anything).Return("", domain.NewRemoteError(503, context.DeadlineExceeded))

	app, _, _ := newTestApp(ext)
	path := writeTemp(t, "in.txt", "x")

	err := app.Run([]string{"extract", "run", "--file", path})
	exitErr, ok := err.(urfave.ExitCoder)
	require.True(t, ok)
	assert.Equal(t, 1, exitErr.ExitCode())
}

func TestRun_UnknownExport(t *testing.T) {
	app, _, _ := newTestApp(new(mocks.MockExtractor))
	path := writeTemp(t, "in.txt", "x")

	err := app.Run([]string{"extract", "run", "--file", path, "--export", "pdf"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown export format")
}
