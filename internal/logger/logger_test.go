package logger_test

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/mavenreposs/component-error/errorbag"
	"github.com/mavenreposs/component-error/internal/errors"
	"github.com/mavenreposs/component-error/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetLogLevel(logger.DebugLevel)
	t.Cleanup(func() { logger.SetLogLevel(logger.WarnLevel) })

	return &buf
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestErrorWithBag(t *testing.T) {
	buf := capture(t)

	b := errorbag.NewWith(errorbag.CodeOf(200), "OK")
	b.Add("200", "OK2")
	b.Add("300", "SS3")
	b.AddData(map[string]any{"name": "Hello"})

	logger.ErrorWithBag(b).Msg("request failed")
	entry := decode(t, buf)

	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "request failed", entry["message"])
	assert.Equal(t, "200", entry["error_code"])
	assert.Equal(t, "OK", entry["error_message"])
	assert.Equal(t, []any{"200", "300"}, entry["error_codes"])

	errs, ok := entry["errors"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{
		"messages": []any{"OK", "OK2"},
		"data":     map[string]any{"name": "Hello"},
	}, errs["200"])
	assert.Equal(t, map[string]any{"messages": []any{"SS3"}}, errs["300"])
}

func TestErrorWithEmptyBag(t *testing.T) {
	buf := capture(t)

	logger.ErrorWithBag(errorbag.New()).Send()
	entry := decode(t, buf)

	assert.Equal(t, "", entry["error_code"])
	assert.Equal(t, []any{}, entry["error_codes"])
	assert.Equal(t, map[string]any{}, entry["errors"])
}

func TestErrorWithCode(t *testing.T) {
	buf := capture(t)

	err := errors.New().Wrap(errors.ErrReadConfig, stderrors.New("no such file"))
	logger.ErrorWithCode(err).Msg("config")
	entry := decode(t, buf)

	assert.Equal(t, "read_config_failed", entry["error_code"])
	assert.Equal(t, "Failed to read configuration: no such file", entry["error_message"])
	assert.Equal(t, "no such file", entry["error"])
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t)
	logger.SetLogLevel(logger.ErrorLevel)

	logger.Default().Info().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Default().Error().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level logger.LogLevel
		ok    bool
	}{
		{"debug", logger.DebugLevel, true},
		{"info", logger.InfoLevel, true},
		{"warning", logger.WarnLevel, true},
		{"error", logger.ErrorLevel, true},
		{"loud", logger.WarnLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, ok := logger.ParseLevel(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.level, level)
		})
	}
}
