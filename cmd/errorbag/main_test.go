package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"testing"

	"github.com/mavenreposs/component-error/errorbag"
	"github.com/mavenreposs/component-error/internal/config"
	"github.com/mavenreposs/component-error/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	bag, rejected := collect(
		[]string{"200=OK", "200=OK2", "0200=OK3", "300=SS3", "name=is required"},
		[]string{"200=42", "name=Hello"},
	)
	require.True(t, rejected.Empty())

	assert.Equal(t, []errorbag.Code{"200", "300", "name"}, bag.Codes())
	assert.Equal(t, []string{"OK", "OK2", "OK3"}, bag.MessagesFor("200"))

	data, ok := bag.Data()
	require.True(t, ok)
	assert.Equal(t, int64(42), data)

	data, ok = bag.DataFor("name")
	require.True(t, ok)
	assert.Equal(t, "Hello", data)

	_, ok = bag.DataFor("300")
	assert.False(t, ok)
}

func TestCollectRejectsEveryMalformedEntry(t *testing.T) {
	bag, rejected := collect([]string{"no-separator", "=empty", "400=ok"}, []string{"alsobad"})

	assert.Equal(t, []errorbag.Code{"400"}, bag.Codes())
	assert.Equal(t, []errorbag.Code{"malformed_entry", "empty_code"}, rejected.Codes())
	assert.Len(t, rejected.MessagesFor("malformed_entry"), 2)

	data, ok := rejected.DataFor("malformed_entry")
	require.True(t, ok)
	assert.Equal(t, "alsobad", data, "data keeps the last rejected entry")
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, int64(7), parseValue("7"))
	assert.Equal(t, 1.5, parseValue("1.5"))
	assert.Equal(t, true, parseValue("true"))
	assert.Equal(t, "Hello", parseValue("Hello"))
}

func TestExecute(t *testing.T) {
	t.Setenv("ERRORBAG_CONFIG", "")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no errors", []string{"--log-format", "json"}, 0},
		{"errors collected", []string{"--log-format", "json", "200=OK"}, 0},
		{"strict", []string{"--log-format", "json", "--strict", "200=OK"}, exitCollected},
		{"strict without errors", []string{"--log-format", "json", "--strict"}, 0},
		{"malformed argument", []string{"--log-format", "json", "oops"}, exitConfig},
		{"invalid log level", []string{"--log-format", "json", "--log-level", "loud"}, exitConfig},
		{"unknown flag", []string{"--nope"}, exitConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, execute(tt.args, io.Discard, io.Discard))
		})
	}
}

// entries decodes the JSON log lines written to buf
func entries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry), "line %q", scanner.Text())
		out = append(out, entry)
	}
	require.NoError(t, scanner.Err())
	return out
}

func levels(list []map[string]any) []any {
	out := make([]any, 0, len(list))
	for _, entry := range list {
		out = append(out, entry["level"])
	}
	return out
}

func TestExecuteJSONLevels(t *testing.T) {
	t.Setenv("ERRORBAG_CONFIG", "")

	tests := []struct {
		name string
		args []string
		want []any
	}{
		{"verbose", []string{"--log-format", "json", "--verbose"}, []any{"info"}},
		{"debug", []string{"--log-format", "json", "--debug"}, []any{"debug", "info"}},
		{"error level", []string{"--log-format", "json", "--log-level", "error"}, []any{}},
		{"default level", []string{"--log-format", "json", "200=OK"}, []any{"error"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			require.Equal(t, 0, execute(tt.args, &stdout, &stderr))

			assert.Equal(t, tt.want, levels(entries(t, &stdout)))
			assert.Empty(t, stderr.String())
		})
	}
}

func TestExecuteLogsConfigLoadFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.toml")

	var stdout, stderr bytes.Buffer
	assert.Equal(t, exitConfig, execute([]string{"--config", missing}, &stdout, &stderr))

	logged := entries(t, &stderr)
	require.Len(t, logged, 1)
	assert.Equal(t, "error", logged[0]["level"])
	assert.Equal(t, "read_config_failed", logged[0]["error_code"])
	assert.Equal(t, "failed to load configuration", logged[0]["message"])
	assert.Empty(t, stdout.String())
}

func TestExecuteLogsCommandLineErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, exitConfig, execute([]string{"--nope"}, &stdout, &stderr))

	logged := entries(t, &stderr)
	require.Len(t, logged, 1)
	assert.Equal(t, "invalid_argument", logged[0]["error_code"])
	assert.Contains(t, logged[0]["error_message"], "unknown flag: --nope")
	assert.Equal(t, []any{"invalid_argument"}, logged[0]["error_codes"])
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want logger.LogLevel
	}{
		{"debug wins", config.Config{Debug: true, Verbose: true, LogLevel: config.LogLevelError}, logger.DebugLevel},
		{"verbose", config.Config{Verbose: true, LogLevel: config.LogLevelError}, logger.InfoLevel},
		{"configured", config.Config{LogLevel: config.LogLevelError}, logger.ErrorLevel},
		{"unknown", config.Config{LogLevel: "loud"}, logger.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logLevel(&tt.cfg))
		})
	}
}
