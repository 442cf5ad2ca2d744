package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCLILogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		t.Run(level, func(t *testing.T) {
			logger := NewCLILogger(level)
			require.NotNil(t, logger)
		})
	}
}

func TestCLIHandler_LevelColors(t *testing.T) {
	tests := []struct {
		name    string
		logFunc func(*slog.Logger)
		color   string
	}{
		{"info is green", func(l *slog.Logger) { l.Info("msg") }, colorGreen},
		{"warn is yellow", func(l *slog.Logger) { l.Warn("msg") }, colorYellow},
		{"error is red", func(l *slog.Logger) { l.Error("msg") }, colorRed},
		{"debug is gray", func(l *slog.Logger) { l.Debug("msg") }, colorGray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(NewCLIHandler(&buf, slog.LevelDebug))

			tt.logFunc(logger)

			output := buf.String()
			assert.Contains(t, output, "msg")
			assert.Contains(t, output, tt.color)
			assert.Contains(t, output, colorReset)
		})
	}
}

func TestCLIHandler_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewCLIHandler(&buf, slog.LevelInfo))

	logger.Debug("hidden")
	assert.Zero(t, buf.Len())

	logger.Info("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestCLIHandler_IncludesAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewCLIHandler(&buf, slog.LevelInfo))

	logger.Info("test message", "key1", "value1", "key2", "value2")

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "key1=value1")
	assert.Contains(t, output, "key2=value2")
}

func TestCLIHandler_WithAttrsAccumulates(t *testing.T) {
	var buf bytes.Buffer
	handler := NewCLIHandler(&buf, slog.LevelInfo)

	logger := slog.New(handler).With("handle", "style.maven")
	logger.Info("computed", "rows", 3)

	output := buf.String()
	assert.Contains(t, output, "handle=style.maven")
	assert.Contains(t, output, "rows=3")

	// Empty attr set returns the same handler.
	assert.Equal(t, handler, handler.WithAttrs(nil))
}

func TestCLIHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	handler := NewCLIHandler(&buf, slog.LevelInfo)

	logger := slog.New(handler).WithGroup("server")
	logger.Info("hello")

	output := buf.String()
	assert.Contains(t, output, "[server]")
	assert.Contains(t, output, "hello")

	// Empty group returns the same handler.
	assert.Equal(t, handler, handler.WithGroup(""))
}

func TestSetDefaultCLILogger(t *testing.T) {
	originalLogger := slog.Default()
	defer slog.SetDefault(originalLogger)

	SetDefaultCLILogger("debug")
	require.NotNil(t, slog.Default())
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"  debug  ", slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLogLevel(tt.input))
		})
	}
}
