package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != LevelInfo {
		t.Errorf("Expected default level to be Info, got %s", cfg.Level)
	}
	if cfg.Pretty {
		t.Error("Expected default pretty to be false")
	}
}

func TestSetup_StructuredFetchEvent(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := Setup(Config{
		Level:  LevelInfo,
		Pretty: false,
		Output: buf,
	})

	logger.Warn().
		Str("error_kind", "quota_exceeded").
		Dur("duration", 1200*time.Millisecond).
		Msg("Upstream fetch failed")

	var event map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("Log output is not JSON: %v\noutput: %s", err, buf.String())
	}
	if event["error_kind"] != "quota_exceeded" {
		t.Errorf("Expected error_kind field, got %v", event["error_kind"])
	}
	if _, ok := event["duration"]; !ok {
		t.Error("Expected duration field in fetch event")
	}
	if event["message"] != "Upstream fetch failed" {
		t.Errorf("Expected message field, got %v", event["message"])
	}
	if event["level"] != "warn" {
		t.Errorf("Expected level=warn, got %v", event["level"])
	}
}

func TestSetup_NilOutputDefaults(t *testing.T) {
	// No Output configured falls back to stderr instead of panicking on a
	// nil writer.
	logger := Setup(Config{Level: LevelInfo})
	logger.Debug().Msg("below the configured level, never written")
}

func TestNewLogger_ComponentField(t *testing.T) {
	buf := &bytes.Buffer{}
	Setup(Config{
		Level:  LevelInfo,
		Pretty: false,
		Output: buf,
	})

	logger := NewLogger("cache")
	logger.Info().Msg("Cache invalidated")

	var event map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("Log output is not JSON: %v\noutput: %s", err, buf.String())
	}
	if event["component"] != "cache" {
		t.Errorf("Expected component=cache, got %v", event["component"])
	}
	if event["message"] != "Cache invalidated" {
		t.Errorf("Expected message field, got %v", event["message"])
	}
}

func TestLogLevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	Setup(Config{
		Level:  LevelWarn,
		Pretty: false,
		Output: buf,
	})

	logger := NewLogger("sheets")

	// Below the warn threshold.
	logger.Debug().Msg("Joined fetch failed, retrying once")
	logger.Info().Msg("Fetched spreadsheet")

	// At and above the threshold.
	logger.Warn().Msg("Quota exceeded, serving stale entry")
	logger.Error().Msg("Dataset request failed")

	output := buf.String()
	if strings.Contains(output, "retrying once") {
		t.Error("Debug event should be filtered out at Warn level")
	}
	if strings.Contains(output, "Fetched spreadsheet") {
		t.Error("Info event should be filtered out at Warn level")
	}
	if !strings.Contains(output, "serving stale entry") {
		t.Error("Warn event should be included at Warn level")
	}
	if !strings.Contains(output, "Dataset request failed") {
		t.Error("Error event should be included at Warn level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    LogLevel
		expected zerolog.Level
	}{
		{LevelDebug, zerolog.DebugLevel},
		{LevelInfo, zerolog.InfoLevel},
		{LevelWarn, zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{LevelError, zerolog.ErrorLevel},
		{"invalid", zerolog.InfoLevel}, // Should default to Info
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
