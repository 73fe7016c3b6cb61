package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	mdwlog "github.com/msto63/unitx/foundation/core/log"
	"github.com/msto63/unitx/pkg/core/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected mdwlog.Level
	}{
		{"trace", mdwlog.LevelTrace},
		{"debug", mdwlog.LevelDebug},
		{"info", mdwlog.LevelInfo},
		{"warn", mdwlog.LevelWarn},
		{"warning", mdwlog.LevelWarn},
		{"error", mdwlog.LevelError},
		{"invalid", mdwlog.LevelInfo}, // defaults to info
		{"", mdwlog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected mdwlog.Format
	}{
		{"json", mdwlog.FormatJSON},
		{"text", mdwlog.FormatText},
		{"console", mdwlog.FormatConsole},
		{"xml", mdwlog.FormatText}, // defaults to text
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseFormat(tt.input); got != tt.expected {
				t.Errorf("parseFormat(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("unitx")

	if cfg.ServiceName != "unitx" {
		t.Errorf("ServiceName = %v, want unitx", cfg.ServiceName)
	}
	if cfg.Level != "warn" {
		t.Errorf("Level = %v, want warn", cfg.Level)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
}

func TestNewSimpleLogger(t *testing.T) {
	logger := NewSimpleLogger("test-service")

	if logger == nil {
		t.Fatal("NewSimpleLogger() returned nil")
	}
	if logger.GetLevel() != mdwlog.LevelWarn {
		t.Errorf("GetLevel() = %v, want warn", logger.GetLevel())
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		ServiceName: "test-service",
		Level:       "debug",
		Format:      "json",
		Output:      &buf,
	})

	logger.Debug("converted", mdwlog.Fields{"unit": "km"})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["logger"] != "test-service" {
		t.Errorf("logger = %v, want test-service", entry["logger"])
	}
	if entry["unit"] != "km" {
		t.Errorf("unit = %v, want km", entry["unit"])
	}
}

func TestNewLogger_AdditionalOutputs(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:             "info",
		Format:            "text",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})

	logger.Info("hello")

	if !strings.Contains(primary.String(), "hello") {
		t.Errorf("primary output = %q", primary.String())
	}
	if primary.String() != extra.String() {
		t.Errorf("additional output = %q, want %q", extra.String(), primary.String())
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.General.LogLevel = "error"

	var buf bytes.Buffer
	logger := FromConfig(cfg, false, &buf)
	logger.Warn("suppressed")
	if buf.Len() != 0 {
		t.Errorf("warn logged at error level: %q", buf.String())
	}
	if logger.Name() != "unitx" {
		t.Errorf("Name() = %q, want unitx", logger.Name())
	}

	verbose := FromConfig(cfg, true, &buf)
	verbose.Debug("shown")
	if !strings.Contains(buf.String(), "[DBG] {unitx} shown") {
		t.Errorf("verbose output = %q", buf.String())
	}
}

func BenchmarkLogger_Info(b *testing.B) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{ServiceName: "benchmark", Level: "info", Output: &buf})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", mdwlog.Fields{"iteration": i})
		buf.Reset()
	}
}
