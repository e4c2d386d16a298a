package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("agent started", "address", "127.0.0.1:8123")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("Log line is not valid JSON: %v", err)
	}
	if line["msg"] != "agent started" {
		t.Errorf("Expected msg 'agent started', got %v", line["msg"])
	}
	if line["address"] != "127.0.0.1:8123" {
		t.Errorf("Expected address attr, got %v", line["address"])
	}
	// UTC RFC3339 timestamps end in Z
	ts, _ := line["time"].(string)
	if !strings.HasSuffix(ts, "Z") {
		t.Errorf("Expected UTC timestamp, got %q", ts)
	}
}

func TestNewLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "text", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("Expected info line to be filtered")
	}
	if !strings.Contains(out, "kept") {
		t.Error("Expected warn line to be emitted")
	}
}

func TestNewRejectsUnknownSettings(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Error("Expected error for unknown level")
	}
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Error("Expected error for unknown format")
	}
}
