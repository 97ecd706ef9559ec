package telemetry

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestInfoWritesJSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Output: &buf})
	defer Init(Config{})

	Info("selection.persist", map[string]any{"key": "selectedIngredients", "count": 2})

	var payload map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &payload); err != nil {
		t.Fatalf("decode log json: %v (%q)", err, buf.String())
	}
	if payload["msg"] != "selection.persist" {
		t.Fatalf("unexpected msg: %v", payload["msg"])
	}
	if payload["level"] != "info" {
		t.Fatalf("unexpected level: %v", payload["level"])
	}
	if payload["key"] != "selectedIngredients" {
		t.Fatalf("unexpected key field: %v", payload["key"])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("missing ts field")
	}
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Output: &buf})
	defer Init(Config{})

	Debug("noisy", nil)
	Warn("kept", nil)

	out := buf.String()
	if strings.Contains(out, "noisy") {
		t.Fatalf("debug line should be suppressed, got %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("warn line missing, got %q", out)
	}
}
