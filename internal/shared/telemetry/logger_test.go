package telemetry

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestInfoWritesFlatJSON(t *testing.T) {
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	defer restore()

	Info("request.complete", map[string]any{"status": 200, "path": "/api/profile"})

	var payload map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &payload); err != nil {
		t.Fatalf("decode log json: %v", err)
	}
	for _, key := range []string{"ts", "level", "msg", "status", "path"} {
		if _, ok := payload[key]; !ok {
			t.Fatalf("missing log field: %s", key)
		}
	}
	if payload["level"] != "info" {
		t.Fatalf("unexpected level: %v", payload["level"])
	}
	if payload["msg"] != "request.complete" {
		t.Fatalf("unexpected msg: %v", payload["msg"])
	}
}

func TestSetLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	defer restore()
	SetLevel("warn")
	defer SetLevel("info")

	Debug("hidden", nil)
	Info("hidden", nil)
	Warn("shown", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], `"msg":"shown"`) {
		t.Fatalf("unexpected line: %s", lines[0])
	}
}

func TestSetLevelUnknownFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	defer restore()
	SetLevel("loud")

	Debug("hidden", nil)
	Info("shown", nil)

	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("debug line should be filtered: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("info line missing: %s", buf.String())
	}
}
