package logging

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestComponentJSON(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() {
		mu.Lock()
		root = prev
		mu.Unlock()
	})

	var buf bytes.Buffer
	if err := Init(Config{Level: "debug", Format: "json", Output: &buf}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	logger := Component("themes")
	logger.Debug().Str("theme", "dark").Msg("theme applied")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["component"] != "themes" {
		t.Fatalf("component = %v, want themes", entry["component"])
	}
	if entry["theme"] != "dark" {
		t.Fatalf("theme = %v, want dark", entry["theme"])
	}
}

func TestInitRejectsBadConfig(t *testing.T) {
	if err := Init(Config{Level: "loud"}); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if err := Init(Config{Format: "xml"}); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
