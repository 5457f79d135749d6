package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestJSONLoggerWritesFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(Config{Level: "debug", Format: "json", Output: &buf}).With(String("component", "n2yo"))
	log.Warn(context.Background(), "upstream failed", Int("status", 503), Err(errors.New("boom")))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["msg"] != "upstream failed" || entry["level"] != "WARN" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["component"] != "n2yo" || entry["error"] != "boom" || entry["status"] != float64(503) {
		t.Fatalf("missing fields: %v", entry)
	}
}

func TestLevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(Config{Level: "warn", Output: &buf})
	log.Info(context.Background(), "hidden")
	log.Error(context.Background(), "shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("level filtering failed: %q", out)
	}
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := New(Config{Output: &buf})

	if FromContext(context.Background(), nil) == nil {
		t.Fatalf("FromContext must never return nil")
	}
	if got := FromContext(context.Background(), base); got != base {
		t.Fatalf("fallback not returned")
	}

	reqLog := base.With(String("request_id", "abc"))
	ctx := ContextWithLogger(context.Background(), reqLog)
	FromContext(ctx, base).Info(ctx, "hello")
	if !strings.Contains(buf.String(), "request_id=abc") {
		t.Fatalf("request logger not used: %q", buf.String())
	}
}
