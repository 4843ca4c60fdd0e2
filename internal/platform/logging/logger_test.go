package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("decode log line %q: %v", line, err)
		}
		out = append(out, entry)
	}
	return out
}

func TestLogger_ContextWithAddsScopedFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSON(&buf, LevelDebug)

	ctx := ContextWith(context.Background(), "league", "LEN")
	ctx = ContextWith(ctx, "season", "2022-2023")
	logger.InfoContext(ctx, "game linked", "actions", 42)
	logger.Info("plain", "actions", 1)

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0]["league"] != "LEN" || lines[0]["season"] != "2022-2023" || lines[0]["actions"] != float64(42) {
		t.Fatalf("unexpected scoped line: %v", lines[0])
	}
	if _, ok := lines[1]["league"]; ok {
		t.Fatalf("plain line picked up context fields: %v", lines[1])
	}
}

func TestLogger_LevelFiltersAndErrorKeys(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSON(&buf, LevelWarn).Named("arena")

	logger.Info("hidden")
	logger.Warn("request failed", "error", errors.New("timeout"), 7)

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("expected only the warn line, got %d", len(lines))
	}
	if lines[0]["logger"] != "arena" || lines[0]["error"] != "timeout" {
		t.Fatalf("unexpected line: %v", lines[0])
	}
	if _, ok := lines[0]["arg"]; !ok {
		t.Fatalf("dangling non-string key not kept as arg: %v", lines[0])
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"fatal":   LevelInfo,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLogger_NilIsSafe(t *testing.T) {
	var logger *Logger
	logger.Info("nil logger falls back to default")
	if err := logger.Sync(); err != nil {
		t.Fatalf("sync nil logger: %v", err)
	}
}
