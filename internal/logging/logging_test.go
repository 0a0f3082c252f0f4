package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level   string
		enabled slog.Level
		muted   slog.Level
	}{
		{"debug", slog.LevelDebug, slog.LevelDebug - 1},
		{"INFO", slog.LevelInfo, slog.LevelDebug},
		{"warn", slog.LevelWarn, slog.LevelInfo},
		{"error", slog.LevelError, slog.LevelWarn},
		{"bogus", slog.LevelInfo, slog.LevelDebug},
	}

	for _, tt := range tests {
		l := New(&bytes.Buffer{}, tt.level)
		if !l.Enabled(context.Background(), tt.enabled) {
			t.Errorf("New(%q): level %v should be enabled", tt.level, tt.enabled)
		}
		if l.Enabled(context.Background(), tt.muted) {
			t.Errorf("New(%q): level %v should be muted", tt.level, tt.muted)
		}
	}
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "info").Info("hello", "k", "v")

	if !bytes.Contains(buf.Bytes(), []byte(`"msg":"hello"`)) || !bytes.Contains(buf.Bytes(), []byte(`"k":"v"`)) {
		t.Errorf("unexpected log line: %s", buf.String())
	}
}
