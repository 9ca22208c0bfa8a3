package parabolines

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	if _, err := NewMapper(-1, 1, -1, 1, 10, 10); err != nil {
		t.Fatalf("NewMapper() error = %v", err)
	}
	if !strings.Contains(buf.String(), "mapper constructed") {
		t.Errorf("expected construction log, got %q", buf.String())
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	SetLogger(nil)

	if _, err := NewMapper(-1, 1, -1, 1, 10, 10); err != nil {
		t.Fatalf("NewMapper() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected silence after SetLogger(nil), got %q", buf.String())
	}
}
