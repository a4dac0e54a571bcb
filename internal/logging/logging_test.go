package logging

import (
	"context"
	"errors"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"  info  ", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tc := range tests {
		if got := parseLevel(tc.raw); got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestFromContext(t *testing.T) {
	fallback := slog.Default()

	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatalf("empty context should return the fallback")
	}
	if got := FromContext(nil, fallback); got != fallback { //nolint:staticcheck
		t.Fatalf("nil context should return the fallback")
	}

	scoped := slog.Default().With("request_id", "abc")
	ctx := WithLogger(context.Background(), scoped)
	if got := FromContext(ctx, fallback); got != scoped {
		t.Fatalf("scoped logger not returned")
	}
}

func TestNilSafeHelpers(t *testing.T) {
	// Must not panic with a nil logger.
	Info(nil, "msg")
	Warn(nil, "msg", "k", "v")
	Error(nil, "msg", errors.New("boom"))
}

func TestNewLogger(t *testing.T) {
	if got := NewLogger(Config{Level: "debug", Format: "json", Service: "svc", Version: "v1"}); got == nil {
		t.Fatalf("NewLogger returned nil")
	}
	if got := NewLogger(Config{}); got == nil {
		t.Fatalf("NewLogger with defaults returned nil")
	}
}
