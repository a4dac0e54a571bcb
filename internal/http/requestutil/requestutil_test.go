package requestutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSanitizeRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"valid alnum", "abc123", true},
		{"valid with dashes", "req_ab-12", true},
		{"empty", "", false},
		{"spaces", "has space", false},
		{"too long", strings.Repeat("a", 70), false},
		{"injection attempt", "id\nSet-Cookie: x", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SanitizeRequestID(tc.incoming)
			if tc.keep && got != tc.incoming {
				t.Fatalf("valid ID %q replaced with %q", tc.incoming, got)
			}
			if !tc.keep && got == tc.incoming {
				t.Fatalf("invalid ID %q kept", tc.incoming)
			}
			if got == "" {
				t.Fatalf("sanitizer returned empty ID")
			}
		})
	}
}

func TestNewRequestIDUnique(t *testing.T) {
	a := NewRequestID()
	b := NewRequestID()
	if a == "" || a == b {
		t.Fatalf("IDs not unique: %q vs %q", a, b)
	}
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.5:1234"
	if got := ClientIP(r); got != "10.0.0.5:1234" {
		t.Fatalf("ClientIP = %q", got)
	}

	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	if got := ClientIP(r); got != "203.0.113.9" {
		t.Fatalf("forwarded ClientIP = %q", got)
	}

	if got := ClientIP(nil); got != "" {
		t.Fatalf("nil request ClientIP = %q", got)
	}
}
