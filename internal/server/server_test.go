package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"cricket-bingo-service/internal/config"
	"cricket-bingo-service/internal/providers/cricapi"
	"cricket-bingo-service/internal/providers/fixture"
	"cricket-bingo-service/internal/providers/fsdata"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Load()
	cfg.Provider = "fixture"
	cfg.Snapshots.Dir = t.TempDir()
	cfg.Metrics.Enabled = false
	cfg.Pregen.Enabled = false
	return cfg
}

func TestServerWiringServesRequests(t *testing.T) {
	srv := newServerWithProvider(testConfig(t), nil, fixture.New())

	if err := srv.pools.RefreshPools(context.Background()); err != nil {
		t.Fatalf("RefreshPools: %v", err)
	}

	handler := srv.Handler()
	if handler == nil {
		t.Fatalf("no HTTP handler wired")
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("/health = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/games/daily?date=2026-02-10&size=3", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("/games/daily = %d, body = %s", rec.Code, rec.Body.String())
	}

	// No admin token configured, so the admin route must not exist.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/snapshots/refresh", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("/admin without token = %d, want 404", rec.Code)
	}
}

func TestServerWiresAdminWhenTokenSet(t *testing.T) {
	cfg := testConfig(t)
	cfg.Snapshots.AdminToken = "secret"
	srv := newServerWithProvider(cfg, nil, fixture.New())

	if err := srv.pools.RefreshPools(context.Background()); err != nil {
		t.Fatalf("RefreshPools: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/admin/snapshots/refresh?date=2026-02-10", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin refresh = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestSelectProvider(t *testing.T) {
	cfg := config.Config{}

	if _, ok := selectProvider(cfg, nil).(*fixture.Provider); !ok {
		t.Fatalf("empty provider should select fixture")
	}

	cfg.Provider = "fsdata"
	cfg.DataDir = "data"
	if _, ok := selectProvider(cfg, nil).(*fsdata.Provider); !ok {
		t.Fatalf("fsdata not selected")
	}

	cfg.Provider = "cricapi"
	if _, ok := selectProvider(cfg, nil).(*cricapi.Client); !ok {
		t.Fatalf("cricapi not selected")
	}

	cfg.Provider = "mystery"
	if _, ok := selectProvider(cfg, nil).(*fixture.Provider); !ok {
		t.Fatalf("unknown provider should fall back to fixture")
	}
}

func TestNormalizeProviderName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "fixture"},
		{"Fixture", "fixture"},
		{"CRICAPI", "cricapi"},
	}
	for _, tc := range tests {
		if got := normalizeProviderName(tc.in); got != tc.want {
			t.Errorf("normalizeProviderName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
