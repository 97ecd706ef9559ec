package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chef-backend/internal/pantry"
	"chef-backend/internal/selection"
	"chef-backend/internal/shared/config"
	"chef-backend/internal/shared/storage/kv/memory"
	"chef-backend/internal/suggest"
)

func testRouter(rps float64, burst int) http.Handler {
	cfg := config.Defaults()
	cfg.RateLimitRPS = rps
	cfg.RateLimitBurst = burst
	p := &pantry.Service{Selections: selection.NewRegistry(memory.New()), Suggester: suggest.NewSuggester(nil)}
	return NewRouter(cfg, Handlers{Pantry: pantry.NewHandler(p)})
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("X-Guest-Id", "router-test")
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	return resp
}

func TestHealthWithoutChecks(t *testing.T) {
	resp := get(testRouter(20, 40), "/api/v1/health")
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), `"ok":true`) {
		t.Fatalf("unexpected health response %d %s", resp.Code, resp.Body.String())
	}
}

func TestMetricsExposed(t *testing.T) {
	resp := get(testRouter(20, 40), "/metrics")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", resp.Code)
	}
}

func TestTypeaheadHasItsOwnBucket(t *testing.T) {
	r := testRouter(0.001, 1)

	if resp := get(r, "/api/v1/suggestions?q=po"); resp.Code != http.StatusOK {
		t.Fatalf("first suggestion: %d", resp.Code)
	}
	if resp := get(r, "/api/v1/suggestions?q=pom"); resp.Code != http.StatusTooManyRequests {
		t.Fatalf("second suggestion should be limited, got %d", resp.Code)
	}
	if resp := get(r, "/api/v1/ingredients"); resp.Code != http.StatusOK {
		t.Fatalf("typeahead traffic should not exhaust the default bucket, got %d", resp.Code)
	}
}

func TestRateLimitIgnoresForwardedFor(t *testing.T) {
	r := testRouter(0.001, 1)
	codes := make([]int, 0, 2)
	for _, ip := range []string{"203.0.113.1", "203.0.113.2"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/ingredients", nil)
		req.Header.Set("X-Guest-Id", "guest-"+ip)
		req.Header.Set("X-Forwarded-For", ip)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		codes = append(codes, resp.Code)
	}
	if codes[1] != http.StatusTooManyRequests {
		t.Fatalf("forged addresses and guest ids should share a bucket, got %v", codes)
	}
}

func TestRateLimitDisabledWithZeroRate(t *testing.T) {
	r := testRouter(0, 0)
	for i := 0; i < 5; i++ {
		if resp := get(r, "/api/v1/ingredients"); resp.Code != http.StatusOK {
			t.Fatalf("request %d: %d", i, resp.Code)
		}
	}
}

func TestAddr(t *testing.T) {
	for in, want := range map[string]string{"": ":8080", "9000": ":9000", ":7000": ":7000"} {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
