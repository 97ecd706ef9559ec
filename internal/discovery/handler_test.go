package discovery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"chef-backend/internal/shared/server/middleware"
)

func setupRouter(t *testing.T) (*gin.Engine, *Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := newTestService(t)
	r := gin.New()
	r.Use(middleware.Identity())
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r, svc
}

func TestRecipeDetailNotFound(t *testing.T) {
	r, _ := setupRouter(t)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/recipes/missing", nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error.Code != "not_found" {
		t.Fatalf("unexpected code %q", body.Error.Code)
	}
}

func TestFeaturedRouteIsNotShadowedByID(t *testing.T) {
	r, _ := setupRouter(t)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/recipes/featured", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		Recipes []struct {
			ID string `json:"id"`
		} `json:"recipes"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Recipes) != 3 || body.Recipes[0].ID != "1" {
		t.Fatalf("unexpected featured: %+v", body.Recipes)
	}
}

func TestFavoriteToggleRoundTrip(t *testing.T) {
	r, _ := setupRouter(t)
	for i, want := range []bool{true, false} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes/3/favorite", nil)
		req.Header.Set(middleware.GuestHeader, "tester")
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("toggle %d: status %d", i, resp.Code)
		}
		var body struct {
			IsFavorite bool `json:"isFavorite"`
		}
		if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.IsFavorite != want {
			t.Fatalf("toggle %d: isFavorite=%v want %v", i, body.IsFavorite, want)
		}
	}
}

func TestFeedUsesGuestSelection(t *testing.T) {
	r, svc := setupRouter(t)
	ctx := t.Context()
	svc.Selections.For(ctx, "guest:tester").Add(ctx, "gnocchi")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/feed", nil)
	req.Header.Set(middleware.GuestHeader, "tester")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	var body struct {
		Ingredients []string `json:"ingredients"`
		Recipes     []struct {
			ID                 string  `json:"id"`
			CompatibilityScore float64 `json:"compatibilityScore"`
		} `json:"recipes"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Recipes) != 1 || body.Recipes[0].ID != "9" || body.Recipes[0].CompatibilityScore != 0.25 {
		t.Fatalf("unexpected feed: %+v", body)
	}
}
