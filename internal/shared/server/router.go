package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chef-backend/internal/discovery"
	"chef-backend/internal/pantry"
	"chef-backend/internal/services/health"
	"chef-backend/internal/shared/config"
	"chef-backend/internal/shared/metrics"
	"chef-backend/internal/shared/server/middleware"
	"chef-backend/internal/shared/server/respond"
	"chef-backend/internal/shared/telemetry"
)

const (
	suggestionsRoute   = "/api/v1/suggestions"
	typeaheadRateGroup = "TYPEAHEAD"
)

// Handlers groups the feature handlers mounted under /api/v1.
type Handlers struct {
	Discovery *discovery.Handler
	Pantry    *pantry.Handler
	Health    *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, h Handlers) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	// Without trusted proxies ClientIP is the socket address, which the rate
	// limiter keys on.
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		telemetry.Warn("server.trusted_proxies_invalid", map[string]any{"error": err.Error()})
		_ = r.SetTrustedProxies(nil)
	}

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.Use(middleware.Identity(), middleware.RateLimit(rateLimitConfig(cfg)))
	api.GET("/health", func(c *gin.Context) {
		if h.Health == nil {
			respond.JSON(c, http.StatusOK, gin.H{"ok": true})
			return
		}
		st := h.Health.Status(c.Request.Context())
		status := http.StatusOK
		if !st.OK {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, st)
	})
	if h.Discovery != nil {
		h.Discovery.RegisterRoutes(api)
	}
	if h.Pantry != nil {
		h.Pantry.RegisterRoutes(api)
		h.Pantry.RegisterSuggestRoutes(api)
	}

	return r
}

// rateLimitConfig gives typeahead traffic its own bucket so fast typing does
// not starve the rest of the API. A non-positive rate disables limiting.
func rateLimitConfig(cfg config.Config) middleware.RateLimitConfig {
	rules := map[string]middleware.RateLimitRule{}
	if cfg.RateLimitRPS > 0 {
		rule := middleware.RateLimitRule{Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst}
		rules["DEFAULT"] = rule
		rules[typeaheadRateGroup] = rule
	}
	return middleware.RateLimitConfig{
		Rules: rules,
		GroupFor: func(c *gin.Context) string {
			if c.FullPath() == suggestionsRoute {
				return typeaheadRateGroup
			}
			return ""
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
