package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"chef-backend/internal/shared/metrics"
	"chef-backend/internal/shared/telemetry"
)

// Logging emits one structured log line and request metrics per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()
		route := c.FullPath()

		metrics.ObserveRequest(route, c.Request.Method, status, latency)

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       route,
			"status":      status,
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"principal":   PrincipalFromContext(c),
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if recipeID := c.GetString("recipeId"); recipeID != "" {
			fields["recipe_id"] = recipeID
		}
		if n, ok := c.Get("resultCount"); ok {
			fields["result_count"] = n
		}
		telemetry.Info("request.complete", fields)
	}
}
