package router

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"floorquote/internal/cache"
)

// RateLimit bounds requests per client IP with a fixed window counter in
// Redis. The cache client swallows connectivity errors and returns a zero
// count, so a Redis outage fails open rather than blocking traffic.
func RateLimit(cacheClient *cache.Client, limit int64, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := "ratelimit:" + c.Path() + ":" + c.RealIP()
			n, err := cacheClient.Incr(c.Request().Context(), key, window)
			if err == nil && n > limit {
				return echo.NewHTTPError(http.StatusTooManyRequests, map[string]string{
					"error": "too many requests, please try again later",
					"code":  "RATE_LIMITED",
				})
			}
			return next(c)
		}
	}
}
