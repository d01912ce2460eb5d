package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RateLimiterConfig returns per-client in-memory rate limiting. This guards
// the HTTP surface only; the analysis service itself places no bound on
// concurrent calls.
func RateLimiterConfig(rps float64) echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(rps)))
}
