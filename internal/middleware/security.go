package middleware

import (
	"github.com/labstack/echo/v4"
)

// securityHeaders are set on every response. The API only serves JSON, so
// the content policy forbids loading anything.
var securityHeaders = map[string]string{
	"X-Content-Type-Options":    "nosniff",
	"X-Frame-Options":           "DENY",
	"Strict-Transport-Security": "max-age=31536000; includeSubDomains",
	"Content-Security-Policy":   "default-src 'none'; frame-ancestors 'none'",
	"Referrer-Policy":           "strict-origin-when-cross-origin",
	"Permissions-Policy":        "geolocation=(), microphone=(), camera=()",
}

// SecurityHeaders adds security headers to responses. Household finance and
// health data must not be cached, except for the Prometheus scrape endpoint
// which carries no personal data.
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Response().Header()
			for name, value := range securityHeaders {
				header.Set(name, value)
			}

			if c.Path() != "/metrics" {
				header.Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
				header.Set("Pragma", "no-cache")
				header.Set("Expires", "0")
			}

			return next(c)
		}
	}
}
