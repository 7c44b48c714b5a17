package middleware

import (
	"net/http"
	"strings"
)

// cdnOrigin serves htmx, Chart.js and the Tailwind browser build.
const cdnOrigin = "https://cdn.jsdelivr.net"

// SecurityHeaders sets the CSP and related headers. It must run after
// NonceMiddleware.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scriptSrc := []string{"'self'", cdnOrigin}
		if nonce := GetNonce(r.Context()); nonce != "" {
			scriptSrc = append(scriptSrc, "'nonce-"+nonce+"'")
		}

		csp := strings.Join([]string{
			"default-src 'self'",
			"script-src " + strings.Join(scriptSrc, " "),
			// The Tailwind browser build injects a style element.
			"style-src 'self' 'unsafe-inline'",
			"img-src 'self' data:",
			"connect-src 'self'",
			"frame-ancestors 'none'",
			"base-uri 'self'",
			"form-action 'self'",
		}, "; ")

		h := w.Header()
		h.Set("Content-Security-Policy", csp)
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "same-origin")

		next.ServeHTTP(w, r)
	})
}
