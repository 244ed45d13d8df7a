package middleware

import (
	"net/http"
	"strings"
)

// The payroll pages are plain forms: no scripts, one stylesheet and the
// profile images, all served from /assets.
var pagePolicy = strings.Join([]string{
	"default-src 'none'",
	"base-uri 'none'",
	"form-action 'self'",
	"frame-ancestors 'none'",
	"img-src 'self'",
	"style-src 'self'",
	"script-src 'none'",
}, "; ")

// SecureHeaders sets the browser policy for the payroll UI. HSTS is only sent
// in production, where the UI sits behind TLS.
func SecureHeaders(isProd bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers := w.Header()
			headers.Set("Content-Security-Policy", pagePolicy)
			headers.Set("X-Content-Type-Options", "nosniff")
			headers.Set("X-Frame-Options", "DENY")
			// Form posts redirect between our own pages; nothing else needs the path.
			headers.Set("Referrer-Policy", "same-origin")
			headers.Set("Cross-Origin-Opener-Policy", "same-origin")
			if isProd {
				headers.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
			}
			next.ServeHTTP(w, r)
		})
	}
}
