package middleware

import (
	"net/http"
	"slices"
)

const (
	HeaderAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAllowMethods = "Access-Control-Allow-Methods"
	HeaderAllowHeaders = "Access-Control-Allow-Headers"
	HeaderAllowCreds   = "Access-Control-Allow-Credentials"

	AllowedMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
	AllowedHeaders = "Content-Type, Authorization"
)

// CORS allows cross-origin requests from the configured origins only.
// Credentialed requests are permitted, so the allowed origin is echoed
// back instead of a wildcard.
func CORS(allowedOrigins []string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			if origin != "" && slices.Contains(allowedOrigins, origin) {
				w.Header().Set(HeaderAllowOrigin, origin)
				w.Header().Set(HeaderAllowCreds, "true")
				w.Header().Set(HeaderAllowMethods, AllowedMethods)

				// Wildcards are invalid with credentials, so echo the requested headers.
				reqHeaders := r.Header.Get("Access-Control-Request-Headers")
				if reqHeaders == "" {
					reqHeaders = AllowedHeaders
				}
				w.Header().Set(HeaderAllowHeaders, reqHeaders)
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
