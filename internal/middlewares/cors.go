package middlewares

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

// CORSMiddleware allows browser requests from the configured origins.
// An origin entry may be exact or a wildcard such as https://*.example.com.
func CORSMiddleware(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			return OriginAllowed(origins, origin)
		},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})
}

// OriginAllowed reports whether origin matches one of allowed.
// Requests without an origin, such as server to server calls, are allowed.
func OriginAllowed(allowed []string, origin string) bool {
	if origin == "" {
		return true
	}

	for _, pattern := range allowed {
		if pattern == "*" || pattern == origin {
			return true
		}

		prefix, suffix, ok := strings.Cut(pattern, "*")
		if !ok {
			continue
		}
		if len(origin) > len(prefix)+len(suffix) &&
			strings.HasPrefix(origin, prefix) && strings.HasSuffix(origin, suffix) {
			return true
		}
	}
	return false
}
