package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// corsMaxAge is how long, in seconds, browsers may cache a preflight result.
const corsMaxAge = 600

// NewCORSHandler returns a middleware that applies CORS headers for the
// given origins (scheme + host, no trailing slash). Only GET and OPTIONS are
// granted. Content-Disposition is exposed so browser clients can read the
// file name of a CSV export.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         corsMaxAge,
	})
	return c.Handler
}
