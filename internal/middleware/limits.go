package middleware

import "net/http"

// Limits bounds the size of incoming requests. Zero disables a bound.
type Limits struct {
	// MaxBodyBytes caps the request body. The API reads no bodies, so a
	// small value is enough.
	MaxBodyBytes int64
	// MaxQueryBytes caps the raw query string.
	MaxQueryBytes int
}

// NewRequestLimitHandler rejects requests exceeding l: 414 for an over-long
// query string, 413 for a body whose Content-Length is over the limit.
// Bodies of unknown length are wrapped in http.MaxBytesReader.
func NewRequestLimitHandler(l Limits) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if l.MaxQueryBytes > 0 && len(r.URL.RawQuery) > l.MaxQueryBytes {
				http.Error(w, http.StatusText(http.StatusRequestURITooLong), http.StatusRequestURITooLong)
				return
			}
			if l.MaxBodyBytes > 0 {
				if r.ContentLength > l.MaxBodyBytes {
					http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
					return
				}
				r.Body = http.MaxBytesReader(w, r.Body, l.MaxBodyBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
