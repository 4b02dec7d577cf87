package middleware

import "net/http"

// MaxBytes returns middleware that caps the readable request body at limit
// bytes. Handlers decoding an over-limit body get a *http.MaxBytesError from
// the reader.
func MaxBytes(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limit > 0 && r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
