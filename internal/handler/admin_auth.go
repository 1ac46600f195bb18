package handler

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// RequireAdmin guards the admin API with a static bearer token. With no
// token configured the admin surface stays closed rather than open.
func RequireAdmin(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				writeError(w, http.StatusUnauthorized, "Admin API is not configured")
				return
			}

			auth := r.Header.Get("Authorization")
			presented, ok := strings.CutPrefix(auth, "Bearer ")
			if !ok {
				writeError(w, http.StatusUnauthorized, "Missing bearer token")
				return
			}
			if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				writeError(w, http.StatusForbidden, "Invalid admin token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
