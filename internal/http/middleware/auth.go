package middleware

import (
	"crypto/subtle"
	"io"
	"net/http"

	"delivery-platform/internal/logx"
)

// AdminToken guards admin routes with a shared-secret header check.
// An empty configured token disables the admin surface entirely.
func AdminToken(logger logx.Logger, token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("X-Admin-Token")
			if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				logger.Warn("admin auth rejected",
					logx.String("method", r.Method),
					logx.String("path", r.URL.Path),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				if _, err := io.WriteString(w, `{"error":"unauthorized"}`); err != nil {
					logger.Debug("auth response write failed", logx.Any("err", err))
				}
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
