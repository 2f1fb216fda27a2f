package auth

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/graphicoglobal/atelier/pkg/httpx"
	"github.com/graphicoglobal/atelier/pkg/logger"
)

// RequireAdmin is a chi middleware that admits only requests carrying an
// admin session created by Login. Returns 401 Unauthorized otherwise.
func RequireAdmin(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, err := HasAdminSession(r, store)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if !ok {
				log.WarnContext(r.Context(), "admin session required", "path", r.URL.Path)
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
