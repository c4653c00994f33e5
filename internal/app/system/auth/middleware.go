// internal/app/system/auth/middleware.go
package auth

import (
	"net/http"

	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/httpjson"
)

// RequireSignedIn rejects requests without a resolved user with a 401.
// No side effects occur past this point for unauthenticated callers.
func (sm *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); !ok {
			httpjson.Error(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
