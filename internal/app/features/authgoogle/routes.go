// internal/app/features/authgoogle/routes.go
package authgoogle

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the OAuth entry/callback routes, mounted under /auth.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/google", h.ServeLogin)
	r.Get("/google/callback", h.ServeCallback)
	return r
}

// APIRoutes returns the session endpoints, mounted under /api/auth.
func APIRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/user", h.ServeCurrentUser)
	r.Post("/logout", h.ServeLogout)
	return r
}
