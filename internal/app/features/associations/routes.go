// internal/app/features/associations/routes.go
package associations

import "github.com/go-chi/chi/v5"

// Routes returns the association routes, mounted under /api/associations.
// The session middleware runs upstream; per-route gates enforce auth and
// roles.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Post("/", h.ServeCreate)
	r.Get("/my-associations", h.ServeMine)

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.ServeView)
		r.Put("/", h.ServeEdit)
		r.Get("/members", h.ServeMembers)
		r.Post("/members", h.ServeAddMember)
		r.Put("/members/{userId}/role", h.ServeUpdateMemberRole)
	})

	return r
}
