// internal/app/features/collaborations/routes.go
package collaborations

import "github.com/go-chi/chi/v5"

// Routes returns the collaboration routes, mounted under
// /api/collaborations. Participation checks happen per request against
// the collaboration's participant set.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Post("/", h.ServeCreate)

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.ServeView)
		r.Post("/messages", h.ServeAddMessage)
		r.Post("/join", h.ServeJoin)
		r.Put("/status", h.ServeUpdateStatus)
	})

	return r
}
