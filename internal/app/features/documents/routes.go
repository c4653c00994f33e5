// internal/app/features/documents/routes.go
package documents

import "github.com/go-chi/chi/v5"

// Routes returns the document routes, mounted under /api/documents.
// Every route is scoped to one association; membership is checked per
// request.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Route("/{associationId}", func(r chi.Router) {
		r.Get("/", h.ServeList)
		r.Post("/", h.ServeCreate)
		r.Get("/{id}", h.ServeView)
		r.Put("/{id}", h.ServeEdit)
		r.Delete("/{id}", h.ServeDelete)
	})

	return r
}
