// internal/app/features/issues/routes.go
package issues

import "github.com/go-chi/chi/v5"

// Routes returns the issue routes, mounted under /api/issues. Every
// route is scoped to one association; membership is checked per request.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Route("/{associationId}", func(r chi.Router) {
		r.Get("/", h.ServeList)
		r.Post("/", h.ServeCreate)
		r.Get("/{id}", h.ServeView)
		r.Put("/{id}", h.ServeEdit)
		r.Post("/{id}/comments", h.ServeAddComment)
		r.Put("/{id}/notify-city", h.ServeNotifyCity)
	})

	return r
}
