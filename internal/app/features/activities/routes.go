// internal/app/features/activities/routes.go
package activities

import "github.com/go-chi/chi/v5"

// Routes is mounted under /api/activities.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)

	// FILTERS (newest first)
	r.Get("/by_user", h.ServeByUser)
	r.Get("/by_type", h.ServeByType)

	r.Get("/{id}", h.ServeView)
	r.Put("/{id}", h.HandleUpdate)
	r.Patch("/{id}", h.HandlePatch)
	r.Delete("/{id}", h.HandleDelete)

	return r
}
