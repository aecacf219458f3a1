// internal/app/features/workouts/routes.go
package workouts

import "github.com/go-chi/chi/v5"

// Routes is mounted under /api/workouts.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)

	// FILTERS
	r.Get("/by_difficulty", h.ServeByDifficulty)
	r.Get("/by_category", h.ServeByCategory)

	r.Get("/{id}", h.ServeView)
	r.Put("/{id}", h.HandleUpdate)
	r.Patch("/{id}", h.HandlePatch)
	r.Delete("/{id}", h.HandleDelete)

	return r
}
