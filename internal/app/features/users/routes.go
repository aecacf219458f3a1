// internal/app/features/users/routes.go
package users

import "github.com/go-chi/chi/v5"

// Routes is mounted under /api/users.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)

	// FILTERS
	r.Get("/by_team", h.ServeByTeam)

	r.Get("/{id}", h.ServeView)
	r.Put("/{id}", h.HandleUpdate)
	r.Patch("/{id}", h.HandlePatch)
	r.Delete("/{id}", h.HandleDelete)

	return r
}
