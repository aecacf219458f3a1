// internal/app/features/workouts/list.go
package workouts

import (
	"context"
	"net/http"

	workoutstore "github.com/dalemusser/octofit/internal/app/store/workouts"
	"github.com/dalemusser/octofit/internal/app/system/payload"
	"github.com/dalemusser/octofit/internal/app/system/respond"
	"github.com/dalemusser/octofit/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeList handles GET /api/workouts.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := workoutstore.New(h.DB).List(ctx)
	if err != nil {
		respond.InternalError(w, h.Log, "list workouts", err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

// ServeByDifficulty handles GET /api/workouts/by_difficulty?difficulty=.
func (h *Handler) ServeByDifficulty(w http.ResponseWriter, r *http.Request) {
	difficulty, ok := payload.RequiredParam(w, r, "difficulty")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := workoutstore.New(h.DB).ListByDifficulty(ctx, difficulty)
	if err != nil {
		respond.InternalError(w, h.Log, "list workouts by difficulty", err, zap.String("difficulty", difficulty))
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

// ServeByCategory handles GET /api/workouts/by_category?category=.
func (h *Handler) ServeByCategory(w http.ResponseWriter, r *http.Request) {
	category, ok := payload.RequiredParam(w, r, "category")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := workoutstore.New(h.DB).ListByCategory(ctx, category)
	if err != nil {
		respond.InternalError(w, h.Log, "list workouts by category", err, zap.String("category", category))
		return
	}
	respond.JSON(w, http.StatusOK, list)
}
