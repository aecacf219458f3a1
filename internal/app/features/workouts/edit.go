// internal/app/features/workouts/edit.go
package workouts

import (
	"context"
	"errors"
	"net/http"

	workoutstore "github.com/dalemusser/octofit/internal/app/store/workouts"
	"github.com/dalemusser/octofit/internal/app/system/payload"
	"github.com/dalemusser/octofit/internal/app/system/respond"
	"github.com/dalemusser/octofit/internal/app/system/timeouts"
	"github.com/dalemusser/octofit/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ServeView handles GET /api/workouts/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, ok := payload.PathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	wk, err := workoutstore.New(h.DB).GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respond.NotFound(w)
		return
	}
	if err != nil {
		respond.InternalError(w, h.Log, "get workout", err, zap.String("workout_id", id.Hex()))
		return
	}
	respond.JSON(w, http.StatusOK, wk)
}

// HandleCreate handles POST /api/workouts.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in workoutInput
	if !payload.Decode(w, r, &in) || !payload.Valid(w, in) {
		return
	}
	var wk models.Workout
	in.apply(&wk)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := workoutstore.New(h.DB).Create(ctx, wk)
	if err != nil {
		respond.InternalError(w, h.Log, "create workout", err)
		return
	}
	h.Log.Info("workout created", zap.String("workout_id", created.ID.Hex()), zap.String("name", created.Name))
	respond.JSON(w, http.StatusCreated, created)
}

// HandleUpdate handles PUT /api/workouts/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) { h.save(w, r, false) }

// HandlePatch handles PATCH /api/workouts/{id}. A supplied exercises list
// replaces the stored one.
func (h *Handler) HandlePatch(w http.ResponseWriter, r *http.Request) { h.save(w, r, true) }

func (h *Handler) save(w http.ResponseWriter, r *http.Request, partial bool) {
	id, ok := payload.PathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := workoutstore.New(h.DB)
	current, err := store.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respond.NotFound(w)
		return
	}
	if err != nil {
		respond.InternalError(w, h.Log, "get workout", err, zap.String("workout_id", id.Hex()))
		return
	}

	var in workoutInput
	var stored []exerciseInput
	if partial {
		in = inputFrom(current)
		// encoding/json decodes into existing slice elements, so a supplied
		// list would inherit fields from the stored one.
		stored, in.Exercises = in.Exercises, nil
	}
	if !payload.Decode(w, r, &in) {
		return
	}
	if partial && in.Exercises == nil {
		in.Exercises = stored
	}
	if !payload.Valid(w, in) {
		return
	}
	in.apply(&current)

	updated, err := store.Update(ctx, current)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respond.NotFound(w)
		return
	}
	if err != nil {
		respond.InternalError(w, h.Log, "update workout", err, zap.String("workout_id", id.Hex()))
		return
	}
	respond.JSON(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /api/workouts/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := payload.PathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := workoutstore.New(h.DB).Delete(ctx, id)
	if err != nil {
		respond.InternalError(w, h.Log, "delete workout", err, zap.String("workout_id", id.Hex()))
		return
	}
	if n == 0 {
		respond.NotFound(w)
		return
	}
	respond.NoContent(w)
}
