// internal/app/features/activities/edit.go
package activities

import (
	"context"
	"errors"
	"net/http"

	activitystore "github.com/dalemusser/octofit/internal/app/store/activities"
	"github.com/dalemusser/octofit/internal/app/system/payload"
	"github.com/dalemusser/octofit/internal/app/system/respond"
	"github.com/dalemusser/octofit/internal/app/system/timeouts"
	"github.com/dalemusser/octofit/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleCreate handles POST /api/activities. The user_id is not checked
// against the users collection.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in activityInput
	if !payload.Decode(w, r, &in) || !payload.Valid(w, in) {
		return
	}
	var a models.Activity
	in.apply(&a)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := activitystore.New(h.DB).Create(ctx, a)
	if err != nil {
		respond.InternalError(w, h.Log, "create activity", err)
		return
	}
	h.Log.Debug("activity logged",
		zap.String("activity_id", created.ID.Hex()),
		zap.String("user_id", created.UserID),
		zap.String("activity_type", created.ActivityType))
	respond.JSON(w, http.StatusCreated, created)
}

// HandleUpdate handles PUT /api/activities/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) { h.save(w, r, false) }

// HandlePatch handles PATCH /api/activities/{id}.
func (h *Handler) HandlePatch(w http.ResponseWriter, r *http.Request) { h.save(w, r, true) }

func (h *Handler) save(w http.ResponseWriter, r *http.Request, partial bool) {
	id, ok := payload.PathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := activitystore.New(h.DB)
	current, err := store.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respond.NotFound(w)
		return
	}
	if err != nil {
		respond.InternalError(w, h.Log, "get activity", err, zap.String("activity_id", id.Hex()))
		return
	}

	var in activityInput
	if partial {
		in = inputFrom(current)
	}
	if !payload.Decode(w, r, &in) || !payload.Valid(w, in) {
		return
	}
	in.apply(&current)

	updated, err := store.Update(ctx, current)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respond.NotFound(w)
		return
	}
	if err != nil {
		respond.InternalError(w, h.Log, "update activity", err, zap.String("activity_id", id.Hex()))
		return
	}
	respond.JSON(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /api/activities/{id}. The leaderboard keeps
// its totals until the next regeneration.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := payload.PathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := activitystore.New(h.DB).Delete(ctx, id)
	if err != nil {
		respond.InternalError(w, h.Log, "delete activity", err, zap.String("activity_id", id.Hex()))
		return
	}
	if n == 0 {
		respond.NotFound(w)
		return
	}
	respond.NoContent(w)
}
