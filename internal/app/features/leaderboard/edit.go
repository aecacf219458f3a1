// internal/app/features/leaderboard/edit.go
package leaderboard

import (
	"context"
	"errors"
	"net/http"

	leaderboardstore "github.com/dalemusser/octofit/internal/app/store/leaderboard"
	"github.com/dalemusser/octofit/internal/app/system/payload"
	"github.com/dalemusser/octofit/internal/app/system/respond"
	"github.com/dalemusser/octofit/internal/app/system/timeouts"
	"github.com/dalemusser/octofit/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ServeView handles GET /api/leaderboard/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, ok := payload.PathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	e, err := leaderboardstore.New(h.DB).GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respond.NotFound(w)
		return
	}
	if err != nil {
		respond.InternalError(w, h.Log, "get leaderboard entry", err, zap.String("entry_id", id.Hex()))
		return
	}
	respond.JSON(w, http.StatusOK, e)
}

// HandleCreate handles POST /api/leaderboard.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in entryInput
	if !payload.Decode(w, r, &in) || !payload.Valid(w, in) {
		return
	}
	var e models.LeaderboardEntry
	in.apply(&e)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := leaderboardstore.New(h.DB).Create(ctx, e)
	if err != nil {
		respond.InternalError(w, h.Log, "create leaderboard entry", err)
		return
	}
	respond.JSON(w, http.StatusCreated, created)
}

// HandleUpdate handles PUT /api/leaderboard/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) { h.save(w, r, false) }

// HandlePatch handles PATCH /api/leaderboard/{id}.
func (h *Handler) HandlePatch(w http.ResponseWriter, r *http.Request) { h.save(w, r, true) }

func (h *Handler) save(w http.ResponseWriter, r *http.Request, partial bool) {
	id, ok := payload.PathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := leaderboardstore.New(h.DB)
	current, err := store.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respond.NotFound(w)
		return
	}
	if err != nil {
		respond.InternalError(w, h.Log, "get leaderboard entry", err, zap.String("entry_id", id.Hex()))
		return
	}

	var in entryInput
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
		respond.InternalError(w, h.Log, "update leaderboard entry", err, zap.String("entry_id", id.Hex()))
		return
	}
	respond.JSON(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /api/leaderboard/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := payload.PathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := leaderboardstore.New(h.DB).Delete(ctx, id)
	if err != nil {
		respond.InternalError(w, h.Log, "delete leaderboard entry", err, zap.String("entry_id", id.Hex()))
		return
	}
	if n == 0 {
		respond.NotFound(w)
		return
	}
	respond.NoContent(w)
}
