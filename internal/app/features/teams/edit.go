// internal/app/features/teams/edit.go
package teams

import (
	"context"
	"errors"
	"net/http"

	teamstore "github.com/dalemusser/octofit/internal/app/store/teams"
	"github.com/dalemusser/octofit/internal/app/system/payload"
	"github.com/dalemusser/octofit/internal/app/system/respond"
	"github.com/dalemusser/octofit/internal/app/system/timeouts"
	"github.com/dalemusser/octofit/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleCreate handles POST /api/teams.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in teamInput
	if !payload.Decode(w, r, &in) || !payload.Valid(w, in) {
		return
	}
	var t models.Team
	in.apply(&t)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := teamstore.New(h.DB).Create(ctx, t)
	if err != nil {
		respond.InternalError(w, h.Log, "create team", err)
		return
	}
	h.Log.Info("team created", zap.String("team_id", created.ID.Hex()), zap.String("name", created.Name))
	respond.JSON(w, http.StatusCreated, created)
}

// HandleUpdate handles PUT /api/teams/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) { h.save(w, r, false) }

// HandlePatch handles PATCH /api/teams/{id}.
func (h *Handler) HandlePatch(w http.ResponseWriter, r *http.Request) { h.save(w, r, true) }

func (h *Handler) save(w http.ResponseWriter, r *http.Request, partial bool) {
	id, ok := payload.PathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := teamstore.New(h.DB)
	current, err := store.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respond.NotFound(w)
		return
	}
	if err != nil {
		respond.InternalError(w, h.Log, "get team", err, zap.String("team_id", id.Hex()))
		return
	}

	var in teamInput
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
		respond.InternalError(w, h.Log, "update team", err, zap.String("team_id", id.Hex()))
		return
	}
	respond.JSON(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /api/teams/{id}. Members keep their team_id.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := payload.PathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := teamstore.New(h.DB).Delete(ctx, id)
	if err != nil {
		respond.InternalError(w, h.Log, "delete team", err, zap.String("team_id", id.Hex()))
		return
	}
	if n == 0 {
		respond.NotFound(w)
		return
	}
	h.Log.Info("team deleted", zap.String("team_id", id.Hex()))
	respond.NoContent(w)
}
