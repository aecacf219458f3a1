// internal/app/features/teams/list.go
package teams

import (
	"context"
	"errors"
	"net/http"

	teamstore "github.com/dalemusser/octofit/internal/app/store/teams"
	"github.com/dalemusser/octofit/internal/app/system/payload"
	"github.com/dalemusser/octofit/internal/app/system/respond"
	"github.com/dalemusser/octofit/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ServeList handles GET /api/teams.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := teamstore.New(h.DB).List(ctx)
	if err != nil {
		respond.InternalError(w, h.Log, "list teams", err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

// ServeView handles GET /api/teams/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, ok := payload.PathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	t, err := teamstore.New(h.DB).GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respond.NotFound(w)
		return
	}
	if err != nil {
		respond.InternalError(w, h.Log, "get team", err, zap.String("team_id", id.Hex()))
		return
	}
	respond.JSON(w, http.StatusOK, t)
}
