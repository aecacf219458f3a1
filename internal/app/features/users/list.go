// internal/app/features/users/list.go
package users

import (
	"context"
	"net/http"

	userstore "github.com/dalemusser/octofit/internal/app/store/users"
	"github.com/dalemusser/octofit/internal/app/system/payload"
	"github.com/dalemusser/octofit/internal/app/system/respond"
	"github.com/dalemusser/octofit/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeList handles GET /api/users.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := userstore.New(h.DB).List(ctx)
	if err != nil {
		respond.InternalError(w, h.Log, "list users", err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

// ServeByTeam handles GET /api/users/by_team?team_id=.
func (h *Handler) ServeByTeam(w http.ResponseWriter, r *http.Request) {
	teamID, ok := payload.RequiredParam(w, r, "team_id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := userstore.New(h.DB).ListByTeam(ctx, teamID)
	if err != nil {
		respond.InternalError(w, h.Log, "list users by team", err, zap.String("team_id", teamID))
		return
	}
	respond.JSON(w, http.StatusOK, list)
}
