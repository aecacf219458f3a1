// internal/app/features/leaderboard/list.go
package leaderboard

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	leaderboardstore "github.com/dalemusser/octofit/internal/app/store/leaderboard"
	"github.com/dalemusser/octofit/internal/app/system/payload"
	"github.com/dalemusser/octofit/internal/app/system/respond"
	"github.com/dalemusser/octofit/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// ServeList handles GET /api/leaderboard (rank ascending).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := leaderboardstore.New(h.DB).List(ctx)
	if err != nil {
		respond.InternalError(w, h.Log, "list leaderboard", err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

// ServeTopUsers handles GET /api/leaderboard/top_users?limit=N.
// limit defaults to 10; limit=0 yields an empty list.
func (h *Handler) ServeTopUsers(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(query.Get(r, "limit"))
	if !ok {
		respond.BadParam(w, "limit must be a non-negative integer")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := leaderboardstore.New(h.DB).Top(ctx, limit)
	if err != nil {
		respond.InternalError(w, h.Log, "top users", err, zap.Int64("limit", limit))
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

func parseLimit(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultTopLimit, true
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// ServeByTeam handles GET /api/leaderboard/by_team?team_id=.
func (h *Handler) ServeByTeam(w http.ResponseWriter, r *http.Request) {
	teamID, ok := payload.RequiredParam(w, r, "team_id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := leaderboardstore.New(h.DB).ListByTeam(ctx, teamID)
	if err != nil {
		respond.InternalError(w, h.Log, "list leaderboard by team", err, zap.String("team_id", teamID))
		return
	}
	respond.JSON(w, http.StatusOK, list)
}
