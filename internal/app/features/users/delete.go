// internal/app/features/users/delete.go
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

// HandleDelete handles DELETE /api/users/{id}. Activities and leaderboard
// rows that reference the user are left in place.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := payload.PathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := userstore.New(h.DB).Delete(ctx, id)
	if err != nil {
		respond.InternalError(w, h.Log, "delete user", err, zap.String("user_id", id.Hex()))
		return
	}
	if n == 0 {
		respond.NotFound(w)
		return
	}
	h.Log.Info("user deleted", zap.String("user_id", id.Hex()))
	respond.NoContent(w)
}
