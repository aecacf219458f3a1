// internal/app/features/activities/view.go
package activities

import (
	"context"
	"errors"
	"net/http"

	activitystore "github.com/dalemusser/octofit/internal/app/store/activities"
	"github.com/dalemusser/octofit/internal/app/system/payload"
	"github.com/dalemusser/octofit/internal/app/system/respond"
	"github.com/dalemusser/octofit/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ServeView handles GET /api/activities/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, ok := payload.PathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	a, err := activitystore.New(h.DB).GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respond.NotFound(w)
		return
	}
	if err != nil {
		respond.InternalError(w, h.Log, "get activity", err, zap.String("activity_id", id.Hex()))
		return
	}
	respond.JSON(w, http.StatusOK, a)
}
