// internal/app/features/activities/list.go
package activities

import (
	"context"
	"net/http"

	activitystore "github.com/dalemusser/octofit/internal/app/store/activities"
	"github.com/dalemusser/octofit/internal/app/system/payload"
	"github.com/dalemusser/octofit/internal/app/system/respond"
	"github.com/dalemusser/octofit/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeList handles GET /api/activities.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := activitystore.New(h.DB).List(ctx)
	if err != nil {
		respond.InternalError(w, h.Log, "list activities", err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

// ServeByUser handles GET /api/activities/by_user?user_id=.
func (h *Handler) ServeByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := payload.RequiredParam(w, r, "user_id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := activitystore.New(h.DB).ListByUser(ctx, userID)
	if err != nil {
		respond.InternalError(w, h.Log, "list activities by user", err, zap.String("user_id", userID))
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

// ServeByType handles GET /api/activities/by_type?activity_type=.
// The match is exact and case-sensitive.
func (h *Handler) ServeByType(w http.ResponseWriter, r *http.Request) {
	activityType, ok := payload.RequiredParam(w, r, "activity_type")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := activitystore.New(h.DB).ListByType(ctx, activityType)
	if err != nil {
		respond.InternalError(w, h.Log, "list activities by type", err, zap.String("activity_type", activityType))
		return
	}
	respond.JSON(w, http.StatusOK, list)
}
