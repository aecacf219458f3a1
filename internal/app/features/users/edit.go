// internal/app/features/users/edit.go
package users

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/dalemusser/octofit/internal/app/store/users"
	"github.com/dalemusser/octofit/internal/app/system/payload"
	"github.com/dalemusser/octofit/internal/app/system/respond"
	"github.com/dalemusser/octofit/internal/app/system/timeouts"
	"github.com/dalemusser/octofit/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const dupEmailMsg = "user with this email already exists."

// HandleCreate handles POST /api/users.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in userInput
	if !payload.Decode(w, r, &in) || !payload.Valid(w, in) {
		return
	}
	var u models.User
	in.apply(&u)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := userstore.New(h.DB).Create(ctx, u)
	if errors.Is(err, userstore.ErrDuplicateEmail) {
		respond.Validation(w, respond.FieldErrors{"email": {dupEmailMsg}})
		return
	}
	if err != nil {
		respond.InternalError(w, h.Log, "create user", err)
		return
	}
	h.Log.Info("user created", zap.String("user_id", created.ID.Hex()))
	respond.JSON(w, http.StatusCreated, created)
}

// HandleUpdate handles PUT /api/users/{id}. Every writable field is required.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, false)
}

// HandlePatch handles PATCH /api/users/{id}. Fields absent from the body
// keep their stored values.
func (h *Handler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, true)
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request, partial bool) {
	id, ok := payload.PathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := userstore.New(h.DB)
	current, err := store.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respond.NotFound(w)
		return
	}
	if err != nil {
		respond.InternalError(w, h.Log, "get user", err, zap.String("user_id", id.Hex()))
		return
	}

	var in userInput
	if partial {
		in = inputFrom(current)
	}
	if !payload.Decode(w, r, &in) || !payload.Valid(w, in) {
		return
	}
	in.apply(&current)

	updated, err := store.Update(ctx, current)
	switch {
	case errors.Is(err, userstore.ErrDuplicateEmail):
		respond.Validation(w, respond.FieldErrors{"email": {dupEmailMsg}})
		return
	case errors.Is(err, mongo.ErrNoDocuments):
		respond.NotFound(w)
		return
	case err != nil:
		respond.InternalError(w, h.Log, "update user", err, zap.String("user_id", id.Hex()))
		return
	}
	respond.JSON(w, http.StatusOK, updated)
}
