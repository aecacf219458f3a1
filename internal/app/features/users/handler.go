// internal/app/features/users/handler.go
package users

import (
	"github.com/dalemusser/octofit/internal/app/system/normalize"
	"github.com/dalemusser/octofit/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves /api/users.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

// userInput is the writable part of a user. Pointers tell a missing field
// from an empty one.
type userInput struct {
	Name   *string `json:"name" validate:"required,max=100"`
	Email  *string `json:"email" validate:"required,email,max=254"`
	TeamID *string `json:"team_id" validate:"max=100"`
}

func inputFrom(u models.User) userInput {
	return userInput{Name: &u.Name, Email: &u.Email, TeamID: u.TeamID}
}

func (in userInput) apply(u *models.User) {
	u.Name = normalize.Name(*in.Name)
	u.Email = normalize.Email(*in.Email)
	u.TeamID = normalize.Ref(in.TeamID)
}
