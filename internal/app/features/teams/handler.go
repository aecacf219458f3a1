// internal/app/features/teams/handler.go
package teams

import (
	"strings"

	"github.com/dalemusser/octofit/internal/app/system/htmlsanitize"
	"github.com/dalemusser/octofit/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves /api/teams.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

type teamInput struct {
	Name        *string `json:"name" validate:"required,max=100"`
	Description *string `json:"description"`
}

func inputFrom(t models.Team) teamInput {
	return teamInput{Name: &t.Name, Description: t.Description}
}

// apply copies the input onto t. Markup in the description is stripped;
// a description that ends up empty is stored as null.
func (in teamInput) apply(t *models.Team) {
	t.Name = strings.TrimSpace(*in.Name)
	t.Description = htmlsanitize.StripTagsPtr(in.Description)
	if t.Description != nil && *t.Description == "" {
		t.Description = nil
	}
}
