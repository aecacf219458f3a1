// internal/app/features/activities/handler.go
package activities

import (
	"strings"
	"time"

	"github.com/dalemusser/octofit/internal/app/system/htmlsanitize"
	"github.com/dalemusser/octofit/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves /api/activities.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

type activityInput struct {
	UserID       *string    `json:"user_id" validate:"required,max=100"`
	ActivityType *string    `json:"activity_type" validate:"required,max=50"`
	Duration     *int       `json:"duration" validate:"required,min=0"`
	Calories     *int       `json:"calories" validate:"required,min=0"`
	Distance     *float64   `json:"distance" validate:"min=0"`
	Date         *time.Time `json:"date" validate:"required"`
	Notes        *string    `json:"notes"`
}

func inputFrom(a models.Activity) activityInput {
	return activityInput{
		UserID:       &a.UserID,
		ActivityType: &a.ActivityType,
		Duration:     &a.Duration,
		Calories:     &a.Calories,
		Distance:     a.Distance,
		Date:         &a.Date,
		Notes:        a.Notes,
	}
}

func (in activityInput) apply(a *models.Activity) {
	a.UserID = strings.TrimSpace(*in.UserID)
	a.ActivityType = strings.TrimSpace(*in.ActivityType)
	a.Duration = *in.Duration
	a.Calories = *in.Calories
	a.Distance = in.Distance
	a.Date = in.Date.UTC()
	a.Notes = htmlsanitize.StripTagsPtr(in.Notes)
	if a.Notes != nil && *a.Notes == "" {
		a.Notes = nil
	}
}
