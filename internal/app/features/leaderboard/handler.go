// internal/app/features/leaderboard/handler.go
package leaderboard

import (
	"github.com/dalemusser/octofit/internal/app/system/normalize"
	"github.com/dalemusser/octofit/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves /api/leaderboard. Rows are normally written by the
// leaderboard regeneration; the write routes exist for manual corrections
// and are overwritten by the next regeneration.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

const defaultTopLimit = 10

type entryInput struct {
	UserID          *string `json:"user_id" validate:"required,max=100"`
	UserName        *string `json:"user_name" validate:"required,max=100"`
	TeamID          *string `json:"team_id" validate:"max=100"`
	TeamName        *string `json:"team_name" validate:"max=100"`
	TotalCalories   *int    `json:"total_calories" validate:"min=0"`
	TotalActivities *int    `json:"total_activities" validate:"min=0"`
	Rank            *int    `json:"rank" validate:"min=0"`
}

func inputFrom(e models.LeaderboardEntry) entryInput {
	return entryInput{
		UserID:          &e.UserID,
		UserName:        &e.UserName,
		TeamID:          e.TeamID,
		TeamName:        e.TeamName,
		TotalCalories:   &e.TotalCalories,
		TotalActivities: &e.TotalActivities,
		Rank:            &e.Rank,
	}
}

// apply copies the input onto e. Omitted counters default to zero.
func (in entryInput) apply(e *models.LeaderboardEntry) {
	e.UserID = normalize.QueryParam(*in.UserID)
	e.UserName = normalize.Name(*in.UserName)
	e.TeamID = normalize.Ref(in.TeamID)
	e.TeamName = normalize.Ref(in.TeamName)
	e.TotalCalories = intOr0(in.TotalCalories)
	e.TotalActivities = intOr0(in.TotalActivities)
	e.Rank = intOr0(in.Rank)
}

func intOr0(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
