// internal/domain/models/leaderboard.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LeaderboardEntry is one row of the materialized leaderboard.
//
// UserName and TeamName are copied from the users and teams collections when
// the leaderboard is regenerated. They are a snapshot: renaming a user or team
// is not reflected here until the next regeneration.
type LeaderboardEntry struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID          string             `bson:"user_id" json:"user_id"`
	UserName        string             `bson:"user_name" json:"user_name"`
	TeamID          *string            `bson:"team_id" json:"team_id"`
	TeamName        *string            `bson:"team_name" json:"team_name"`
	TotalCalories   int                `bson:"total_calories" json:"total_calories"`
	TotalActivities int                `bson:"total_activities" json:"total_activities"`
	Rank            int                `bson:"rank" json:"rank"` // 1-based
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}
