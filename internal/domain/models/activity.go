// internal/domain/models/activity.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity is a single logged exercise session.
// Distance is only populated for distance-based types (running, cycling, swimming).
type Activity struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID       string             `bson:"user_id" json:"user_id"`
	ActivityType string             `bson:"activity_type" json:"activity_type"`
	Duration     int                `bson:"duration" json:"duration"` // minutes
	Calories     int                `bson:"calories" json:"calories"`
	Distance     *float64           `bson:"distance" json:"distance"` // km
	Date         time.Time          `bson:"date" json:"date"`
	Notes        *string            `bson:"notes" json:"notes"`
}
