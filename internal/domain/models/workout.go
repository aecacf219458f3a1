// internal/domain/models/workout.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workout is a suggested training program.
type Workout struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Difficulty  string             `bson:"difficulty" json:"difficulty"` // Beginner | Intermediate | Advanced (free text)
	Duration    int                `bson:"duration" json:"duration"`     // minutes
	Category    string             `bson:"category" json:"category"`
	Exercises   []Exercise         `bson:"exercises" json:"exercises"`
}

// Exercise is one step of a Workout. Either Reps or Duration is set.
type Exercise struct {
	Name     string `bson:"name" json:"name"`
	Sets     int    `bson:"sets" json:"sets"`
	Reps     *int   `bson:"reps,omitempty" json:"reps,omitempty"`
	Duration string `bson:"duration,omitempty" json:"duration,omitempty"` // e.g. "60s", "5min"
}
