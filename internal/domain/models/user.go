// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a person tracking activities.
//
// NOTE:
//   - TeamID is a loose reference holding the hex form of a Team's _id.
//     Nothing enforces that the team exists.
//   - Email is the only field the store keeps unique.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	TeamID    *string            `bson:"team_id" json:"team_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
