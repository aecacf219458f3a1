package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/octofit/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateTeam creates a test team with the given name.
func (f *Fixtures) CreateTeam(ctx context.Context, name string) models.Team {
	f.t.Helper()

	desc := name + " description"
	team := models.Team{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: &desc,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := f.db.Collection("teams").InsertOne(ctx, team); err != nil {
		f.t.Fatalf("failed to create test team: %v", err)
	}
	return team
}

// CreateUser creates a test user. teamID may be nil for a user without a team.
func (f *Fixtures) CreateUser(ctx context.Context, name, email string, teamID *primitive.ObjectID) models.User {
	f.t.Helper()

	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	if teamID != nil {
		hex := teamID.Hex()
		user.TeamID = &hex
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateActivity logs an activity for the user at the given time.
func (f *Fixtures) CreateActivity(ctx context.Context, userID primitive.ObjectID, activityType string, calories int, at time.Time) models.Activity {
	f.t.Helper()

	act := models.Activity{
		ID:           primitive.NewObjectID(),
		UserID:       userID.Hex(),
		ActivityType: activityType,
		Duration:     30,
		Calories:     calories,
		Date:         at.UTC(),
	}
	if _, err := f.db.Collection("activities").InsertOne(ctx, act); err != nil {
		f.t.Fatalf("failed to create test activity: %v", err)
	}
	return act
}

// CreateLeaderboardEntry inserts a leaderboard row directly.
func (f *Fixtures) CreateLeaderboardEntry(ctx context.Context, userName string, teamID *string, calories, rank int) models.LeaderboardEntry {
	f.t.Helper()

	entry := models.LeaderboardEntry{
		ID:              primitive.NewObjectID(),
		UserID:          primitive.NewObjectID().Hex(),
		UserName:        userName,
		TeamID:          teamID,
		TotalCalories:   calories,
		TotalActivities: 1,
		Rank:            rank,
		UpdatedAt:       time.Now().UTC(),
	}
	if _, err := f.db.Collection("leaderboard").InsertOne(ctx, entry); err != nil {
		f.t.Fatalf("failed to create test leaderboard entry: %v", err)
	}
	return entry
}

// CreateWorkout creates a test workout with a single exercise.
func (f *Fixtures) CreateWorkout(ctx context.Context, name, difficulty, category string) models.Workout {
	f.t.Helper()

	reps := 10
	w := models.Workout{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: name + " description",
		Difficulty:  difficulty,
		Duration:    30,
		Category:    category,
		Exercises:   []models.Exercise{{Name: "Push-ups", Sets: 3, Reps: &reps}},
	}
	if _, err := f.db.Collection("workouts").InsertOne(ctx, w); err != nil {
		f.t.Fatalf("failed to create test workout: %v", err)
	}
	return w
}
