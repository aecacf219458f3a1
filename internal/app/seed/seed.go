// Package seed rebuilds the demo data set: two teams of five heroes, a few
// weeks of random activities per hero, the leaderboard computed from them,
// and eight canned workout programs.
package seed

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	activitystore "github.com/dalemusser/octofit/internal/app/store/activities"
	leaderboardstore "github.com/dalemusser/octofit/internal/app/store/leaderboard"
	teamstore "github.com/dalemusser/octofit/internal/app/store/teams"
	userstore "github.com/dalemusser/octofit/internal/app/store/users"
	workoutstore "github.com/dalemusser/octofit/internal/app/store/workouts"
	"github.com/dalemusser/octofit/internal/app/system/leaderboard"
	"github.com/dalemusser/octofit/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Counts is the number of documents in each collection after Run.
type Counts struct {
	Teams       int64
	Users       int64
	Activities  int64
	Leaderboard int64
	Workouts    int64
}

// Options carries the optional collaborators of Run.
type Options struct {
	Log      *zap.Logger
	Recorder leaderboard.Recorder
}

// Run clears all five collections and repopulates them. rng drives every
// random choice so a fixed seed gives the same data set. now anchors the
// activity dates (each within the 30 days before now).
func Run(ctx context.Context, db *mongo.Database, rng *rand.Rand, now time.Time, opts Options) (Counts, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	now = now.UTC()

	users := userstore.New(db)
	teams := teamstore.New(db)
	acts := activitystore.New(db)
	lb := leaderboardstore.New(db)
	workouts := workoutstore.New(db)

	for name, clear := range map[string]func(context.Context) (int64, error){
		"users":       users.DeleteAll,
		"teams":       teams.DeleteAll,
		"activities":  acts.DeleteAll,
		"leaderboard": lb.DeleteAll,
		"workouts":    workouts.DeleteAll,
	} {
		n, err := clear(ctx)
		if err != nil {
			return Counts{}, fmt.Errorf("clear %s: %w", name, err)
		}
		log.Debug("collection cleared", zap.String("collection", name), zap.Int64("deleted", n))
	}
	log.Info("existing data cleared")

	var roster []models.User
	for _, ts := range teamSeeds {
		desc := ts.description
		team, err := teams.Create(ctx, models.Team{Name: ts.name, Description: &desc})
		if err != nil {
			return Counts{}, fmt.Errorf("create team %q: %w", ts.name, err)
		}
		teamID := team.ID.Hex()
		for _, us := range ts.members {
			tid := teamID
			u, err := users.Create(ctx, models.User{Name: us.name, Email: us.email, TeamID: &tid})
			if err != nil {
				return Counts{}, fmt.Errorf("create user %q: %w", us.email, err)
			}
			roster = append(roster, u)
		}
	}
	log.Info("teams and users created", zap.Int("teams", len(teamSeeds)), zap.Int("users", len(roster)))

	var generated []models.Activity
	for _, u := range roster {
		generated = append(generated, RandomActivities(rng, u, now)...)
	}
	if _, err := acts.CreateMany(ctx, generated); err != nil {
		return Counts{}, fmt.Errorf("create activities: %w", err)
	}
	log.Info("activities created", zap.Int("activities", len(generated)))

	if _, err := leaderboard.Regenerate(ctx, db, now, log, opts.Recorder); err != nil {
		return Counts{}, err
	}

	for _, w := range workoutSeeds() {
		if _, err := workouts.Create(ctx, w); err != nil {
			return Counts{}, fmt.Errorf("create workout %q: %w", w.Name, err)
		}
	}
	log.Info("workout programs created", zap.Int("workouts", len(workoutSeeds())))

	return countAll(ctx, users, teams, acts, lb, workouts)
}

// RandomActivities returns 5 to 8 activities for u. Duration is 30 to 120
// minutes, calories are duration times 8 to 12, and distance (3 to 15 km,
// two decimals) is only set for running, cycling and swimming.
func RandomActivities(rng *rand.Rand, u models.User, now time.Time) []models.Activity {
	n := 5 + rng.Intn(4)
	out := make([]models.Activity, 0, n)
	for i := 0; i < n; i++ {
		typ := ActivityTypes[rng.Intn(len(ActivityTypes))]
		duration := 30 + rng.Intn(91)
		calories := duration * (8 + rng.Intn(5))

		var distance *float64
		if distanceTypes[typ] {
			d := math.Round((3+rng.Float64()*12)*100) / 100
			distance = &d
		}
		notes := fmt.Sprintf("%s completed %s", u.Name, typ)

		out = append(out, models.Activity{
			UserID:       u.ID.Hex(),
			ActivityType: typ,
			Duration:     duration,
			Calories:     calories,
			Distance:     distance,
			Date:         now.AddDate(0, 0, -rng.Intn(31)),
			Notes:        &notes,
		})
	}
	return out
}

type counter interface {
	Count(ctx context.Context, filter bson.M) (int64, error)
}

func countAll(ctx context.Context, users, teams, acts, lb, workouts counter) (Counts, error) {
	var c Counts
	for _, step := range []struct {
		name string
		src  counter
		dst  *int64
	}{
		{"teams", teams, &c.Teams},
		{"users", users, &c.Users},
		{"activities", acts, &c.Activities},
		{"leaderboard", lb, &c.Leaderboard},
		{"workouts", workouts, &c.Workouts},
	} {
		n, err := step.src.Count(ctx, bson.M{})
		if err != nil {
			return Counts{}, fmt.Errorf("count %s: %w", step.name, err)
		}
		*step.dst = n
	}
	return c, nil
}
