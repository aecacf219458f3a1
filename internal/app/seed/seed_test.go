package seed_test

import (
	"math/rand"
	"testing"
	"time"

	leaderboardstore "github.com/dalemusser/octofit/internal/app/store/leaderboard"
	userstore "github.com/dalemusser/octofit/internal/app/store/users"
	"github.com/dalemusser/octofit/internal/app/seed"
	"github.com/dalemusser/octofit/internal/domain/models"
	"github.com/dalemusser/octofit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap/zaptest"
)

func TestRandomActivities_Ranges(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	u := models.User{ID: primitive.NewObjectID(), Name: "Thor Odinson"}

	for i := 0; i < 50; i++ {
		acts := seed.RandomActivities(rng, u, now)
		require.GreaterOrEqual(t, len(acts), 5)
		require.LessOrEqual(t, len(acts), 8)

		for _, a := range acts {
			assert.Equal(t, u.ID.Hex(), a.UserID)
			assert.Contains(t, seed.ActivityTypes, a.ActivityType)
			assert.GreaterOrEqual(t, a.Duration, 30)
			assert.LessOrEqual(t, a.Duration, 120)
			assert.GreaterOrEqual(t, a.Calories, a.Duration*8)
			assert.LessOrEqual(t, a.Calories, a.Duration*12)
			assert.False(t, a.Date.After(now))
			assert.False(t, a.Date.Before(now.AddDate(0, 0, -30)))
			require.NotNil(t, a.Notes)
			assert.Equal(t, "Thor Odinson completed "+a.ActivityType, *a.Notes)

			switch a.ActivityType {
			case "Running", "Cycling", "Swimming":
				require.NotNil(t, a.Distance)
				assert.GreaterOrEqual(t, *a.Distance, 3.0)
				assert.LessOrEqual(t, *a.Distance, 15.0)
			default:
				assert.Nil(t, a.Distance)
			}
		}
	}
}

func TestRandomActivities_SeedIsDeterministic(t *testing.T) {
	now := time.Now().UTC()
	u := models.User{ID: primitive.NewObjectID(), Name: "Hulk"}

	a := seed.RandomActivities(rand.New(rand.NewSource(7)), u, now)
	b := seed.RandomActivities(rand.New(rand.NewSource(7)), u, now)
	assert.Equal(t, a, b)
}

func TestRun(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Pre-existing data is wiped.
	fx.CreateUser(ctx, "Leftover", "leftover@example.com", nil)
	fx.CreateWorkout(ctx, "Leftover", "Beginner", "Mixed")

	counts, err := seed.Run(ctx, db, rand.New(rand.NewSource(1)), time.Now(), seed.Options{Log: zaptest.NewLogger(t)})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if counts.Teams != 2 {
		t.Errorf("got %d teams, want 2", counts.Teams)
	}
	if counts.Users != 10 {
		t.Errorf("got %d users, want 10", counts.Users)
	}
	if counts.Activities < 50 || counts.Activities > 80 {
		t.Errorf("got %d activities, want 50..80", counts.Activities)
	}
	if counts.Leaderboard != 10 {
		t.Errorf("got %d leaderboard entries, want 10", counts.Leaderboard)
	}
	if counts.Workouts != 8 {
		t.Errorf("got %d workouts, want 8", counts.Workouts)
	}

	users, err := userstore.New(db).List(ctx)
	if err != nil {
		t.Fatalf("List users failed: %v", err)
	}
	if users[0].Email != "tony.stark@avengers.com" {
		t.Errorf("got first user %q, want %q", users[0].Email, "tony.stark@avengers.com")
	}

	entries, err := leaderboardstore.New(db).List(ctx)
	if err != nil {
		t.Fatalf("List leaderboard failed: %v", err)
	}
	var total int64
	for i, e := range entries {
		if e.Rank != i+1 {
			t.Errorf("entry %d has rank %d", i, e.Rank)
		}
		if e.TeamName == nil {
			t.Errorf("entry %q has no team name", e.UserName)
		}
		total += int64(e.TotalActivities)
	}
	if entries[0].UserName != "Tony Stark (Iron Man)" || *entries[0].TeamName != "Team Marvel" {
		t.Errorf("unexpected first entry: %q / %v", entries[0].UserName, entries[0].TeamName)
	}
	if entries[9].UserName != "Arthur Curry (Aquaman)" || *entries[9].TeamName != "Team DC" {
		t.Errorf("unexpected last entry: %q / %v", entries[9].UserName, entries[9].TeamName)
	}
	if total != counts.Activities {
		t.Errorf("leaderboard counts %d activities, collection has %d", total, counts.Activities)
	}
}

func TestRun_Twice(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := seed.Run(ctx, db, rand.New(rand.NewSource(3)), time.Now(), seed.Options{}); err != nil {
		t.Fatalf("first Run failed: %v", err)
	}
	counts, err := seed.Run(ctx, db, rand.New(rand.NewSource(3)), time.Now(), seed.Options{})
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}
	if counts.Users != 10 || counts.Teams != 2 || counts.Workouts != 8 {
		t.Errorf("unexpected counts after second run: %+v", counts)
	}
}
