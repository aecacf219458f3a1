package leaderboardstore_test

import (
	"testing"

	leaderboardstore "github.com/dalemusser/octofit/internal/app/store/leaderboard"
	"github.com/dalemusser/octofit/internal/domain/models"
	"github.com/dalemusser/octofit/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestStore_List_OrderedByRank(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := leaderboardstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateLeaderboardEntry(ctx, "third", nil, 10, 3)
	fx.CreateLeaderboardEntry(ctx, "first", nil, 5, 1)
	fx.CreateLeaderboardEntry(ctx, "second", nil, 50, 2)

	entries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, want := range []string{"first", "second", "third"} {
		if entries[i].UserName != want {
			t.Errorf("entries[%d]: got %q, want %q", i, entries[i].UserName, want)
		}
	}
}

func TestStore_Top(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := leaderboardstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	for i := 1; i <= 5; i++ {
		fx.CreateLeaderboardEntry(ctx, "user", nil, 100*i, i)
	}

	top, err := store.Top(ctx, 2)
	if err != nil {
		t.Fatalf("Top failed: %v", err)
	}
	if len(top) != 2 || top[0].Rank != 1 || top[1].Rank != 2 {
		t.Errorf("expected ranks [1 2], got %+v", top)
	}

	none, err := store.Top(ctx, 0)
	if err != nil {
		t.Fatalf("Top(0) failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no entries for limit 0, got %d", len(none))
	}
}

func TestStore_ListByTeam(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := leaderboardstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	teamA, teamB := "team-a", "team-b"
	fx := testutil.NewFixtures(t, db)
	fx.CreateLeaderboardEntry(ctx, "a2", &teamA, 10, 4)
	fx.CreateLeaderboardEntry(ctx, "b1", &teamB, 10, 1)
	fx.CreateLeaderboardEntry(ctx, "a1", &teamA, 10, 2)

	entries, err := store.ListByTeam(ctx, teamA)
	if err != nil {
		t.Fatalf("ListByTeam failed: %v", err)
	}
	if len(entries) != 2 || entries[0].UserName != "a1" || entries[1].UserName != "a2" {
		t.Errorf("expected [a1 a2], got %+v", entries)
	}
}

func TestStore_ReplaceAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := leaderboardstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateLeaderboardEntry(ctx, "stale", nil, 1, 1)

	fresh := []models.LeaderboardEntry{
		{UserID: "u1", UserName: "one", TotalCalories: 500, TotalActivities: 2, Rank: 1},
		{UserID: "u2", UserName: "two", TotalCalories: 100, TotalActivities: 1, Rank: 2},
	}
	if err := store.ReplaceAll(ctx, fresh); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	n, err := store.Count(ctx, bson.M{"user_name": "stale"})
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 0 {
		t.Error("expected stale entry to be removed")
	}

	entries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 || entries[0].UserName != "one" {
		t.Errorf("unexpected entries after replace: %+v", entries)
	}

	// Replacing with nothing empties the collection.
	if err := store.ReplaceAll(ctx, nil); err != nil {
		t.Fatalf("ReplaceAll(nil) failed: %v", err)
	}
	total, _ := store.Count(ctx, bson.M{})
	if total != 0 {
		t.Errorf("expected empty leaderboard, got %d", total)
	}
}
