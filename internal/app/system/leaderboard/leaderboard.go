// Package leaderboard computes the materialized leaderboard from users,
// teams and activities, and replaces the stored snapshot with the result.
package leaderboard

import (
	"context"
	"fmt"
	"time"

	activitystore "github.com/dalemusser/octofit/internal/app/store/activities"
	leaderboardstore "github.com/dalemusser/octofit/internal/app/store/leaderboard"
	teamstore "github.com/dalemusser/octofit/internal/app/store/teams"
	userstore "github.com/dalemusser/octofit/internal/app/store/users"
	"github.com/dalemusser/octofit/internal/app/system/txn"
	"github.com/dalemusser/octofit/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Aggregate returns one entry per roster user, in roster order.
//
// Totals are the sum of calories and the count of activities whose UserID
// equals the user's hex id. Rank is the 1-based roster position; entries are
// not re-ordered by calories. A user without a team, or whose team is not in
// teams, gets a nil TeamName.
func Aggregate(roster []models.User, teams []models.Team, acts []models.Activity, updatedAt time.Time) []models.LeaderboardEntry {
	teamNames := make(map[string]string, len(teams))
	for _, t := range teams {
		teamNames[t.ID.Hex()] = t.Name
	}

	type totals struct{ calories, count int }
	byUser := make(map[string]totals, len(roster))
	for _, a := range acts {
		t := byUser[a.UserID]
		t.calories += a.Calories
		t.count++
		byUser[a.UserID] = t
	}

	out := make([]models.LeaderboardEntry, 0, len(roster))
	for i, u := range roster {
		id := u.ID.Hex()
		e := models.LeaderboardEntry{
			UserID:          id,
			UserName:        u.Name,
			TotalCalories:   byUser[id].calories,
			TotalActivities: byUser[id].count,
			Rank:            i + 1,
			UpdatedAt:       updatedAt,
		}
		if u.TeamID != nil {
			teamID := *u.TeamID
			e.TeamID = &teamID
			if name, ok := teamNames[teamID]; ok {
				e.TeamName = &name
			}
		}
		out = append(out, e)
	}
	return out
}

// Recorder receives the outcome of each regeneration.
// *metrics.Collector satisfies it.
type Recorder interface {
	RecordRegeneration(entries int, took time.Duration, at time.Time, err error)
}

// Regenerate rebuilds the leaderboard collection from the current users,
// teams and activities. The roster is every user in insertion order.
// The delete-all/insert-all pair runs in a transaction when the deployment
// supports one; otherwise readers may briefly see a partial leaderboard.
// log and rec may be nil.
func Regenerate(ctx context.Context, db *mongo.Database, now time.Time, log *zap.Logger, rec Recorder) (int, error) {
	if log == nil {
		log = zap.NewNop()
	}
	start := time.Now()

	n, err := regenerate(ctx, db, now.UTC(), log)
	took := time.Since(start)
	if rec != nil {
		rec.RecordRegeneration(n, took, now, err)
	}
	if err != nil {
		log.Error("leaderboard regeneration failed", zap.Error(err), zap.Duration("took", took))
		return 0, err
	}
	log.Info("leaderboard regenerated", zap.Int("entries", n), zap.Duration("took", took))
	return n, nil
}

func regenerate(ctx context.Context, db *mongo.Database, now time.Time, log *zap.Logger) (int, error) {
	roster, err := userstore.New(db).List(ctx)
	if err != nil {
		return 0, fmt.Errorf("load users: %w", err)
	}
	teamList, err := teamstore.New(db).List(ctx)
	if err != nil {
		return 0, fmt.Errorf("load teams: %w", err)
	}
	acts, err := activitystore.New(db).List(ctx)
	if err != nil {
		return 0, fmt.Errorf("load activities: %w", err)
	}

	entries := Aggregate(roster, teamList, acts, now)

	lb := leaderboardstore.New(db)
	err = txn.Run(ctx, db.Client(), log, func(ctx context.Context) error {
		return lb.ReplaceAll(ctx, entries)
	})
	if err != nil {
		return 0, fmt.Errorf("replace leaderboard: %w", err)
	}
	return len(entries), nil
}
