// internal/app/system/tasks/jobs.go
package tasks

import (
	"context"
	"time"

	"github.com/dalemusser/octofit/internal/app/system/leaderboard"
	"github.com/dalemusser/octofit/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// LeaderboardRefreshJob regenerates the leaderboard every interval.
// rec may be nil.
func LeaderboardRefreshJob(db *mongo.Database, logger *zap.Logger, rec leaderboard.Recorder, interval time.Duration) Job {
	return Job{
		Name:     "leaderboard-refresh",
		Interval: interval,
		Timeout:  timeouts.Long(),
		Run: func(ctx context.Context) error {
			_, err := leaderboard.Regenerate(ctx, db, time.Now(), logger, rec)
			return err
		},
	}
}
