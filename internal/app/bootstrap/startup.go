// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/octofit/internal/app/system/tasks"
	"github.com/dalemusser/octofit/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs after the schema is in place and before the handler is
// built. It applies TIMEOUT_* overrides and starts background jobs.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		cur := timeouts.Current()
		logger.Info("timeouts overridden from environment",
			zap.Int("count", n),
			zap.Duration("short", cur.Short),
			zap.Duration("medium", cur.Medium),
			zap.Duration("long", cur.Long))
	}

	registerJobs(deps, appCfg, logger)
	deps.Tasks.Start()
	return nil
}

func registerJobs(deps DBDeps, appCfg AppConfig, logger *zap.Logger) {
	if appCfg.LeaderboardRefreshInterval <= 0 {
		logger.Info("leaderboard refresh disabled; regenerate with cmd/rankboard")
		return
	}
	deps.Tasks.Add(tasks.LeaderboardRefreshJob(deps.MongoDatabase, logger, deps.Metrics, appCfg.LeaderboardRefreshInterval))
	logger.Info("leaderboard refresh scheduled", zap.Duration("interval", appCfg.LeaderboardRefreshInterval))
}
