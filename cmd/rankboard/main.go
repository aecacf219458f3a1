// Command rankboard regenerates the leaderboard from the current users,
// teams and activities. Readers may briefly see a partial leaderboard when
// the deployment does not support transactions.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/dalemusser/octofit/internal/app/bootstrap"
	"github.com/dalemusser/octofit/internal/app/system/leaderboard"
	"github.com/dalemusser/octofit/internal/app/system/timeouts"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		logger.Error("leaderboard regeneration failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(logger *zap.Logger) error {
	coreCfg, appCfg, err := bootstrap.LoadConfig(logger)
	if err != nil {
		return err
	}
	if err := bootstrap.ValidateConfig(coreCfg, appCfg, logger); err != nil {
		return err
	}
	timeouts.ConfigureFromEnv()

	ctx, cancel := timeouts.WithTimeout(context.Background(), timeouts.Long(), logger, "leaderboard regeneration")
	defer cancel()

	client, err := bootstrap.OpenMongo(ctx, appCfg, logger)
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background())

	_, err = leaderboard.Regenerate(ctx, client.Database(appCfg.MongoDatabase), time.Now(), logger, nil)
	return err
}
