// Command populate wipes the OctoFit database and fills it with the demo
// data set, then prints how many documents each collection holds.
//
//	populate --mongo_uri mongodb://localhost:27017 --populate_seed 42
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/dalemusser/octofit/internal/app/bootstrap"
	"github.com/dalemusser/octofit/internal/app/seed"
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
		logger.Error("populate failed", zap.Error(err))
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

	ctx, cancel := timeouts.WithTimeout(context.Background(), timeouts.Batch(), logger, "populate")
	defer cancel()

	client, err := bootstrap.OpenMongo(ctx, appCfg, logger)
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background())

	deps := bootstrap.DBDeps{MongoClient: client, MongoDatabase: client.Database(appCfg.MongoDatabase)}
	if err := bootstrap.EnsureSchema(ctx, coreCfg, appCfg, deps, logger); err != nil {
		return err
	}

	seedValue := int64(appCfg.PopulateSeed)
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}
	logger.Info("populating database",
		zap.String("database", appCfg.MongoDatabase),
		zap.Int64("seed", seedValue))

	counts, err := seed.Run(ctx, deps.MongoDatabase, rand.New(rand.NewSource(seedValue)), time.Now(), seed.Options{Log: logger})
	if err != nil {
		return err
	}

	fmt.Println("Database populated successfully!")
	fmt.Printf("Created %d teams\n", counts.Teams)
	fmt.Printf("Created %d users\n", counts.Users)
	fmt.Printf("Created %d activities\n", counts.Activities)
	fmt.Printf("Created %d leaderboard entries\n", counts.Leaderboard)
	fmt.Printf("Created %d workouts\n", counts.Workouts)
	return nil
}
