// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/octofit/internal/app/system/metrics"
	"github.com/dalemusser/octofit/internal/app/system/ratelimit"
	"github.com/dalemusser/octofit/internal/app/system/tasks"
	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app. The pointers are
// shared by every hook that receives a copy.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	Registry *prometheus.Registry
	Metrics  *metrics.Collector
	Limiter  *ratelimit.Limiter
	Tasks    *tasks.Scheduler
}
