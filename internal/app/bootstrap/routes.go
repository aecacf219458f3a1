// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	activitiesfeature "github.com/dalemusser/octofit/internal/app/features/activities"
	apirootfeature "github.com/dalemusser/octofit/internal/app/features/apiroot"
	healthfeature "github.com/dalemusser/octofit/internal/app/features/health"
	leaderboardfeature "github.com/dalemusser/octofit/internal/app/features/leaderboard"
	teamsfeature "github.com/dalemusser/octofit/internal/app/features/teams"
	usersfeature "github.com/dalemusser/octofit/internal/app/features/users"
	workoutsfeature "github.com/dalemusser/octofit/internal/app/features/workouts"
	"github.com/dalemusser/octofit/internal/app/system/metrics"
	"github.com/dalemusser/octofit/internal/app/system/requestlog"
	"github.com/dalemusser/octofit/internal/app/system/respond"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// Layout:
//
//	/health   database ping
//	/metrics  Prometheus scrape
//	/api/...  resource API (rate limited)
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.StripSlashes)
	r.Use(requestlog.Middleware(logger))
	r.Use(requestlog.Recoverer(logger))
	r.Use(deps.Metrics.Middleware)

	// Set before mounting so sub-routers inherit them.
	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Handle("/metrics", metrics.Handler(deps.Registry))

	r.Route("/api", func(api chi.Router) {
		api.Use(deps.Limiter.Middleware)
		api.NotFound(notFound)
		api.MethodNotAllowed(methodNotAllowed)

		apiRoot := apirootfeature.NewHandler(appCfg.BaseURL, logger)
		api.Get("/", apiRoot.Serve)

		db := deps.MongoDatabase
		api.Mount("/users", usersfeature.Routes(usersfeature.NewHandler(db, logger)))
		api.Mount("/teams", teamsfeature.Routes(teamsfeature.NewHandler(db, logger)))
		api.Mount("/activities", activitiesfeature.Routes(activitiesfeature.NewHandler(db, logger)))
		api.Mount("/leaderboard", leaderboardfeature.Routes(leaderboardfeature.NewHandler(db, logger)))
		api.Mount("/workouts", workoutsfeature.Routes(workoutsfeature.NewHandler(db, logger)))
	})

	return r, nil
}

func notFound(w http.ResponseWriter, _ *http.Request)         { respond.NotFound(w) }
func methodNotAllowed(w http.ResponseWriter, _ *http.Request) { respond.MethodNotAllowed(w) }
