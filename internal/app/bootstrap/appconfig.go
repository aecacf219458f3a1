// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables (OCTOFIT_*), configuration
// files, or command-line flags (loaded in LoadConfig). Framework settings
// such as ports, TLS and log level live in WAFFLE's CoreConfig.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// BaseURL prefixes the links in the API root. Blank means the host of
	// each request.
	BaseURL string

	// Per-client rate limit. RPS 0 disables it.
	RateLimitRPS   int
	RateLimitBurst int

	// LeaderboardRefreshInterval schedules background regeneration.
	// 0 keeps regeneration an offline step (cmd/rankboard, cmd/populate).
	LeaderboardRefreshInterval time.Duration

	// PopulateSeed seeds cmd/populate's random source. 0 means time-based.
	PopulateSeed int
}
