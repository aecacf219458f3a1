// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for OctoFit.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, base_url, etc.
//   - Environment variables: OCTOFIT_MONGO_URI, OCTOFIT_BASE_URL, etc.
//   - Command-line flags: --mongo_uri, --base_url, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "octofit_db", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "base_url", Default: "", Desc: "Absolute URL prefix for API root links (blank: request host)"},

	// Rate limiting
	{Name: "rate_limit_rps", Default: 20, Desc: "Requests per second allowed per client IP (0 disables)"},
	{Name: "rate_limit_burst", Default: 40, Desc: "Burst size per client IP"},

	// Leaderboard
	{Name: "leaderboard_refresh_interval", Default: "0s", Desc: "Background leaderboard regeneration interval (0 disables)"},

	// cmd/populate
	{Name: "populate_seed", Default: 0, Desc: "Random seed for cmd/populate (0: time-based)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges, in order of precedence,
// flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "OCTOFIT", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		BaseURL: appValues.String("base_url"),

		RateLimitRPS:   appValues.Int("rate_limit_rps"),
		RateLimitBurst: appValues.Int("rate_limit_burst"),

		LeaderboardRefreshInterval: appValues.Duration("leaderboard_refresh_interval", 0),

		PopulateSeed: appValues.Int("populate_seed"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// The MongoDB URI is checked here so a typo fails fast instead of at the
// first connection attempt.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.MongoDatabase == "" {
		return fmt.Errorf("mongo_database must not be empty")
	}
	if appCfg.RateLimitRPS < 0 || appCfg.RateLimitBurst < 0 {
		return fmt.Errorf("rate_limit_rps and rate_limit_burst must not be negative")
	}
	if appCfg.LeaderboardRefreshInterval < 0 {
		return fmt.Errorf("leaderboard_refresh_interval must not be negative")
	}
	return nil
}
