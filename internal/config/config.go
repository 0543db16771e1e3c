package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Environment string `toml:"environment" env:"COACHSTATS_ENVIRONMENT, overwrite"`
	Host        string `toml:"host" env:"COACHSTATS_HOST, overwrite"`
	Port        int    `toml:"port" env:"COACHSTATS_PORT, overwrite"`
	// logging
	LogLevel      string `toml:"log_level" env:"COACHSTATS_LOG_LEVEL, overwrite"`
	LogsPath      string `toml:"logs_path" env:"COACHSTATS_LOGS_PATH, overwrite"`
	LogToStdout   bool   `toml:"log_to_stdout" env:"COACHSTATS_LOG_TO_STDOUT, overwrite"`
	LogFormatJSON bool   `toml:"log_format_json" env:"COACHSTATS_LOG_FORMAT_JSON, overwrite"`
	SentryEnabled bool   `toml:"sentry_enabled" env:"COACHSTATS_SENTRY_ENABLED, overwrite"`
	// postgres
	PostgresHost   string `toml:"postgres_host" env:"COACHSTATS_POSTGRES_HOST, overwrite"`
	PostgresPort   string `toml:"postgres_port" env:"COACHSTATS_POSTGRES_PORT, overwrite"`
	PostgresDBName string `toml:"postgres_db_name" env:"COACHSTATS_POSTGRES_DB_NAME, overwrite"`
	MigrateSchema  bool   `toml:"migrate_schema" env:"COACHSTATS_MIGRATE_SCHEMA, overwrite"`
	// redis
	RedisHost string `toml:"redis_host" env:"COACHSTATS_REDIS_HOST, overwrite"`
	RedisPort string `toml:"redis_port" env:"COACHSTATS_REDIS_PORT, overwrite"`
	// prometheus
	PrometheusMetricsHost string `toml:"prometheus_metrics_host" env:"COACHSTATS_PROMETHEUS_METRICS_HOST, overwrite"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port" env:"COACHSTATS_PROMETHEUS_METRICS_PORT, overwrite"`
	// analytics
	LeaderboardCacheTTLSeconds int      `toml:"leaderboard_cache_ttl_seconds" env:"COACHSTATS_LEADERBOARD_CACHE_TTL_SECONDS, overwrite"`
	FoodCacheSizeMB            int      `toml:"food_cache_size_mb" env:"COACHSTATS_FOOD_CACHE_SIZE_MB, overwrite"`
	RateLimitAllowedPerMin     int      `toml:"rate_limit_allowed_per_min" env:"COACHSTATS_RATE_LIMIT_ALLOWED_PER_MIN, overwrite"`
	AllowedOrigins             []string `toml:"allowed_origins" env:"COACHSTATS_ALLOWED_ORIGINS, overwrite"`
}

func (c *Config) LeaderboardCacheTTL() time.Duration {
	return time.Duration(c.LeaderboardCacheTTLSeconds) * time.Second
}

func (c *Config) FoodCacheSizeBytes() int {
	return c.FoodCacheSizeMB * 1024 * 1024
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the config of the given env from the TOML file at path,
// then applies the COACHSTATS_* environment overrides.
func Load(env, path string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.DecodeFile(path, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode toml config [%s]: %w", path, err)
	}

	cfg, err := tomlConfig.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no [%s] section in config [%s]", env, path)
	}

	if err := envconfig.Process(context.Background(), cfg); err != nil {
		return nil, fmt.Errorf("process env overrides: %w", err)
	}

	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}

	return cfg, nil
}
