package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"admanager/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is only
	// attached to log records.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP configs.HTTP   `envPrefix:"HTTP_"`
	Log  configs.Logger `envPrefix:"LOG_"`

	// Storage selects the key-value driver behind the entity store. Only the
	// section named by Storage.Driver is used.
	Storage configs.Storage  `envPrefix:"STORAGE_"`
	SQLite  configs.SQLite   `envPrefix:"SQLITE_"`
	Psql    configs.Postgres `envPrefix:"PSQL_"`
	Redis   configs.Redis    `envPrefix:"REDIS_"`
	S3      configs.S3       `envPrefix:"S3_"`

	IDs      configs.IDs      `envPrefix:"ID_"`
	BigQuery configs.BigQuery `envPrefix:"BIGQUERY_"`
}

// Load reads configuration from environment variables into a Config and
// checks the enumerated settings. All fields are loaded with their specified
// defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Storage.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := cfg.IDs.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if cfg.Storage.Driver == configs.DriverS3 && cfg.S3.Bucket == "" {
		return cfg, fmt.Errorf("config: S3_BUCKET is required for the s3 driver")
	}
	return cfg, nil
}
