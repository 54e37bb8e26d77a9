package config

import (
	"github.com/caarlos0/env/v11"

	"crowdfund-ledger/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Storage selects the repository driver (STORAGE_DRIVER).
	Storage configs.Storage `envPrefix:"STORAGE_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	SQLite configs.SQLite `envPrefix:"SQLITE_"`

	Ledger   configs.Ledger   `envPrefix:"LEDGER_"`
	Reward   configs.Reward   `envPrefix:"REWARD_"`
	Transfer configs.Transfer `envPrefix:"TRANSFER_"`
	Ethereum configs.Ethereum `envPrefix:"ETH_"`

	Events configs.Events `envPrefix:"EVENTS_"`
	Kafka  configs.Kafka  `envPrefix:"KAFKA_"`
	Redis  configs.Redis  `envPrefix:"REDIS_"`
	Keeper configs.Keeper `envPrefix:"KEEPER_"`
	Otel   configs.Otel   `envPrefix:"OTEL_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
