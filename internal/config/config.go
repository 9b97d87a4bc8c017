package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/jny0444/crowdfund/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// reported to Sentry.
	Env string `env:"ENV" envDefault:"prod"`

	// Store selects the ledger storage: "postgres" or "memory".
	Store string `env:"STORE" envDefault:"postgres"`

	HTTP     configs.HTTP     `envPrefix:"HTTP_"`
	Log      configs.Logger   `envPrefix:"LOG_"`
	Psql     configs.Postgres `envPrefix:"PSQL_"`
	Ledger   configs.Ledger   `envPrefix:"LEDGER_"`
	Auth     configs.Auth     `envPrefix:"AUTH_"`
	RabbitMQ configs.RabbitMQ `envPrefix:"RABBITMQ_"`
	Relay    configs.Relay    `envPrefix:"RELAY_"`
	Sentry   configs.Sentry   `envPrefix:"SENTRY_"`
}

// Load reads configuration from environment variables into a Config. The
// given dotenv files are loaded first when they exist; variables already
// set in the environment win. All fields are loaded with their specified
// defaults when no environment variable is provided.
func Load(dotenv ...string) (Config, error) {
	var cfg Config
	for _, file := range dotenv {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
