package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"mesa-planner/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package
// for default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	HTTP configs.HTTP   `envPrefix:"HTTP_"`
	Log  configs.Logger `envPrefix:"LOG_"`

	// Psql configures the optional plan store.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Gemini configures the narrative and competitor collaborators.
	Gemini configs.Gemini `envPrefix:"GEMINI_"`

	Planner configs.Planner `envPrefix:"PLANNER_"`
}

// Load reads an optional .env file and then the environment into a Config.
// Variables already set in the environment win over the .env file.
func Load(dotenv ...string) (Config, error) {
	var cfg Config
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
