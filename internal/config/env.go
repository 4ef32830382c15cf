package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a required variable is
// missing or a value cannot be converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// loadDotEnv loads the dotenv file at path into the process environment so
// that the subsequent env.Parse pass picks the values up. Already-set
// environment variables win over file values (godotenv.Load semantics).
//
// A missing default ".env" file is not an error: local environment files are
// one of several optional configuration sources. An explicitly requested file
// that cannot be read is reported.
func loadDotEnv(path string) error {
	explicit := path != ""
	if path == "" {
		path = ".env"
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error loading env file %q: %w", path, err)
	}

	return nil
}
