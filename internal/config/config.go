package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

const (
	defaultLogLevel     = "info"
	defaultMigrationDir = "file://db/migration"
)

type Config struct {
	Stage        string
	LogLevel     string
	DatabaseUrl  string
	MigrationDir string
}

// Analytics are recorded only when a database is configured.
func (c Config) AnalyticsEnabled() bool {
	return c.DatabaseUrl != ""
}

// Loads the .env file outside of prod and reads the
// configuration from the environment.
func Load(envFiles ...string) (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(envFiles...); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	cfg := Config{
		Stage:        getEnv("STAGE", StageDev),
		LogLevel:     getEnv("LOG_LEVEL", defaultLogLevel),
		DatabaseUrl:  os.Getenv("DATABASE_URL"),
		MigrationDir: getEnv("MIGRATION_DIR", defaultMigrationDir),
	}

	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, fmt.Errorf("invalid type of development stage: %s", cfg.Stage)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
