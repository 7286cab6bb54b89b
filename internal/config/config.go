package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	// AssetHost is the host serving jacket art, without scheme.
	AssetHost string

	// DatabaseType selects the storage backend: "sqlite" (default) or
	// "mysql".
	DatabaseType string
	DBPath       string
	DatabaseURL  string

	ServerPort string
	LogLevel   string
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		AssetHost:    getEnv("ASSET_HOST", ""),
		DatabaseType: getEnv("DATABASE_TYPE", "sqlite"),
		DBPath:       getEnv("DB_PATH", "chuni.db"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}

	if cfg.AssetHost == "" {
		return nil, fmt.Errorf("ASSET_HOST is required")
	}
	if cfg.DatabaseType == "mysql" && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when DATABASE_TYPE is mysql")
	}

	logger.Info().
		Str("asset_host", cfg.AssetHost).
		Str("database_type", cfg.DatabaseType).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
