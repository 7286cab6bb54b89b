package database

import (
	"database/sql"
	"embed"
	"fmt"
	"strings"

	"chuni-tracker/internal/config"
	"chuni-tracker/internal/constants"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed migrations/sqlite/*.sql migrations/mysql/*.sql
var embedMigrations embed.FS

// dialect carries the driver-specific pieces of the connection setup.
// The production deployment runs against the arcade's MySQL schema;
// sqlite is the default for local use and tests.
type dialect struct {
	driver        string
	gooseDialect  string
	migrationsDir string
}

func dialectFor(cfg *config.Config) (dialect, string, error) {
	switch strings.ToLower(cfg.DatabaseType) {
	case "sqlite", "sqlite3", "":
		return dialect{
			driver:        "sqlite3",
			gooseDialect:  "sqlite3",
			migrationsDir: "migrations/sqlite",
		}, cfg.DBPath, nil
	case "mysql":
		dsn := cfg.DatabaseURL
		if !strings.Contains(dsn, "parseTime=") {
			sep := "?"
			if strings.Contains(dsn, "?") {
				sep = "&"
			}
			dsn += sep + "parseTime=true"
		}
		return dialect{
			driver:        "mysql",
			gooseDialect:  "mysql",
			migrationsDir: "migrations/mysql",
		}, dsn, nil
	default:
		return dialect{}, "", fmt.Errorf("unsupported database type: %s", cfg.DatabaseType)
	}
}

func New(cfg *config.Config, logger zerolog.Logger) (*sql.DB, error) {
	d, dsn, err := dialectFor(cfg)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("driver", d.driver).Msg("connecting to database")

	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		logger.Error().Err(err).Msg("failed to connect to database")
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(constants.DBMaxOpenConns)
	db.SetMaxIdleConns(constants.DBMaxIdleConns)
	db.SetConnMaxLifetime(constants.DBConnMaxLifetime)
	db.SetConnMaxIdleTime(constants.DBMaxIdleTime)

	if err := db.Ping(); err != nil {
		logger.Error().Err(err).Msg("failed to ping database")
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if d.driver == "sqlite3" {
		if err := optimizeSQLite(db, logger); err != nil {
			logger.Error().Err(err).Msg("failed to optimize SQLite")
			return nil, fmt.Errorf("failed to optimize SQLite: %w", err)
		}
	}
	if err := runMigrations(db, d, logger); err != nil {
		logger.Error().Err(err).Msg("failed to run migrations")
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info().Msg("database connection established")
	return db, nil
}

func runMigrations(db *sql.DB, d dialect, logger zerolog.Logger) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(d.gooseDialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, d.migrationsDir); err != nil {
		return fmt.Errorf("failed to run goose migrations: %w", err)
	}

	logger.Info().Msg("migrations completed successfully")
	return nil
}

func optimizeSQLite(sqlDB *sql.DB, logger zerolog.Logger) error {
	pragmas := []struct {
		name  string
		value string
	}{
		{"journal_mode", "WAL"},
		{"synchronous", "NORMAL"},
		{"cache_size", "-64000"},
		{"busy_timeout", "5000"},
		{"foreign_keys", "ON"},
		{"temp_store", "MEMORY"},
	}

	for _, pragma := range pragmas {
		query := fmt.Sprintf("PRAGMA %s = %s", pragma.name, pragma.value)
		if _, err := sqlDB.Exec(query); err != nil {
			logger.Warn().
				Err(err).
				Str("pragma", pragma.name).
				Str("value", pragma.value).
				Msg("failed to set pragma")
			return fmt.Errorf("failed to set PRAGMA %s: %w", pragma.name, err)
		}
		logger.Debug().
			Str("pragma", pragma.name).
			Str("value", pragma.value).
			Msg("SQLite pragma set")
	}

	return nil
}
