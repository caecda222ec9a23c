// Package db opens the relational store and runs schema migrations.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authadapters "orats_data/internal/feature/auth/adapters"
	authentity "orats_data/internal/feature/auth/domain/entity"
	dailiesadapters "orats_data/internal/feature/dailies/adapters"
	ivrankadapters "orats_data/internal/feature/ivrank/adapters"
	watchlistentity "orats_data/internal/feature/watchlist/domain/entity"
)

// Config holds the database connection settings.
type Config struct {
	Driver   string // "postgres" (default) or "sqlite"
	User     string
	Password string
	Name     string
	Host     string
	Port     string
	Path     string // sqlite database file, used when Driver is "sqlite"
	// InstanceName is a Cloud SQL instance connection name. When set,
	// the connection goes over the instance's unix socket instead of TCP.
	InstanceName string
}

// LoadConfigFromEnv reads the database configuration from environment variables.
func LoadConfigFromEnv() Config {
	return Config{
		Driver:       os.Getenv("DB_DRIVER"),
		User:         os.Getenv("DB_USER"),
		Password:     os.Getenv("DB_PASSWORD"),
		Name:         os.Getenv("DB_NAME"),
		Host:         os.Getenv("DB_HOST"),
		Port:         os.Getenv("DB_PORT"),
		Path:         os.Getenv("DB_PATH"),
		InstanceName: os.Getenv("INSTANCE_CONNECTION_NAME"),
	}
}

// BuildDSN assembles the postgres DSN for the given configuration.
// A Cloud SQL instance name takes precedence over host/port.
func BuildDSN(cfg Config) string {
	if cfg.InstanceName != "" {
		return fmt.Sprintf("host=/cloudsql/%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.InstanceName, cfg.User, cfg.Password, cfg.Name)
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
}

// Opener opens a gorm connection for a DSN. It exists so that
// ConnectWithRetry can be tested without a real database.
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry keeps trying to open the database until it succeeds
// or the timeout elapses. Containerized databases often come up a few
// seconds after the application.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %v: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// gormConfig is shared by all drivers. TranslateError maps
// driver-specific errors onto gorm's portable sentinels
// (e.g. gorm.ErrDuplicatedKey), which the adapters rely on.
func gormConfig() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}

// OpenDB opens the configured database and optionally runs migrations.
// It terminates the process when the database stays unreachable.
func OpenDB() *gorm.DB {
	cfg := LoadConfigFromEnv()

	var (
		db  *gorm.DB
		err error
	)
	if cfg.Driver == "sqlite" {
		path := cfg.Path
		if path == "" {
			path = "orats.db"
		}
		db, err = gorm.Open(sqlite.Open(path), gormConfig())
		if err != nil {
			log.Fatalf("sqlite open failed: %v", err)
		}
	} else {
		dsn := BuildDSN(cfg)
		db, err = ConnectWithRetry(dsn, 60*time.Second, func(dsn string) (*gorm.DB, error) {
			return gorm.Open(postgres.Open(dsn), gormConfig())
		})
		if err != nil {
			log.Fatalf("%v", err)
		}
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&authentity.User{},
			&authadapters.SessionModel{},
			&dailiesadapters.DailyBarModel{},
			&ivrankadapters.IvRankModel{},
			&watchlistentity.Symbol{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
