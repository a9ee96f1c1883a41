// Package migrate provides database migration management.
package migrate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"

	appConfig "github.com/festy23/innov8x/internal/config"
	"github.com/festy23/innov8x/migrations"
)

// GetMigrationsPath returns the migrations directory override.
// Empty means the migrations embedded in the binary are used.
func GetMigrationsPath() string {
	return appConfig.GetEnv("MIGRATIONS_PATH", "")
}

// Migrate applies pending migrations and returns the resulting schema version.
func Migrate(db *gorm.DB) (uint, error) {
	if db == nil {
		return 0, fmt.Errorf("database connection is nil")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sourceName, sourceURL, src, err := openSource(GetMigrationsPath())
	if err != nil {
		return 0, err
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		if src != nil {
			_ = src.Close()
		}
		return 0, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	var m *migrate.Migrate
	if src != nil {
		m, err = migrate.NewWithInstance(sourceName, src, "postgres", driver)
	} else {
		m, err = migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return 0, fmt.Errorf("failed to read migration version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("database schema is dirty at version %d", version)
	}

	return version, nil
}

// openSource returns either an embedded source instance or a file:// URL.
func openSource(dir string) (string, string, source.Driver, error) {
	if dir == "" {
		src, err := iofs.New(migrations.FS, ".")
		if err != nil {
			return "", "", nil, fmt.Errorf("failed to open embedded migrations: %w", err)
		}
		return "iofs", "", src, nil
	}

	migrationsPath, err := filepath.Abs(dir)
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	if _, statErr := os.Stat(migrationsPath); os.IsNotExist(statErr) {
		return "", "", nil, fmt.Errorf("migrations directory does not exist: %s", migrationsPath)
	}

	return "file", fmt.Sprintf("file://%s", migrationsPath), nil, nil
}
