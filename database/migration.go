package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

//go:embed migrations
var dbMigrations embed.FS

// Migrate brings the schema for the given driver up to the latest version.
func Migrate(db *gorm.DB, driver string) error {
	migrator, err := newMigrator(db, driver)
	if err != nil {
		return err
	}

	err = migrator.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		log.Debug().Msg("Database schema already up to date")
	case err != nil:
		return err
	}

	version, dirty, err := migrator.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Database migrations applied")
	return nil
}

func newMigrator(db *gorm.DB, driver string) (*migrate.Migrate, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	src, err := iofs.New(dbMigrations, "migrations/"+driver)
	if err != nil {
		return nil, fmt.Errorf("load %s migrations: %w", driver, err)
	}

	var dst migratedb.Driver
	switch driver {
	case "postgres":
		dst, err = postgres.WithInstance(sqlDB, &postgres.Config{})
	case "sqlite":
		dst, err = sqlite3.WithInstance(sqlDB, &sqlite3.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return nil, err
	}

	return migrate.NewWithInstance("iofs", src, driver, dst)
}
