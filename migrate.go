package main

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"financial-dashboard/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// runMigrations applies every pending migration in migrations/. It uses
// its own connection because closing the migrator closes the database handle.
func runMigrations(databaseURL string) error {
	migrateDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}
	defer migrateDB.Close()

	driver, err := migratepgx.WithInstance(migrateDB, &migratepgx.Config{})
	if err != nil {
		return fmt.Errorf("create pgx migration driver: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read migration version: %w", err)
	}
	logger.Log.Info("Schema up to date", zap.Uint("version", version), zap.Bool("dirty", dirty))

	return nil
}

// setupDatabase applies migrations and seeds the default categories and account.
func setupDatabase(db *sql.DB, databaseURL string) error {
	logger.Log.Info("Running database migrations...")
	if err := runMigrations(databaseURL); err != nil {
		return err
	}

	logger.Log.Info("Seeding default categories and account...")
	n, err := seedDefaults(db)
	if err != nil {
		return err
	}
	logger.Log.Info("Defaults seeded", zap.Int64("rows_affected", n))

	return nil
}
