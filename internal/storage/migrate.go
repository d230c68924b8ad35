package storage

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// RunMigrations applies all pending Postgres migrations.
func RunMigrations(dsn string) error {
	return migrateUp("migrations/postgres", dsn)
}

// runSQLiteMigrations applies all pending SQLite migrations to the database file at path.
func runSQLiteMigrations(path string) error {
	normalized := filepath.ToSlash(path)
	if filepath.IsAbs(path) && normalized[0] != '/' {
		normalized = "/" + normalized
	}
	return migrateUp("migrations/sqlite", "sqlite://"+normalized)
}

func migrateUp(dir, databaseURL string) error {
	sub, err := fs.Sub(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("opening migrations %s: %w", dir, err)
	}
	src, err := iofs.New(sub, ".")
	if err != nil {
		return fmt.Errorf("creating migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
