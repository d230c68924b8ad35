package storage

import (
	"context"
	"fmt"
)

// Store is a string key-value store. Values are JSON text; the store does
// not interpret them.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set inserts or replaces the value for key.
	Set(ctx context.Context, key, value string) error
	// All returns every key and value.
	All(ctx context.Context) (map[string]string, error)
	Close() error
}

// Drivers accepted by Open.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Open migrates and opens the store for driver. For sqlite the source is
// a file path, for postgres a connection string; memory ignores it.
func Open(ctx context.Context, driver, source string) (Store, error) {
	switch driver {
	case DriverSQLite:
		s, err := OpenSQLite(ctx, source)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverPostgres:
		if err := RunMigrations(source); err != nil {
			return nil, err
		}
		db, err := New(ctx, source)
		if err != nil {
			return nil, err
		}
		return db, nil
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
