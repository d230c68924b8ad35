package storage

import (
	"context"
	"path/filepath"
	"testing"
)

// exerciseStore checks the Store contract against any backend.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "wl_week"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v, err %v; want ok=false, nil", ok, err)
	}

	if err := s.Set(ctx, "wl_week", "3"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, "wl_week", "4"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	log := `{"1-1":{"main":{"0":{"setWeights":[40,42.5]}},"accessories":{}}}`
	if err := s.Set(ctx, "wl_log_v2", log); err != nil {
		t.Fatalf("Set log: %v", err)
	}

	v, ok, err := s.Get(ctx, "wl_week")
	if err != nil || !ok || v != "4" {
		t.Errorf("Get(wl_week) = %q, %v, %v; want \"4\", true, nil", v, ok, err)
	}

	all, err := s.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 2 || all["wl_log_v2"] != log {
		t.Errorf("All() = %v", all)
	}
}

// TestMemoryStore verifies the in-process backend.
func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemory())
}

// TestSQLiteStore verifies migrations run and values round-trip through a
// real database file.
func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "liftlog.db")
	s, err := OpenSQLite(context.Background(), path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer s.Close()
	exerciseStore(t, s)
}

// TestSQLiteReopen verifies data persists across reopen and migrations are idempotent.
func TestSQLiteReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "liftlog.db")

	s, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set(ctx, "wl_day", "2"); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	if v, ok, _ := s.Get(ctx, "wl_day"); !ok || v != "2" {
		t.Errorf("after reopen Get(wl_day) = %q, %v; want \"2\", true", v, ok)
	}
}

// TestOpenUnknownDriver verifies an unsupported driver is rejected.
func TestOpenUnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), "mysql", ""); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

// TestOpenMemory verifies the factory returns a usable memory store.
func TestOpenMemory(t *testing.T) {
	s, err := Open(context.Background(), DriverMemory, "")
	if err != nil {
		t.Fatal(err)
	}
	exerciseStore(t, s)
}
