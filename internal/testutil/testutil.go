// Package testutil provides shared test helpers for setting up databases and upload dirs.
package testutil

import (
	"os"
	"testing"

	"github.com/aditpras/folio/internal/media"
	"github.com/aditpras/folio/internal/store"
)

// TestDB creates a temporary SQLite database that is automatically cleaned up.
func TestDB(t *testing.T) *store.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "folio-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := store.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestUploads creates a temporary uploads directory with a media.Store.
func TestUploads(t *testing.T) (string, *media.Store) {
	t.Helper()
	dir := t.TempDir()
	st, err := media.NewStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, st
}
