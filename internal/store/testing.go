package store

import "testing"

// NewTestDB creates an in-memory database with migrations applied.
// This is only intended for use in tests.
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := OpenPath(":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}
