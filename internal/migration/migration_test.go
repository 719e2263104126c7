package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestApplyFreshDatabase(t *testing.T) {
	db := newTestDB(t)
	fsys := fstest.MapFS{
		"001_init.sql":  {Data: []byte("CREATE TABLE a (id INTEGER PRIMARY KEY);")},
		"002_more.sql":  {Data: []byte("CREATE TABLE b (id INTEGER PRIMARY KEY);")},
		"notes.txt":     {Data: []byte("ignored")},
	}

	runner := NewRunner(db, fsys, DialectSQLite)

	var logged []string
	count, err := runner.Apply(func(msg string) { logged = append(logged, msg) })
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if count != 2 {
		t.Errorf("applied = %d, want 2", count)
	}
	if len(logged) != 2 {
		t.Errorf("log lines = %d, want 2", len(logged))
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion: %v", err)
	}
	if version != 2 {
		t.Errorf("version = %d, want 2", version)
	}

	// Both tables must exist.
	for _, table := range []string{"a", "b"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %q missing: %v", table, err)
		}
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	fsys := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE a (id INTEGER PRIMARY KEY);")},
	}
	runner := NewRunner(db, fsys, DialectSQLite)

	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("first Apply: %v", err)
	}
	count, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("second Apply: %v", err)
	}
	if count != 0 {
		t.Errorf("second Apply applied = %d, want 0", count)
	}
}

func TestApplyPicksUpNewMigrations(t *testing.T) {
	db := newTestDB(t)
	runner := NewRunner(db, fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE a (id INTEGER PRIMARY KEY);")},
	}, DialectSQLite)
	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	runner = NewRunner(db, fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE a (id INTEGER PRIMARY KEY);")},
		"002_more.sql": {Data: []byte("CREATE TABLE b (id INTEGER PRIMARY KEY);")},
	}, DialectSQLite)

	count, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if count != 1 {
		t.Errorf("applied = %d, want 1", count)
	}
	version, _ := runner.CurrentVersion()
	if version != 2 {
		t.Errorf("version = %d, want 2", version)
	}
}

func TestApplyRejectsNewerSchema(t *testing.T) {
	db := newTestDB(t)
	runner := NewRunner(db, fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE a (id INTEGER PRIMARY KEY);")},
		"002_more.sql": {Data: []byte("CREATE TABLE b (id INTEGER PRIMARY KEY);")},
	}, DialectSQLite)
	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	// Simulate a downgraded binary that only knows version 1.
	old := NewRunner(db, fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE a (id INTEGER PRIMARY KEY);")},
	}, DialectSQLite)

	if _, err := old.Apply(nil); err == nil {
		t.Error("Apply should reject a schema newer than the latest migration")
	}
	if err := old.ValidateVersion(); err == nil {
		t.Error("ValidateVersion should reject a schema newer than the latest migration")
	}
}

func TestReadMigrationFilesRejectsBadNames(t *testing.T) {
	db := newTestDB(t)

	for name, fsys := range map[string]fstest.MapFS{
		"no underscore": {"001.sql": {Data: []byte("SELECT 1;")}},
		"no number":     {"abc_init.sql": {Data: []byte("SELECT 1;")}},
		"duplicate version": {
			"001_a.sql": {Data: []byte("SELECT 1;")},
			"001_b.sql": {Data: []byte("SELECT 1;")},
		},
	} {
		t.Run(name, func(t *testing.T) {
			runner := NewRunner(db, fsys, DialectSQLite)
			if _, err := runner.Apply(nil); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestFailedMigrationRollsBack(t *testing.T) {
	db := newTestDB(t)
	runner := NewRunner(db, fstest.MapFS{
		"001_bad.sql": {Data: []byte("CREATE TABLE a (id INTEGER PRIMARY KEY); INVALID SQL;")},
	}, DialectSQLite)

	if _, err := runner.Apply(nil); err == nil {
		t.Fatal("expected migration failure")
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion: %v", err)
	}
	if version != 0 {
		t.Errorf("version after failed migration = %d, want 0", version)
	}
}
