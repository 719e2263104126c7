package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

func newTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blossom.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("CREATE TABLE marker (value TEXT)"); err != nil {
		t.Fatalf("create table: %v", err)
	}
	if _, err := db.Exec("INSERT INTO marker (value) VALUES ('original')"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	return path
}

func TestCreateAndList(t *testing.T) {
	dbPath := newTestDB(t)
	mgr := NewManager(dbPath)

	path, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("backups = %d, want 1", len(backups))
	}
	if backups[0].Path != path {
		t.Errorf("listed path = %q, want %q", backups[0].Path, path)
	}
	if backups[0].Size == 0 {
		t.Error("backup size should be non-zero")
	}
}

func TestCreateMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "nope.db"))
	if _, err := mgr.Create(); err == nil {
		t.Error("expected error for missing database")
	}
}

func TestListEmptyDirectory(t *testing.T) {
	mgr := NewManager(newTestDB(t))
	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("backups = %d, want 0", len(backups))
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	dbPath := newTestDB(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Change the live database after the backup.
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if _, err := db.Exec("UPDATE marker SET value = 'changed'"); err != nil {
		t.Fatalf("update: %v", err)
	}
	db.Close()

	if err := mgr.Restore(backupPath); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	db, err = sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("reopen database: %v", err)
	}
	defer db.Close()

	var value string
	if err := db.QueryRow("SELECT value FROM marker").Scan(&value); err != nil {
		t.Fatalf("query restored database: %v", err)
	}
	if value != "original" {
		t.Errorf("restored value = %q, want %q", value, "original")
	}
}

func TestRestoreRejectsGarbage(t *testing.T) {
	dbPath := newTestDB(t)
	mgr := NewManager(dbPath)

	garbage := filepath.Join(t.TempDir(), "garbage.db")
	if err := os.WriteFile(garbage, []byte("not a database"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := mgr.Restore(garbage); err == nil {
		t.Error("expected error restoring a non-database file")
	}
}
