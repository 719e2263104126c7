// Package sqlite implements the storage.Provider interface on an
// embedded SQLite database file.
package sqlite

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/bluesmoth12/Blossom/internal/migration"
	"github.com/bluesmoth12/Blossom/internal/storage"
	"github.com/bluesmoth12/Blossom/migrations"
)

type Store struct {
	path string
	db   *sql.DB
}

var _ storage.Provider = (*Store)(nil)

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Open opens the database file, creating the parent directory when
// needed. No migrations are applied.
func (s *Store) Open() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	s.db = db
	return nil
}

// Init opens the database, applies pending migrations, and seeds the
// meditation catalog.
func (s *Store) Init() error {
	if err := s.Open(); err != nil {
		return err
	}

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	if err := s.seedMeditations(); err != nil {
		return fmt.Errorf("seed meditations: %w", err)
	}

	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// DB exposes the underlying handle for maintenance commands.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) runMigrations() error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("access sqlite migrations: %w", err)
	}
	runner := migration.NewRunner(s.db, subFS, migration.DialectSQLite)
	_, err = runner.Apply(nil)
	return err
}

func (s *Store) seedMeditations() error {
	var count int
	if err := s.db.QueryRow("SELECT count(*) FROM meditations").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	now := time.Now().UTC().Format(time.RFC3339)
	for _, m := range storage.SeedMeditations() {
		_, err := s.db.Exec(`
			INSERT INTO meditations (title, description, audio_url, image_url, duration, category, level, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			m.Title, m.Description, m.AudioURL, m.ImageURL, m.Duration, m.Category, m.Level, now)
		if err != nil {
			return err
		}
	}
	return nil
}

// parseTime decodes the RFC3339 timestamps the store writes.
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
