// Package postgres implements the storage.Provider interface on
// PostgreSQL via lib/pq. Connection strings must not embed credentials;
// they are supplied through the OS keyring or libpq's own mechanisms.
package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	pq "github.com/lib/pq"

	"github.com/bluesmoth12/Blossom/internal/constants"
	"github.com/bluesmoth12/Blossom/internal/logger"
	"github.com/bluesmoth12/Blossom/internal/migration"
	"github.com/bluesmoth12/Blossom/internal/storage"
	"github.com/bluesmoth12/Blossom/migrations"
)

type Store struct {
	connStr string
	db      *sql.DB
}

var _ storage.Provider = (*Store)(nil)

var (
	ErrInvalidConnectionString = errors.New("invalid PostgreSQL connection string")
	ErrEmbeddedCredentials     = errors.New("connection string must not contain a password")
)

func NewStore(connStr string) *Store {
	s := &Store{connStr: connStr}
	s.ensureSearchPath()
	return s
}

func (s *Store) ensureSearchPath() {
	if strings.HasPrefix(s.connStr, "postgres://") || strings.HasPrefix(s.connStr, "postgresql://") {
		u, err := url.Parse(s.connStr)
		if err != nil {
			logger.Warn("failed to parse Postgres connection string", "error", err)
			return
		}
		q := u.Query()
		if q.Get("search_path") == "" {
			q.Set("search_path", constants.AppName)
			u.RawQuery = q.Encode()
			s.connStr = u.String()
		}
		return
	}
	// DSN format, space-separated key=value pairs.
	if !hasParam(s.connStr, "search_path") {
		s.connStr = strings.TrimSpace(s.connStr) + " search_path=" + constants.AppName
	}
}

// hasParam reports whether a DSN-style connection string contains the
// given parameter key (case-insensitive).
func hasParam(connStr, key string) bool {
	for _, part := range strings.Fields(connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(kv[0], key) {
			return true
		}
	}
	return false
}

// ValidateConnString checks that a connection string is a parseable
// PostgreSQL URI or DSN and carries no embedded password.
func ValidateConnString(connStr string) error {
	if strings.TrimSpace(connStr) == "" {
		return fmt.Errorf("%w: connection string cannot be empty", ErrInvalidConnectionString)
	}

	if _, err := pq.NewConnector(connStr); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConnectionString, err)
	}

	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConnectionString, err)
		}
		if _, isSet := u.User.Password(); isSet {
			return ErrEmbeddedCredentials
		}
		return nil
	}

	for _, pair := range strings.Fields(connStr) {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) == 2 && strings.EqualFold(strings.TrimSpace(kv[0]), "password") {
			return ErrEmbeddedCredentials
		}
	}
	return nil
}

// IsConnString reports whether the configured database value looks
// like a PostgreSQL connection string rather than a file path.
func IsConnString(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://")
}

// Open establishes the connection pool and verifies connectivity. No
// migrations are applied.
func (s *Store) Open() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("connect to database: %w", err)
	}
	s.db = db
	return nil
}

// Init opens the connection pool, applies pending migrations, and
// seeds the meditation catalog.
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

// DB exposes the underlying handle for maintenance commands.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) runMigrations() error {
	subFS, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		return fmt.Errorf("access postgres migrations: %w", err)
	}
	runner := migration.NewRunner(s.db, subFS, migration.DialectPostgres)
	_, err = runner.Apply(func(msg string) { logger.Info(msg) })
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
	for _, m := range storage.SeedMeditations() {
		_, err := s.db.Exec(`
			INSERT INTO meditations (title, description, audio_url, image_url, duration, category, level)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			m.Title, m.Description, m.AudioURL, m.ImageURL, m.Duration, m.Category, m.Level)
		if err != nil {
			return err
		}
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (class 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
