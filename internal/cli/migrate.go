package cli

import (
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/bluesmoth12/Blossom/internal/migration"
	"github.com/bluesmoth12/Blossom/internal/storage/postgres"
	"github.com/bluesmoth12/Blossom/internal/storage/sqlite"
	"github.com/bluesmoth12/Blossom/migrations"
)

type MigrateCmd struct{}

// Run applies pending schema migrations to the configured database.
func (c *MigrateCmd) Run(ctx *Context) error {
	var (
		db      *sql.DB
		dir     string
		dialect migration.Dialect
	)

	switch s := ctx.Store.(type) {
	case *sqlite.Store:
		if err := s.Open(); err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		db, dir, dialect = s.DB(), "sqlite", migration.DialectSQLite
	case *postgres.Store:
		if err := s.Open(); err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		db, dir, dialect = s.DB(), "postgres", migration.DialectPostgres
	default:
		return fmt.Errorf("migrate command requires a SQLite or PostgreSQL database")
	}
	defer ctx.Store.Close()

	subFS, err := fs.Sub(migrations.FS, dir)
	if err != nil {
		return fmt.Errorf("access migrations: %w", err)
	}

	runner := migration.NewRunner(db, subFS, dialect)
	count, err := runner.Apply(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		fmt.Println("No migrations to apply. Database is up to date.")
	} else {
		fmt.Printf("\nSuccessfully applied %d migration(s).\n", count)
	}
	return nil
}
