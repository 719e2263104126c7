package cli

import (
	"fmt"
	"os"

	"github.com/bluesmoth12/Blossom/internal/storage/sqlite"
)

type InitCmd struct {
	Force bool `help:"Delete the existing database before initializing. SQLite only."`
}

// Run creates the database schema and seeds the meditation catalog.
func (c *InitCmd) Run(ctx *Context) error {
	if c.Force {
		s, ok := ctx.Store.(*sqlite.Store)
		if !ok {
			return fmt.Errorf("--force only supports SQLite storage")
		}
		if _, err := os.Stat(s.Path()); err == nil {
			if err := os.Remove(s.Path()); err != nil {
				return fmt.Errorf("delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", s.Path())
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	fmt.Printf("Initialized blossom storage at: %s\n", ctx.Database)
	return nil
}
