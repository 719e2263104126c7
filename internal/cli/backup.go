package cli

import (
	"fmt"

	"github.com/bluesmoth12/Blossom/internal/backup"
	"github.com/bluesmoth12/Blossom/internal/storage/sqlite"
)

// backupManager resolves the backup manager for the configured store.
// Backups only apply to the SQLite backend.
func backupManager(ctx *Context) (*backup.Manager, error) {
	s, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return nil, fmt.Errorf("backups only support SQLite storage; use pg_dump for PostgreSQL")
	}
	return backup.NewManager(s.Path()), nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}
	path, err := mgr.Create()
	if err != nil {
		return err
	}
	fmt.Printf("Created backup: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}
	backups, err := mgr.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Printf("No backups found in %s\n", mgr.Dir())
		return nil
	}
	for _, b := range backups {
		fmt.Printf("%s  %s  %d bytes\n", b.Timestamp.Format("2006-01-02 15:04:05"), b.Path, b.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	Path string `arg:"" help:"Backup file to restore from."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}
	if err := mgr.Restore(c.Path); err != nil {
		return err
	}
	fmt.Printf("Restored database from: %s\n", c.Path)
	return nil
}
