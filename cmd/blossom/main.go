package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/bluesmoth12/Blossom/internal/cli"
	"github.com/bluesmoth12/Blossom/internal/config"
	"github.com/bluesmoth12/Blossom/internal/constants"
	"github.com/bluesmoth12/Blossom/internal/keyring"
	"github.com/bluesmoth12/Blossom/internal/logger"
	"github.com/bluesmoth12/Blossom/internal/storage"
	"github.com/bluesmoth12/Blossom/internal/storage/postgres"
	"github.com/bluesmoth12/Blossom/internal/storage/sqlite"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Config file path." type:"path" default:"${config_path}"`
	Database string `help:"SQLite file path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded; store them with 'blossom credentials set' instead."`
	Memory   bool   `help:"Use a throwaway in-memory store. Nothing survives the process."`
	Debug    bool   `help:"Enable debug logging to stderr."`

	Serve   cli.ServeCmd   `cmd:"" help:"Run the API server." default:"1"`
	Init    cli.InitCmd    `cmd:"" help:"Initialize blossom storage."`
	Migrate cli.MigrateCmd `cmd:"" help:"Run database migrations."`
	Backup  struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Credentials struct {
		Set    cli.CredentialsSetCmd    `cmd:"" help:"Store the PostgreSQL connection string in the OS keyring."`
		Show   cli.CredentialsShowCmd   `cmd:"" help:"Show the stored connection string (password masked)."`
		Clear  cli.CredentialsClearCmd  `cmd:"" help:"Remove the stored connection string."`
		Status cli.CredentialsStatusCmd `cmd:"" help:"Check OS keyring availability."`
	} `cmd:"" help:"Manage database credentials."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Skincare routine tracker and wellness companion backend"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": config.ExpandHome(constants.DefaultConfigPath),
		},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, LogDir: cfg.LogDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	store, database, err := selectStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appCtx := &cli.Context{
		Store:    store,
		Config:   cfg,
		Database: database,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// selectStore picks the storage backend: an explicit connection string
// or file path first, then a keyring-stored PostgreSQL connection,
// then the configured SQLite file.
func selectStore(cfg *config.Config) (storage.Provider, string, error) {
	if CLI.Memory {
		return storage.NewMemoryStore(), ":memory:", nil
	}

	database := CLI.Database
	if database == "" {
		if connStr, err := keyring.GetConnectionString(); err == nil {
			database = connStr
		} else if !errors.Is(err, keyring.ErrNotFound) {
			logger.Warn("keyring unavailable, falling back to SQLite", "error", err)
		}
	}
	if database == "" {
		database = cfg.Database
	}

	if postgres.IsConnString(database) {
		if err := postgres.ValidateConnString(database); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) && CLI.Database != "" {
				return nil, "", fmt.Errorf("connection strings with embedded credentials are not allowed on the command line; store the full string with 'blossom credentials set' instead")
			}
			if !errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, "", err
			}
		}
		return postgres.NewStore(database), database, nil
	}

	path := config.ExpandHome(database)
	return sqlite.NewStore(path), path, nil
}
