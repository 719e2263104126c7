package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bluesmoth12/Blossom/internal/keyring"
	"github.com/bluesmoth12/Blossom/internal/storage/postgres"
)

// CredentialsSetCmd stores the PostgreSQL connection string in the OS keyring.
type CredentialsSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in the keyring."`
}

func (cmd *CredentialsSetCmd) Run(ctx *Context) error {
	if !postgres.IsConnString(cmd.ConnectionString) &&
		!strings.Contains(cmd.ConnectionString, "host=") {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	if err := postgres.ValidateConnString(cmd.ConnectionString); err != nil {
		if errors.Is(err, postgres.ErrEmbeddedCredentials) {
			// The keyring is encrypted at rest, so embedded credentials are
			// tolerated here, unlike on the command line.
			fmt.Println("Warning: connection string contains an embedded password; it will be stored in the encrypted OS keyring.")
		} else {
			return fmt.Errorf("invalid connection string: %w", err)
		}
	}

	if err := keyring.SetConnectionString(cmd.ConnectionString); err != nil {
		return fmt.Errorf("store connection string in keyring: %w", err)
	}

	fmt.Println("Connection string stored in OS keyring.")
	fmt.Println("blossom will use it whenever --database is not set to a file path.")
	return nil
}

// CredentialsShowCmd prints the stored connection string with the
// password masked.
type CredentialsShowCmd struct{}

func (cmd *CredentialsShowCmd) Run(ctx *Context) error {
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string in keyring; use 'blossom credentials set' to store one")
		}
		return fmt.Errorf("read connection string from keyring: %w", err)
	}

	fmt.Println(maskPassword(connStr))
	return nil
}

// CredentialsClearCmd removes the stored connection string.
type CredentialsClearCmd struct{}

func (cmd *CredentialsClearCmd) Run(ctx *Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string in keyring")
		}
		return fmt.Errorf("delete connection string from keyring: %w", err)
	}
	fmt.Println("Connection string deleted from OS keyring.")
	return nil
}

// CredentialsStatusCmd reports whether the OS keyring is usable.
type CredentialsStatusCmd struct{}

func (cmd *CredentialsStatusCmd) Run(ctx *Context) error {
	if keyring.IsAvailable() {
		fmt.Println("OS keyring is available.")
		return nil
	}
	return errors.New("OS keyring is not available on this system")
}

// maskPassword hides the password portion of a connection string.
func maskPassword(connStr string) string {
	if postgres.IsConnString(connStr) {
		if idx := strings.Index(connStr, "://"); idx != -1 {
			remaining := connStr[idx+3:]
			if atIdx := strings.LastIndex(remaining, "@"); atIdx != -1 {
				userInfo := remaining[:atIdx]
				if colonIdx := strings.Index(userInfo, ":"); colonIdx != -1 {
					return connStr[:idx+3] + userInfo[:colonIdx] + ":****" + connStr[idx+3+atIdx:]
				}
			}
		}
		return connStr
	}

	if strings.Contains(connStr, "password=") {
		parts := strings.Fields(connStr)
		masked := make([]string, 0, len(parts))
		for _, part := range parts {
			if strings.HasPrefix(part, "password=") {
				masked = append(masked, "password=****")
			} else {
				masked = append(masked, part)
			}
		}
		return strings.Join(masked, " ")
	}
	return connStr
}
