// Package cli defines the blossom commands. Each command receives a
// Context carrying the selected storage backend and loaded config.
package cli

import (
	"github.com/bluesmoth12/Blossom/internal/config"
	"github.com/bluesmoth12/Blossom/internal/storage"
)

type Context struct {
	Store    storage.Provider
	Config   *config.Config
	Database string
}
