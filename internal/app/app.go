package app

import (
	"chaincraft/internal/domain"
	identitysvc "chaincraft/internal/services/identity"
	"chaincraft/internal/store"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home string // optional override of the resolved home directory
}

// App bundles the store and services used by the CLI.
type App struct {
	Keystore domain.Keystore
	Identity domain.IdentityService
}

// New constructs the dependency graph from cfg.
func New(cfg Config) *App {
	var home domain.HomeDirProvider = store.OSHomeDir{}
	if cfg.Home != "" {
		home = store.FixedHomeDir(cfg.Home)
	}

	ks := store.NewKeyFileStore(home)
	return &App{
		Keystore: ks,
		Identity: identitysvc.New(ks),
	}
}
