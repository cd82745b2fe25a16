package store

import (
	"os"

	"chaincraft/internal/domain"
)

// OSHomeDir resolves the home directory of the user running the process.
type OSHomeDir struct{}

// UserHomeDir reports the current user's home directory, if any.
func (OSHomeDir) UserHomeDir() (string, bool) {
	dir, err := os.UserHomeDir()
	if err != nil || dir == "" {
		return "", false
	}
	return dir, true
}

// FixedHomeDir pins the home directory to a known path. Used for the --home
// override and for tests that point the store at a scratch directory.
type FixedHomeDir string

// UserHomeDir returns the pinned path.
func (d FixedHomeDir) UserHomeDir() (string, bool) {
	return string(d), d != ""
}

// Compile-time assertions that both providers satisfy the domain contract.
var (
	_ domain.HomeDirProvider = OSHomeDir{}
	_ domain.HomeDirProvider = FixedHomeDir("")
)
