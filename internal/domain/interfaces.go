package domain

import (
	ic "github.com/libp2p/go-libp2p/core/crypto"
	"github.com/libp2p/go-libp2p/core/peer"
)

// HomeDirProvider resolves the user's home directory. The keystore depends
// only on this narrow capability so tests can point it at a scratch dir.
type HomeDirProvider interface {
	UserHomeDir() (string, bool)
}

// Keystore persists the long-term identity keypair.
type Keystore interface {
	SaveKeypair(priv ic.PrivKey) error
	LoadKeypair() (ic.PrivKey, error)
}

// IdentityService creates and retrieves the local peer identity.
type IdentityService interface {
	// Generate creates a new keypair (deterministic when seedPhrase is
	// non-empty), persists it, and returns the peer ID of the stored key.
	Generate(seedPhrase string) (peer.ID, error)
	// Read returns the peer ID of the already-persisted keypair.
	Read() (peer.ID, error)
}
