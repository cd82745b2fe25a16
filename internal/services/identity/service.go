package identity

import (
	"github.com/libp2p/go-libp2p/core/peer"

	"chaincraft/internal/crypto"
	"chaincraft/internal/domain"
	"chaincraft/internal/peerid"
	"chaincraft/internal/util/memzero"
)

// Service manages the local peer identity using a backing keystore.
type Service struct {
	store domain.Keystore
}

// New returns an identity service backed by the given keystore.
func New(store domain.Keystore) *Service { return &Service{store: store} }

// Generate creates a new keypair, persists it, and returns its peer ID.
// A non-empty seedPhrase makes generation deterministic: the same phrase
// always reproduces the same identity.
func (s *Service) Generate(seedPhrase string) (peer.ID, error) {
	seed := crypto.SeedFromPhrase(seedPhrase)
	if seed != nil {
		defer memzero.Zero(seed[:])
	}

	kp, err := crypto.GenerateKeypair(seed)
	if err != nil {
		return "", err
	}
	if err := s.store.SaveKeypair(kp); err != nil {
		return "", err
	}

	// Derive the reported ID from what is now on disk rather than the
	// in-memory keypair, so a save/encode mismatch surfaces here instead
	// of at the next startup.
	return s.Read()
}

// Read returns the peer ID of the persisted keypair.
func (s *Service) Read() (peer.ID, error) {
	kp, err := s.store.LoadKeypair()
	if err != nil {
		return "", err
	}
	return peerid.FromPublicKey(kp.GetPublic())
}

// Compile-time assertion that Service implements domain.IdentityService.
var _ domain.IdentityService = (*Service)(nil)
