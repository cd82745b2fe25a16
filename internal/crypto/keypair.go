package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	ic "github.com/libp2p/go-libp2p/core/crypto"

	"chaincraft/internal/domain"
)

// GenerateKeypair returns an Ed25519 signing keypair. A non-nil seed makes
// generation deterministic: the same seed always yields bit-identical keys.
// With a nil seed the key is drawn from the system CSPRNG.
func GenerateKeypair(seed *domain.Seed) (ic.PrivKey, error) {
	if seed == nil {
		priv, _, err := ic.GenerateEd25519Key(rand.Reader)
		if err != nil {
			return nil, err
		}
		return priv, nil
	}

	sk := ed25519.NewKeyFromSeed(seed[:])
	priv, err := ic.UnmarshalEd25519PrivateKey(sk)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrKeyConstruct, err)
	}
	return priv, nil
}
