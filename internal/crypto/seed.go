package crypto

import (
	"golang.org/x/crypto/sha3"

	"chaincraft/internal/domain"
)

// SeedFromPhrase maps a seed phrase to the fixed 32-byte generation seed by
// hashing its bytes with SHA3-256. An empty phrase means no deterministic
// seed was supplied and yields nil.
func SeedFromPhrase(phrase string) *domain.Seed {
	if phrase == "" {
		return nil
	}
	sum := sha3.Sum256([]byte(phrase))
	seed := domain.Seed(sum)
	return &seed
}
