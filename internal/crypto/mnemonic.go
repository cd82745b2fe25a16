package crypto

import "github.com/tyler-smith/go-bip39"

// SuggestSeedPhrase returns a freshly generated 24-word BIP-39 mnemonic
// suitable for later use as a seed phrase. Nothing is persisted.
func SuggestSeedPhrase() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}
