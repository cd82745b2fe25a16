package crypto_test

import (
	"strings"
	"testing"

	"github.com/tyler-smith/go-bip39"

	"chaincraft/internal/crypto"
)

func TestSuggestSeedPhrase_Valid(t *testing.T) {
	phrase, err := crypto.SuggestSeedPhrase()
	if err != nil {
		t.Fatalf("suggest seed phrase: %v", err)
	}
	if !bip39.IsMnemonicValid(phrase) {
		t.Fatalf("expected a valid BIP-39 mnemonic, got %q", phrase)
	}
	if words := len(strings.Fields(phrase)); words != 24 {
		t.Fatalf("expected 24 words, got %d", words)
	}
}

func TestSuggestSeedPhrase_Fresh(t *testing.T) {
	a, err := crypto.SuggestSeedPhrase()
	if err != nil {
		t.Fatalf("suggest seed phrase: %v", err)
	}
	b, err := crypto.SuggestSeedPhrase()
	if err != nil {
		t.Fatalf("suggest seed phrase: %v", err)
	}
	if a == b {
		t.Fatal("suggested phrases must not repeat")
	}
}
