package store

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	ic "github.com/libp2p/go-libp2p/core/crypto"

	"chaincraft/internal/domain"
)

const (
	appDir  = ".chaincraft"
	keyFile = "keypair.key"

	dirMode  = os.FileMode(0o700)
	fileMode = os.FileMode(0o600)
)

// KeyFileStore persists the identity keypair under the user's home directory.
type KeyFileStore struct {
	home domain.HomeDirProvider
	mu   sync.Mutex
}

// NewKeyFileStore returns a KeyFileStore resolving paths through home.
func NewKeyFileStore(home domain.HomeDirProvider) *KeyFileStore {
	return &KeyFileStore{home: home}
}

func (s *KeyFileStore) keyPath() (string, error) {
	home, ok := s.home.UserHomeDir()
	if !ok {
		return "", domain.ErrHomeDirNotFound
	}
	return filepath.Join(home, appDir, keyFile), nil
}

// SaveKeypair writes priv to the key file, overwriting any existing key.
// The containing directory is created as needed and restricted to the
// owner; the file mode is reapplied after the write so a pre-existing file
// with looser bits is tightened too.
func (s *KeyFileStore) SaveKeypair(priv ic.PrivKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.keyPath()
	if err != nil {
		return err
	}
	raw, err := ic.MarshalPrivateKey(priv)
	if err != nil {
		return fmt.Errorf("marshal keypair: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(raw)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("create key directory: %w", err)
	}
	if err := os.Chmod(dir, dirMode); err != nil {
		return fmt.Errorf("restrict key directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(encoded), fileMode); err != nil {
		return fmt.Errorf("write key file: %w", err)
	}
	if err := os.Chmod(path, fileMode); err != nil {
		return fmt.Errorf("restrict key file: %w", err)
	}
	return nil
}

// LoadKeypair reads the key file and reconstructs the full keypair.
func (s *KeyFileStore) LoadKeypair() (ic.PrivKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.keyPath()
	if err != nil {
		return nil, err
	}
	encoded, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}
	raw, err := base64.StdEncoding.DecodeString(string(encoded))
	if err != nil {
		return nil, fmt.Errorf("%w: base64: %v", domain.ErrDecodeKey, err)
	}
	priv, err := ic.UnmarshalPrivateKey(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecodeKey, err)
	}
	return priv, nil
}

// Compile-time assertion that KeyFileStore implements domain.Keystore.
var _ domain.Keystore = (*KeyFileStore)(nil)
