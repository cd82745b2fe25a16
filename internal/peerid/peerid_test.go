package peerid_test

import (
	"bytes"
	"strings"
	"testing"

	ic "github.com/libp2p/go-libp2p/core/crypto"
	"github.com/mr-tron/base58/base58"
	ma "github.com/multiformats/go-multiaddr"

	"chaincraft/internal/crypto"
	"chaincraft/internal/domain"
	"chaincraft/internal/peerid"
)

func testPublicKey(t *testing.T) ic.PubKey {
	t.Helper()
	var seed domain.Seed
	for i := range seed {
		seed[i] = byte(i + 1)
	}
	kp, err := crypto.GenerateKeypair(&seed)
	if err != nil {
		t.Fatalf("generate keypair: %v", err)
	}
	return kp.GetPublic()
}

func TestFromPublicKey_Stable(t *testing.T) {
	pub := testPublicKey(t)

	a, err := peerid.FromPublicKey(pub)
	if err != nil {
		t.Fatalf("derive peer ID: %v", err)
	}
	b, err := peerid.FromPublicKey(pub)
	if err != nil {
		t.Fatalf("derive peer ID: %v", err)
	}
	if a != b {
		t.Fatalf("peer ID not stable: %s vs %s", a, b)
	}
	if !strings.HasPrefix(a.String(), "12D3KooW") {
		t.Fatalf("expected an ed25519 identity multihash, got %s", a)
	}
}

// The identifier must be a base58btc identity multihash whose digest is the
// marshalled public key, so independent implementations agree on it.
func TestFromPublicKey_MultihashLayout(t *testing.T) {
	pub := testPublicKey(t)

	id, err := peerid.FromPublicKey(pub)
	if err != nil {
		t.Fatalf("derive peer ID: %v", err)
	}
	raw, err := base58.Decode(id.String())
	if err != nil {
		t.Fatalf("peer ID is not base58: %v", err)
	}
	if raw[0] != 0x00 {
		t.Fatalf("expected identity multihash code, got 0x%02x", raw[0])
	}
	if int(raw[1]) != len(raw)-2 {
		t.Fatalf("multihash length byte %d does not match digest length %d", raw[1], len(raw)-2)
	}
	pubRaw, err := ic.MarshalPublicKey(pub)
	if err != nil {
		t.Fatalf("marshal public key: %v", err)
	}
	if !bytes.Equal(raw[2:], pubRaw) {
		t.Fatal("multihash digest does not match the marshalled public key")
	}
}

func TestMultiaddr_RoundTrip(t *testing.T) {
	id, err := peerid.FromPublicKey(testPublicKey(t))
	if err != nil {
		t.Fatalf("derive peer ID: %v", err)
	}
	addr, err := peerid.Multiaddr(id)
	if err != nil {
		t.Fatalf("render multiaddr: %v", err)
	}
	got, err := addr.ValueForProtocol(ma.P_P2P)
	if err != nil {
		t.Fatalf("extract p2p component: %v", err)
	}
	if got != id.String() {
		t.Fatalf("multiaddr carries %s, want %s", got, id)
	}
}
