// Package peerid derives the network-visible peer identifier from identity
// key material.
//
// The identifier follows the libp2p convention: a multihash of the public
// key, rendered in base58. It is a pure function of the public key, so the
// same key always names the same peer across runs and implementations.
package peerid

import (
	ic "github.com/libp2p/go-libp2p/core/crypto"
	"github.com/libp2p/go-libp2p/core/peer"
	ma "github.com/multiformats/go-multiaddr"
)

// FromPublicKey computes the stable peer identifier for pub.
func FromPublicKey(pub ic.PubKey) (peer.ID, error) {
	return peer.IDFromPublicKey(pub)
}

// Multiaddr renders id as a /p2p/ multiaddr component.
func Multiaddr(id peer.ID) (ma.Multiaddr, error) {
	return ma.NewMultiaddr("/p2p/" + id.String())
}
