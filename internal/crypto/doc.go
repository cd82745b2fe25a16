// Package crypto exposes the key-generation primitives used by chaincraft.
//
// Contents
//
//   - Seed derivation from a user-supplied phrase (SeedFromPhrase)
//   - Ed25519 keypair generation, seeded or random (GenerateKeypair)
//   - BIP-39 mnemonic suggestion for reproducible identities (SuggestSeedPhrase)
//
// # Notes
//
// Seed derivation is a pure function; callers should wipe the returned seed
// with memzero once the keypair has been constructed.
package crypto
