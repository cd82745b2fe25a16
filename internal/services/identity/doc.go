// Package identity composes seed derivation, keypair generation, secure
// storage and peer-ID derivation into the two top-level identity flows.
package identity
