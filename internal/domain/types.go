package domain

// Seed is the fixed-size generation seed derived from a seed phrase.
// A nil *Seed means "no deterministic seed": the keypair is drawn from
// the system CSPRNG instead.
type Seed [32]byte
