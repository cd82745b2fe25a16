// Package memzero provides best-effort wiping of sensitive byte slices.
package memzero

// Zero overwrites b with zeros. Best effort: the compiler may keep copies
// elsewhere, so this only shortens the secret's lifetime in memory.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
