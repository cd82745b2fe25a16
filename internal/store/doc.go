// Package store provides file-based persistence for the identity keypair.
//
// The private key is written as standard base64 of its libp2p protobuf
// encoding to a fixed path under the user's home directory, with the
// containing directory restricted to 0700 and the key file to 0600.
//
// Saving is not atomic: directory creation, content write and permission
// tightening are separate steps, so a crash mid-sequence can leave a
// directory without a file, or a freshly written file whose mode has not
// been reapplied yet. Known gap, accepted for this store.
package store
