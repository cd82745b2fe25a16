package domain

import "errors"

var (
	// ErrHomeDirNotFound is returned when no home directory can be resolved
	// for the current user.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrDecodeKey is returned when the stored key material is not valid
	// base64-wrapped protobuf. No partial key is ever reconstructed.
	ErrDecodeKey = errors.New("stored keypair is malformed")

	// ErrKeyConstruct is returned when seed bytes are rejected by the key
	// construction primitive. Unreachable while the seed is a fixed 32-byte
	// hash, but kept distinct in case the primitive's acceptance changes.
	ErrKeyConstruct = errors.New("keypair construction failed")
)
