// Package hash includes all SHA-256 hashing used by the Merkle engine.
package hash

import (
	"github.com/minio/sha256-simd"
)

// Hash defines a function that returns the sha256 checksum of the data passed in.
func Hash(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// CustomSHA256Hasher returns a hash function that uses an enclosed hasher.
// This is not safe for concurrent use as the same hasher is being called
// throughout. Callers that hash from multiple goroutines should create one
// hasher per goroutine.
func CustomSHA256Hasher() func([]byte) [32]byte {
	hasher := sha256.New()
	var h [32]byte

	return func(data []byte) [32]byte {
		hasher.Reset()
		hasher.Write(data)
		hasher.Sum(h[:0])

		return h
	}
}
