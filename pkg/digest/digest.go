// Package digest provides the one-way digest capability consumed by the
// address checksum. The digest is an interface so callers can swap the
// algorithm or substitute a stub in tests.
package digest

import (
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

const HashSize = 32

// Hash is a 256-bit digest output.
type Hash [HashSize]byte

// Hasher produces a fixed-size one-way digest of its input.
type Hasher interface {
	Sum(data []byte) Hash
}

// Keccak256 hashes with the pre-NIST Keccak-256 permutation.
type Keccak256 struct{}

func (Keccak256) Sum(data []byte) Hash {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)

	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

// Blake2b hashes with BLAKE2b-256.
type Blake2b struct{}

func (Blake2b) Sum(data []byte) Hash {
	return blake2b.Sum256(data)
}

// Blake3 hashes with BLAKE3.
type Blake3 struct{}

func (Blake3) Sum(data []byte) Hash {
	return blake3.Sum256(data)
}
