// Package hashing fingerprints values that know how to feed themselves into a hash.Hash.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"

	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object and returns a string
// representation of its hash. Sha256 is a HashFunc.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is implemented by anything that can write a canonical form of
// itself into a hash.Hash. Two values that write the same bytes are
// considered the same.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the hex-encoded SHA-256 of the hashable. Used for stable
// fingerprints that end up in logs and trace attributes.
func Sha256(hashable Hashable) (string, error) {
	h := sha256.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Xxh3 returns the 64-bit xxh3 hash of the hashable. It is the cheap key
// used for in-memory deduplication.
func Xxh3(hashable Hashable) (uint64, error) {
	h := xxh3.New()

	if err := hashable.UpdateHash(h); err != nil {
		return 0, err
	}

	return h.Sum64(), nil
}

// HashableString is a string that implements Hashable.
type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))

	return err
}

// Sequence hashes its members in order, separated by a zero byte so that
// ("ab", "c") and ("a", "bc") do not collide.
type Sequence []Hashable

func (s Sequence) UpdateHash(h hash.Hash) error {
	for i, member := range s {
		if i > 0 {
			if _, err := h.Write([]byte{0}); err != nil {
				return err
			}
		}

		if err := member.UpdateHash(h); err != nil {
			return err
		}
	}

	return nil
}
