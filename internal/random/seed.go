// Package random provides seed generation for the per-turn random sources.
//
// Seeds come from crypto/rand so that turns are unpredictable, while the
// pseudo-random source built from a seed is deterministic and replayable.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// NewSource returns a deterministic source for seed.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// SeedFunc produces seeds; the service takes one so tests can pin turns.
type SeedFunc func() (int64, error)

// Fixed returns a SeedFunc that always yields seed.
func Fixed(seed int64) SeedFunc {
	return func() (int64, error) { return seed, nil }
}
