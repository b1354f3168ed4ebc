package utils

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// NewRand returns a deterministic PCG-backed generator for the given seed
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// NewSeed draws a high-entropy seed from crypto/rand
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, errors.Wrap(err, "[NewSeed] failed to read random seed")
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// ResolveSeed returns seed unchanged, or a fresh random seed when it is 0
func ResolveSeed(seed int64) (int64, error) {
	if seed != 0 {
		return seed, nil
	}
	return NewSeed()
}
