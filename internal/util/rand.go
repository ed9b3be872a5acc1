package util

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// Seed draws a non-zero seed from the system entropy source
func Seed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, err
	}
	s := int64(binary.LittleEndian.Uint64(b[:]) >> 1)
	if s == 0 {
		s = 1
	}
	return s, nil
}

// NewRand returns a seeded source; a zero seed is replaced by a random one
func NewRand(seed int64) (*rand.Rand, int64, error) {
	if seed == 0 {
		s, err := Seed()
		if err != nil {
			return nil, 0, err
		}
		seed = s
	}
	return rand.New(rand.NewSource(seed)), seed, nil
}
