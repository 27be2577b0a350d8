package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// RNG is the single random stream a Session draws from. Draw order is part of
// the simulation's observable behavior, so implementations must be sequential.
type RNG interface {
	IntN(n int) int
}

// SeededRNG returns the deterministic stream used for a given seed.
func SeededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
