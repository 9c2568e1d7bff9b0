package games

import (
	"crypto/rand"
	"math/big"
)

// Source yields one uniformly distributed integer in [0, n). Resolvers draw
// exactly once per round through this interface; tests substitute a scripted
// source.
type Source interface {
	IntN(n int) int
}

// CryptoSource draws from crypto/rand. Outcomes must be unpredictable and
// non-replayable, so a seeded PRNG is not acceptable here.
type CryptoSource struct{}

func (CryptoSource) IntN(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails when the platform entropy source is
		// broken; at that point no draw is trustworthy.
		panic("games: entropy source unavailable: " + err.Error())
	}
	return int(v.Int64())
}
