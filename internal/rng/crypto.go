package rng

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
)

// Crypto draws from the operating system's secure random source.
type Crypto struct{}

// Intn returns a uniform integer in [0, n). It panics if n <= 0 or the
// entropy source fails.
func (Crypto) Intn(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to Intn")
	}
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("rng: reading entropy: %v", err))
	}
	return int(v.Int64())
}
