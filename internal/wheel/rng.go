package wheel

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/big"
	"math/rand/v2"
)

// RandomSource supplies the randomness a spin consumes.
type RandomSource interface {
	Float64() float64 // [0, 1)
	IntN(n int) int   // [0, n), n > 0
}

// crypto random : default source
type cryptoRNG struct{}

func (cryptoRNG) Float64() float64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return rand.Float64()
	}
	u := binary.BigEndian.Uint64(buf[:]) >> 11 // 53 bits
	return float64(u) / (1 << 53)
}

func (cryptoRNG) IntN(n int) int {
	v, err := cryptoRand.Int(cryptoRand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return rand.IntN(n)
	}
	return int(v.Int64())
}

// DefaultRNG returns the crypto-backed source used when none is configured.
func DefaultRNG() RandomSource { return cryptoRNG{} }

// Replicable RNG (tests, --seed)
type seededRNG struct{ r *rand.Rand }

// NewSeededRNG returns a deterministic PCG-backed source.
func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) Float64() float64 { return s.r.Float64() }
func (s *seededRNG) IntN(n int) int   { return s.r.IntN(n) }

// uniformBetween returns a float in [lo, hi).
func uniformBetween(rng RandomSource, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

// intBetween returns an int in [lo, hi], both inclusive.
func intBetween(rng RandomSource, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}
