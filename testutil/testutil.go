package testutil

import (
	"math/rand"
	"sync"
)

// IsPrime reports whether n is prime, by trial division with odd divisors.
func IsPrime(n uint32) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	m := uint64(n)
	for d := uint64(3); d*d <= m; d += 2 {
		if m%d == 0 {
			return false
		}
	}
	return true
}

// PrimesBelow returns every prime in [2, n) in increasing order.
func PrimesBelow(n uint32) []uint32 {
	return PrimesInRange(2, n)
}

// PrimesInRange returns every prime in [lo, hi) in increasing order.
func PrimesInRange(lo, hi uint32) []uint32 {
	var primes []uint32
	for i := uint64(lo); i < uint64(hi); i++ {
		if IsPrime(uint32(i)) {
			primes = append(primes, uint32(i))
		}
	}
	return primes
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewSource(r.seed))
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint32 returns a pseudo-random uint32.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint32()
}

// BlockBase returns a random nonzero multiple of blockSize below 2^32.
// blockSize must be a power of two in [2, 2^31].
func (r *RNG) BlockBase(blockSize uint32) uint32 {
	blocks := uint64(1<<32) / uint64(blockSize)
	r.mu.Lock()
	defer r.mu.Unlock()
	return uint32(uint64(1+r.rand.Int63n(int64(blocks-1))) * uint64(blockSize))
}
