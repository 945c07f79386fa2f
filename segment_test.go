package primesieve

import (
	"testing"

	"github.com/hupe1980/primesieve/internal/bitset"
	"github.com/hupe1980/primesieve/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseMask(t testing.TB) *bitset.Mask {
	t.Helper()
	var divisors bitset.Mask
	require.NoError(t, sieveBase(&divisors, func(uint32) error { return nil }))
	return &divisors
}

func TestSieveBase(t *testing.T) {
	var divisors bitset.Mask
	var emitted []uint32
	err := sieveBase(&divisors, func(p uint32) error {
		emitted = append(emitted, p)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, testutil.PrimesBelow(BlockSize), emitted)

	for n := uint32(3); n < BlockSize; n += 2 {
		if divisors.Test(n>>1) == testutil.IsPrime(n) {
			t.Fatalf("divisor mask disagrees with oracle at %d", n)
		}
	}
	assert.False(t, divisors.Test(0), "1 is never struck")
}

func TestSieveBlock_MatchesOracle(t *testing.T) {
	divisors := baseMask(t)
	rng := testutil.NewRNG(4711)

	bases := []uint32{BlockSize, 2 * BlockSize, 255 * BlockSize, 256 * BlockSize, 1<<32 - BlockSize}
	for range 2 {
		bases = append(bases, rng.BlockBase(BlockSize))
	}

	var primes bitset.Mask
	for _, base := range bases {
		sieveBlock(divisors, &primes, base)

		var got []uint32
		require.NoError(t, emitBlock(&primes, base, func(p uint32) error {
			got = append(got, p)
			return nil
		}))

		hi := uint64(base) + BlockSize
		var expected []uint32
		if hi > 1<<32-1 {
			expected = testutil.PrimesInRange(base, 1<<32-1)
		} else {
			expected = testutil.PrimesInRange(base, uint32(hi))
		}
		assert.Equal(t, expected, got, "base=%d", base)
		assert.Equal(t, bitset.Size-len(expected), primes.Count(), "base=%d", base)
	}
}

func TestSieveBlock_ClearsPreviousBlock(t *testing.T) {
	divisors := baseMask(t)

	var primes bitset.Mask
	sieveBlock(divisors, &primes, 7*BlockSize)
	sieveBlock(divisors, &primes, BlockSize)

	var fresh bitset.Mask
	sieveBlock(divisors, &fresh, BlockSize)
	assert.Equal(t, fresh, primes)
}

func TestSieveBlock_LastBlock(t *testing.T) {
	divisors := baseMask(t)

	var primes bitset.Mask
	base := uint32(1<<32 - BlockSize)
	sieveBlock(divisors, &primes, base)

	var last uint32
	require.NoError(t, emitBlock(&primes, base, func(p uint32) error {
		last = p
		return nil
	}))
	assert.Equal(t, uint32(4294967291), last)
}

func TestNextBase(t *testing.T) {
	next, ok := nextBase(BlockSize)
	assert.True(t, ok)
	assert.Equal(t, uint32(2*BlockSize), next)

	_, ok = nextBase(1<<32 - BlockSize)
	assert.False(t, ok, "the last block must end the walk")

	blocks := 0
	for base, ok := uint32(BlockSize), true; ok; base, ok = nextBase(base) {
		blocks++
	}
	assert.Equal(t, 65535, blocks)
}

func BenchmarkSieveBlock(b *testing.B) {
	divisors := baseMask(b)
	var primes bitset.Mask
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sieveBlock(divisors, &primes, uint32(1<<31))
	}
}
