package bitset

import "math/bits"

const (
	// Size is the number of bits in a Mask.
	// 32768 bits = one bit per odd integer in a window of 65536 integers.
	Size = 1 << 15

	// Bytes is the in-memory size of a Mask.
	Bytes = Size / 8

	// words is the number of uint64 words backing a Mask.
	words = Size / 64
)

// Mask is a fixed-size bitset of Size bits.
//
// The zero value is a cleared mask ready for use.
type Mask [words]uint64

// Test returns true if the bit at the given index is set.
// Indices at or beyond Size report false.
func (m *Mask) Test(i uint32) bool {
	if i >= Size {
		return false
	}
	return m[i>>6]&(uint64(1)<<(i&63)) != 0
}

// Set sets the bit at the given index. Indices at or beyond Size are ignored.
func (m *Mask) Set(i uint32) {
	if i >= Size {
		return
	}
	m[i>>6] |= uint64(1) << (i & 63)
}

// ClearAll clears all bits in the mask.
func (m *Mask) ClearAll() {
	clear(m[:])
}

// Count returns the number of set bits.
func (m *Mask) Count() int {
	count := 0
	for _, w := range m {
		if w != 0 {
			count += bits.OnesCount64(w)
		}
	}
	return count
}

// NextClear returns the index of the next clear bit starting from i (inclusive).
// The second result is false if every bit from i to the end of the mask is set.
func (m *Mask) NextClear(i uint32) (uint32, bool) {
	if i >= Size {
		return 0, false
	}

	// 1. Check the word containing i
	wordIdx := i >> 6
	val := ^m[wordIdx]
	// Mask out bits before i
	val &= ^uint64(0) << (i & 63)
	if val != 0 {
		return wordIdx<<6 + uint32(bits.TrailingZeros64(val)), true
	}

	// 2. Check remaining words
	for w := wordIdx + 1; w < words; w++ {
		if val := ^m[w]; val != 0 {
			return w<<6 + uint32(bits.TrailingZeros64(val)), true
		}
	}
	return 0, false
}

// ForEachClear calls fn for every clear bit in increasing index order.
// Iteration stops early if fn returns false.
func (m *Mask) ForEachClear(fn func(i uint32) bool) {
	for w, word := range m {
		val := ^word
		for val != 0 {
			tz := bits.TrailingZeros64(val)
			if !fn(uint32(w)<<6 + uint32(tz)) {
				return
			}
			val &= val - 1
		}
	}
}
