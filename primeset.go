package primesieve

import (
	"fmt"
	"io"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// PrimeSet is an Emitter that collects primes into a 32-bit Roaring bitmap.
//
// It rejects primes that do not exceed the previous one with ErrOutOfOrder,
// which makes it usable as an ordering check on any prime stream.
// The full 32-bit stream takes roughly 400 MiB; use WithLimit for less.
type PrimeSet struct {
	rb   *roaring.Bitmap
	last uint32
}

// NewPrimeSet creates an empty PrimeSet.
func NewPrimeSet() *PrimeSet {
	return &PrimeSet{rb: roaring.New()}
}

// ReadPrimeSet reads a PrimeSet serialized with WriteTo.
func ReadPrimeSet(r io.Reader) (*PrimeSet, error) {
	rb := roaring.New()
	if _, err := rb.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("read prime set: %w", err)
	}
	s := &PrimeSet{rb: rb}
	if !rb.IsEmpty() {
		s.last = rb.Maximum()
	}
	return s, nil
}

// Emit implements Emitter.
func (s *PrimeSet) Emit(p uint32) error {
	if !s.rb.IsEmpty() && p <= s.last {
		return fmt.Errorf("%w: %d after %d", ErrOutOfOrder, p, s.last)
	}
	s.rb.Add(p)
	s.last = p
	return nil
}

// Contains reports whether p was emitted.
func (s *PrimeSet) Contains(p uint32) bool {
	return s.rb.Contains(p)
}

// Cardinality returns the number of primes in the set.
func (s *PrimeSet) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Rank returns the number of primes in the set that are <= x.
// For a set filled by a complete run this is the prime-counting function.
func (s *PrimeSet) Rank(x uint32) uint64 {
	return s.rb.Rank(x)
}

// Max returns the largest prime in the set. ok is false if the set is empty.
func (s *PrimeSet) Max() (p uint32, ok bool) {
	if s.rb.IsEmpty() {
		return 0, false
	}
	return s.rb.Maximum(), true
}

// All returns an iterator over the set in increasing order.
func (s *PrimeSet) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// WriteTo writes the set in the portable Roaring format.
func (s *PrimeSet) WriteTo(w io.Writer) (int64, error) {
	s.rb.RunOptimize()
	return s.rb.WriteTo(w)
}
