package primesieve

import (
	"context"
	"time"

	"github.com/hupe1980/primesieve/internal/bitset"
)

// sieveBlock marks every odd composite of the block [base, base+BlockSize)
// in primes. Bit i of primes stands for base+2i+1. base must be a nonzero
// multiple of BlockSize and divisors must be complete.
//
// Divisor candidates are visited in increasing order. That order is what makes
// the early exit at p*p > base+BlockSize-1 correct.
func sieveBlock(divisors, primes *bitset.Mask, base uint32) {
	primes.ClearAll()

	lo := uint64(base)
	top := lo + BlockSize - 1

	for pi, ok := divisors.NextClear(1); ok; pi, ok = divisors.NextClear(pi + 1) {
		p := uint64(2*pi + 1)
		sq := p * p
		if sq > top {
			break
		}

		// Smallest odd j with p*j >= base; p*p when it lies inside the block.
		j := p
		toSet := sq
		if lo > toSet {
			j = lo/p + 1
			if j&1 == 0 {
				j++
			}
			toSet = p * j
		}
		idx := (toSet - lo) >> 1
		maxJ := min(sq, BlockSize)

		for ; idx < bitset.Size && j < maxJ; j += 2 {
			if !divisors.Test(uint32(j >> 1)) {
				primes.Set(uint32(idx))
			}
			idx += p
		}

		for ; idx < bitset.Size; idx += p {
			primes.Set(uint32(idx))
		}
	}
}

// emitBlock emits the unmarked integers of a sieved block in increasing order.
func emitBlock(primes *bitset.Mask, base uint32, emit func(uint32) error) error {
	var err error
	primes.ForEachClear(func(i uint32) bool {
		err = emit(base + 2*i + 1)
		return err == nil
	})
	return err
}

// nextBase returns the base of the block following base.
// ok is false once the 32-bit domain is exhausted.
func nextBase(base uint32) (next uint32, ok bool) {
	next = base + BlockSize
	return next, next > base
}

func (s *Sieve) sieveSegments(ctx context.Context, k *sink) error {
	for base, ok := uint32(BlockSize), true; ok && uint64(base) < k.limit; base, ok = nextBase(base) {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		sieveBlock(&s.divisors, &s.primes, base)
		found := bitset.Size - s.primes.Count()
		if err := emitBlock(&s.primes, base, k.emit); err != nil {
			return err
		}
		k.blockDone(ctx, s.opts.logger, base, found, time.Since(start))
	}
	return nil
}
