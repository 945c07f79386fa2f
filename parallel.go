package primesieve

import (
	"context"
	"time"

	"github.com/hupe1980/primesieve/internal/bitset"
	"golang.org/x/sync/errgroup"
)

// blockSlot is the per-worker state of the parallel segmented phase.
type blockSlot struct {
	base    uint32
	mask    bitset.Mask
	primes  []uint32
	elapsed time.Duration
}

// sieveSegmentsParallel sieves batches of consecutive blocks concurrently and
// emits each batch in increasing base order once all of its blocks are done.
// The divisor mask is shared read-only.
func (s *Sieve) sieveSegmentsParallel(ctx context.Context, k *sink, workers int) error {
	slots := make([]blockSlot, workers)
	for i := range slots {
		slots[i].primes = make([]uint32, 0, 8192)
	}

	base, more := uint32(BlockSize), true
	for more && uint64(base) < k.limit {
		if err := ctx.Err(); err != nil {
			return err
		}

		n := 0
		for n < len(slots) && more && uint64(base) < k.limit {
			slots[n].base = base
			n++
			base, more = nextBase(base)
		}

		g, gctx := errgroup.WithContext(ctx)
		for i := range n {
			slot := &slots[i]
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				start := time.Now()
				sieveBlock(&s.divisors, &slot.mask, slot.base)
				slot.primes = slot.primes[:0]
				slot.mask.ForEachClear(func(i uint32) bool {
					slot.primes = append(slot.primes, slot.base+2*i+1)
					return true
				})
				slot.elapsed = time.Since(start)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		for i := range n {
			slot := &slots[i]
			for _, p := range slot.primes {
				if err := k.emit(p); err != nil {
					return err
				}
			}
			k.blockDone(ctx, s.opts.logger, slot.base, len(slot.primes), slot.elapsed)
		}
	}
	return nil
}
