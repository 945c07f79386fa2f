package primesieve

import (
	"context"
	"errors"
	"iter"
	"time"

	"github.com/hupe1980/primesieve/internal/bitset"
	"golang.org/x/time/rate"
)

const (
	// BlockSize is the number of integers in one segmented block.
	// Block bases are multiples of BlockSize.
	BlockSize = 1 << 16

	// MaxLimit is the exclusive upper bound of the 32-bit domain.
	MaxLimit = 1 << 32

	// baseTrialLimit bounds the primes that strike multiples in the base
	// sieve: 256 * 256 = BlockSize.
	baseTrialLimit = 1 << 8
)

// Stats summarizes a run.
type Stats struct {
	// Primes is the number of primes emitted.
	Primes uint64
	// Largest is the last prime emitted.
	Largest uint32
	// Blocks is the number of segmented blocks sieved.
	Blocks int
	// Duration is the wall time of the run.
	Duration time.Duration
}

// Sieve enumerates the primes below its limit in strictly increasing order.
//
// It owns the divisor mask (odd integers below BlockSize) and the block mask
// used by the single-threaded segmented phase. A Sieve may be run many times
// but is not safe for concurrent use.
type Sieve struct {
	opts     options
	divisors bitset.Mask
	primes   bitset.Mask
}

// New creates a Sieve configured by opts.
func New(opts ...Option) (*Sieve, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Sieve{opts: o}, nil
}

// Limit returns the exclusive upper bound of the emitted primes.
func (s *Sieve) Limit() uint64 {
	return s.opts.limit
}

// Run emits every prime below the limit to e, in strictly increasing order.
//
// Run returns at the first emit failure with an *EmitError, or with ctx.Err()
// if ctx is canceled between blocks.
func (s *Sieve) Run(ctx context.Context, e Emitter) (Stats, error) {
	start := time.Now()

	k := &sink{
		emitter: e,
		limit:   s.opts.limit,
		metrics: s.opts.metricsCollector,
	}
	if s.opts.progressInterval > 0 {
		k.progress = &rate.Sometimes{Interval: s.opts.progressInterval}
	}

	err := s.run(ctx, k)
	if errors.Is(err, errLimitReached) || errors.Is(err, errStopped) {
		err = nil
	}

	k.stats.Duration = time.Since(start)
	s.opts.logger.LogRun(ctx, k.stats, err)
	return k.stats, err
}

// All returns an iterator over the primes below the limit.
//
// Breaking out of the loop stops the sieve. Errors end the iteration
// silently; use Run to observe them.
func (s *Sieve) All(ctx context.Context) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		_, _ = s.Run(ctx, EmitterFunc(func(p uint32) error {
			if !yield(p) {
				return errStopped
			}
			return nil
		}))
	}
}

func (s *Sieve) run(ctx context.Context, k *sink) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	s.divisors.ClearAll()
	if err := sieveBase(&s.divisors, k.emit); err != nil {
		return err
	}
	elapsed := time.Since(start)
	s.opts.metricsCollector.RecordBaseSieve(k.stats.Primes, elapsed)
	s.opts.logger.LogBaseSieve(ctx, k.stats.Primes, elapsed)

	if s.opts.limit <= BlockSize {
		return nil
	}
	if s.opts.workers > 1 {
		return s.sieveSegmentsParallel(ctx, k, s.opts.workers)
	}
	return s.sieveSegments(ctx, k)
}

// errLimitReached ends a run once a prime at or above the limit is produced.
var errLimitReached = errors.New("limit reached")

// sink forwards primes to the emitter and keeps the run statistics.
type sink struct {
	emitter  Emitter
	limit    uint64
	metrics  MetricsCollector
	progress *rate.Sometimes
	stats    Stats
}

func (k *sink) emit(p uint32) error {
	if uint64(p) >= k.limit {
		return errLimitReached
	}
	if err := k.emitter.Emit(p); err != nil {
		if errors.Is(err, errStopped) {
			return err
		}
		k.metrics.RecordEmitError()
		return &EmitError{Prime: p, cause: err}
	}
	k.stats.Primes++
	k.stats.Largest = p
	return nil
}

func (k *sink) blockDone(ctx context.Context, logger *Logger, base uint32, primes int, duration time.Duration) {
	k.stats.Blocks++
	k.metrics.RecordBlock(base, primes, duration)
	logger.LogBlock(ctx, base, primes, duration)
	if k.progress != nil {
		k.progress.Do(func() {
			logger.LogProgress(ctx, base, k.limit, k.stats.Primes)
		})
	}
}
