package primesieve

import (
	"fmt"
	"log/slog"
	"time"
)

// DefaultProgressInterval is how often a long run logs its progress.
const DefaultProgressInterval = 10 * time.Second

type options struct {
	limit            uint64
	workers          int
	metricsCollector MetricsCollector
	logger           *Logger
	progressInterval time.Duration
}

// Option configures a Sieve.
type Option func(*options)

// WithLimit sets the exclusive upper bound of the emitted primes.
//
// The limit must be in (0, 2^32]. The default, MaxLimit, enumerates every
// prime representable in 32 bits. The limit only filters the output and ends
// the block loop early; the sieve arithmetic is the same for every limit.
//
// Example:
//
//	s, _ := primesieve.New(primesieve.WithLimit(100))
//	s.Run(ctx, emitter) // 2, 3, 5, ..., 97
func WithLimit(limit uint64) Option {
	return func(o *options) {
		o.limit = limit
	}
}

// WithWorkers sets the number of blocks sieved concurrently.
//
// With workers == 1 (the default) the segmented phase is single-threaded and
// uses exactly two masks. With more workers each worker owns one block mask
// and its own prime buffer; output order is unchanged.
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithMetricsCollector configures a metrics collector for sieve phases.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &primesieve.BasicMetricsCollector{}
//	s, _ := primesieve.New(primesieve.WithMetricsCollector(metrics))
//	// ... run ...
//	stats := metrics.GetStats()
//	fmt.Printf("Blocks: %d, Avg latency: %dns\n", stats.BlockCount, stats.BlockAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := primesieve.NewJSONLogger(slog.LevelInfo)
//	s, _ := primesieve.New(primesieve.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithProgressInterval sets how often progress is logged during the
// segmented phase. Zero disables progress logging.
func WithProgressInterval(d time.Duration) Option {
	return func(o *options) {
		o.progressInterval = d
	}
}

func applyOptions(optFns []Option) (options, error) {
	o := options{
		limit:            MaxLimit,
		workers:          1,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		progressInterval: DefaultProgressInterval,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	if o.limit == 0 || o.limit > MaxLimit {
		return o, fmt.Errorf("%w: %d", ErrInvalidLimit, o.limit)
	}
	if o.workers < 1 {
		return o, fmt.Errorf("%w: %d", ErrInvalidWorkers, o.workers)
	}
	if o.progressInterval < 0 {
		o.progressInterval = 0
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o, nil
}
