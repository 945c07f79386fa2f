package primesieve

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting sieve metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    blockCounter   prometheus.Counter
//	    blockHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordBlock(base uint32, primes int, duration time.Duration) {
//	    p.blockCounter.Inc()
//	    p.blockHistogram.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordBaseSieve is called once the divisor mask is complete.
	// primes is the number of primes emitted by the base sieve.
	RecordBaseSieve(primes uint64, duration time.Duration)

	// RecordBlock is called after each segmented block has been emitted.
	// primes is the number of primes found in the block.
	RecordBlock(base uint32, primes int, duration time.Duration)

	// RecordEmitError is called when the emitter rejects a prime.
	RecordEmitError()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBaseSieve(uint64, time.Duration)   {}
func (NoopMetricsCollector) RecordBlock(uint32, int, time.Duration) {}
func (NoopMetricsCollector) RecordEmitError()                       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BasePrimes      atomic.Uint64
	BaseNanos       atomic.Int64
	BlockCount      atomic.Int64
	BlockPrimes     atomic.Int64
	BlockTotalNanos atomic.Int64
	LastBase        atomic.Uint32
	EmitErrors      atomic.Int64
}

// RecordBaseSieve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBaseSieve(primes uint64, duration time.Duration) {
	b.BasePrimes.Store(primes)
	b.BaseNanos.Store(duration.Nanoseconds())
}

// RecordBlock implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBlock(base uint32, primes int, duration time.Duration) {
	b.BlockCount.Add(1)
	b.BlockPrimes.Add(int64(primes))
	b.BlockTotalNanos.Add(duration.Nanoseconds())
	b.LastBase.Store(base)
}

// RecordEmitError implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEmitError() {
	b.EmitErrors.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BasePrimes:    b.BasePrimes.Load(),
		BaseNanos:     b.BaseNanos.Load(),
		BlockCount:    b.BlockCount.Load(),
		BlockPrimes:   b.BlockPrimes.Load(),
		BlockAvgNanos: b.getAvgBlockNanos(),
		LastBase:      b.LastBase.Load(),
		EmitErrors:    b.EmitErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgBlockNanos() int64 {
	count := b.BlockCount.Load()
	if count == 0 {
		return 0
	}
	return b.BlockTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BasePrimes    uint64
	BaseNanos     int64
	BlockCount    int64
	BlockPrimes   int64
	BlockAvgNanos int64
	LastBase      uint32
	EmitErrors    int64
}
