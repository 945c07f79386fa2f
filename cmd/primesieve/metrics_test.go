package main

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/primesieve"
)

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewPrometheusCollector(reg)

	s, err := primesieve.New(
		primesieve.WithLimit(4*primesieve.BlockSize),
		primesieve.WithMetricsCollector(c),
	)
	require.NoError(t, err)

	var counter primesieve.CountingEmitter
	stats, err := s.Run(t.Context(), &counter)
	require.NoError(t, err)

	assert.Equal(t, float64(6542), promtestutil.ToFloat64(c.basePrimes))
	assert.Equal(t, float64(3), promtestutil.ToFloat64(c.blocks))
	assert.Equal(t, float64(stats.Primes-6542), promtestutil.ToFloat64(c.primes))
	assert.Equal(t, float64(3*primesieve.BlockSize), promtestutil.ToFloat64(c.lastBase))
	assert.Zero(t, promtestutil.ToFloat64(c.emitErrors))
	assert.Equal(t, 1, promtestutil.CollectAndCount(c.blockDuration))

	c.RecordEmitError()
	c.RecordBlock(0, 0, time.Millisecond)
	assert.Equal(t, float64(1), promtestutil.ToFloat64(c.emitErrors))
}

func TestPrometheusCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheusCollector(reg)
	assert.Panics(t, func() { NewPrometheusCollector(reg) })
}
