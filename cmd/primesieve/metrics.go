package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hupe1980/primesieve"
)

// PrometheusCollector implements primesieve.MetricsCollector.
type PrometheusCollector struct {
	basePrimes    prometheus.Gauge
	baseDuration  prometheus.Gauge
	blocks        prometheus.Counter
	primes        prometheus.Counter
	blockDuration prometheus.Histogram
	lastBase      prometheus.Gauge
	emitErrors    prometheus.Counter
}

var _ primesieve.MetricsCollector = (*PrometheusCollector)(nil)

func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	c := &PrometheusCollector{
		basePrimes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "primesieve_base_primes",
			Help: "Primes emitted by the base sieve",
		}),
		baseDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "primesieve_base_sieve_seconds",
			Help: "Duration of the base sieve",
		}),
		blocks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "primesieve_blocks_total",
			Help: "Segmented blocks sieved and emitted",
		}),
		primes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "primesieve_block_primes_total",
			Help: "Primes found by the segmented sieve",
		}),
		blockDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "primesieve_block_duration_seconds",
			Help:    "Time to sieve and emit one block",
			Buckets: prometheus.ExponentialBuckets(1e-5, 2, 16),
		}),
		lastBase: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "primesieve_last_block_base",
			Help: "Base of the most recently emitted block",
		}),
		emitErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "primesieve_emit_errors_total",
			Help: "Primes rejected by the output",
		}),
	}

	reg.MustRegister(
		c.basePrimes,
		c.baseDuration,
		c.blocks,
		c.primes,
		c.blockDuration,
		c.lastBase,
		c.emitErrors,
	)
	return c
}

func (c *PrometheusCollector) RecordBaseSieve(primes uint64, d time.Duration) {
	c.basePrimes.Set(float64(primes))
	c.baseDuration.Set(d.Seconds())
}

func (c *PrometheusCollector) RecordBlock(base uint32, primes int, d time.Duration) {
	c.blocks.Inc()
	c.primes.Add(float64(primes))
	c.blockDuration.Observe(d.Seconds())
	c.lastBase.Set(float64(base))
}

func (c *PrometheusCollector) RecordEmitError() {
	c.emitErrors.Inc()
}

// serveMetrics exposes reg on addr until the returned function is called.
func serveMetrics(addr string, reg *prometheus.Registry, logger *primesieve.Logger) (func(), error) {
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()
	logger.Info("prometheus metrics available", "url", "http://"+ln.Addr().String()+"/metrics")

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
