package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/primesieve"
	"github.com/hupe1980/primesieve/output"
)

// run executes one sieve run described by cfg. Primes go to stdout unless
// cfg.output names another destination; logs go to stderr.
func run(ctx context.Context, cfg *config, stdout, stderr io.Writer) error {
	logger, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}

	dest, err := output.ParseDestination(cfg.output)
	if err != nil {
		return err
	}
	codec, err := output.ParseCompression(cfg.compress)
	if err != nil {
		return err
	}
	codec = output.CompressionFor(codec, dest.Name)

	var setDest output.Destination
	if cfg.set != "" {
		setDest, err = output.ParseDestination(cfg.set)
		if err != nil {
			return fmt.Errorf("--set: %w", err)
		}
		if setDest.IsStream() {
			return fmt.Errorf("--set: %w: %q is not a blob location", output.ErrInvalidDestination, cfg.set)
		}
	}

	opts := []primesieve.Option{
		primesieve.WithLimit(cfg.limit),
		primesieve.WithWorkers(cfg.workers),
		primesieve.WithLogger(logger),
		primesieve.WithProgressInterval(cfg.progress),
	}
	if cfg.metricsAddr != "" {
		reg := prometheus.NewRegistry()
		opts = append(opts, primesieve.WithMetricsCollector(NewPrometheusCollector(reg)))
		shutdown, err := serveMetrics(cfg.metricsAddr, reg, logger)
		if err != nil {
			return err
		}
		defer shutdown()
	}

	sieve, err := primesieve.New(opts...)
	if err != nil {
		return err
	}

	var (
		emitters []primesieve.Emitter
		w        *output.Writer
		text     *primesieve.WriterEmitter
		set      *primesieve.PrimeSet
	)
	if dest.Kind != output.KindDiscard {
		blob, err := createBlob(ctx, cfg, dest, stdout)
		if err != nil {
			return err
		}
		if w, err = output.NewWriter(blob, codec, cfg.level); err != nil {
			return err
		}
		text = primesieve.NewWriterEmitter(w)
		emitters = append(emitters, text)
	}
	if cfg.set != "" {
		set = primesieve.NewPrimeSet()
		emitters = append(emitters, set)
	}

	var emitter primesieve.Emitter = primesieve.NoopEmitter{}
	switch len(emitters) {
	case 0:
	case 1:
		emitter = emitters[0]
	default:
		emitter = primesieve.MultiEmitter(emitters...)
	}

	stats, err := sieve.Run(ctx, emitter)
	if err == nil && text != nil {
		if err = text.Flush(); err != nil {
			err = fmt.Errorf("flush output: %w", err)
		}
	}
	if w != nil {
		if err != nil {
			_ = w.Abort()
			return err
		}
		if err := w.Close(); err != nil {
			return fmt.Errorf("close output %s: %w", dest, err)
		}
		logger.DebugContext(ctx, "output written",
			"destination", dest.String(),
			"compression", string(codec),
			"bytes", w.Written(),
		)
	}
	if err != nil {
		return err
	}

	if set != nil {
		if err := writeSet(ctx, cfg, setDest, set); err != nil {
			return err
		}
		logger.DebugContext(ctx, "prime set written",
			"destination", setDest.String(),
			"cardinality", set.Cardinality(),
		)
	}

	if stats.Primes == 0 {
		logger.WarnContext(ctx, "no primes below limit", "limit", cfg.limit)
	}
	return nil
}

func writeSet(ctx context.Context, cfg *config, d output.Destination, set *primesieve.PrimeSet) error {
	store, err := openStore(ctx, cfg, d)
	if err != nil {
		return err
	}
	blob, err := store.Create(ctx, d.Name)
	if err != nil {
		return err
	}
	if _, err := set.WriteTo(blob); err != nil {
		_ = blob.Abort()
		return fmt.Errorf("write prime set %s: %w", d, err)
	}
	if err := blob.Close(); err != nil {
		return fmt.Errorf("close prime set %s: %w", d, err)
	}
	return nil
}

func newLogger(cfg *config, w io.Writer) (*primesieve.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(cfg.logLevel))); err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	if cfg.verbose {
		level = slog.LevelDebug
	}

	hopts := &slog.HandlerOptions{Level: level}
	switch cfg.logFormat {
	case "json":
		return primesieve.NewLogger(slog.NewJSONHandler(w, hopts)), nil
	case "text", "":
		return primesieve.NewLogger(slog.NewTextHandler(w, hopts)), nil
	default:
		return nil, fmt.Errorf("--log-format: unknown format %q", cfg.logFormat)
	}
}
