package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/hupe1980/primesieve"
)

func TestRegisterFlags_Defaults(t *testing.T) {
	app := kingpin.New("primesieve", "")
	cfg := registerFlags(app)

	_, err := app.Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, uint64(primesieve.MaxLimit), cfg.limit)
	assert.Equal(t, 1, cfg.workers)
	assert.Equal(t, "-", cfg.output)
	assert.Equal(t, "auto", cfg.compress)
	assert.Equal(t, "text", cfg.logFormat)
	assert.Equal(t, "warn", cfg.logLevel)
	assert.Equal(t, primesieve.DefaultProgressInterval, cfg.progress)
	assert.Empty(t, cfg.set)
	assert.Empty(t, cfg.metricsAddr)
}

func TestRegisterFlags_Parse(t *testing.T) {
	app := kingpin.New("primesieve", "")
	cfg := registerFlags(app)

	_, err := app.Parse([]string{
		"--limit=1000000",
		"-j", "8",
		"-o", "s3://bucket/primes.txt.zst",
		"--set=primes.roaring",
		"--log-format=json",
		"-v",
		"--progress=1m",
		"--minio-secure",
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(1000000), cfg.limit)
	assert.Equal(t, 8, cfg.workers)
	assert.Equal(t, "s3://bucket/primes.txt.zst", cfg.output)
	assert.Equal(t, "primes.roaring", cfg.set)
	assert.Equal(t, "json", cfg.logFormat)
	assert.True(t, cfg.verbose)
	assert.Equal(t, time.Minute, cfg.progress)
	assert.True(t, cfg.minio.secure)
}

func TestRegisterFlags_Envar(t *testing.T) {
	t.Setenv("PRIMESIEVE_WORKERS", "3")
	t.Setenv("PRIMESIEVE_OUTPUT", "discard")
	t.Setenv("PRIMESIEVE_S3_REGION", "eu-central-1")

	app := kingpin.New("primesieve", "")
	cfg := registerFlags(app)

	_, err := app.Parse([]string{"--workers=5"})
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.workers, "flag wins over environment")
	assert.Equal(t, "discard", cfg.output)
	assert.Equal(t, "eu-central-1", cfg.s3.region)
}

func TestRegisterFlags_InvalidLogFormat(t *testing.T) {
	app := kingpin.New("primesieve", "")
	registerFlags(app)

	_, err := app.Parse([]string{"--log-format=xml"})
	assert.Error(t, err)
}
