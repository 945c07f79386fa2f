package main

import (
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/hupe1980/primesieve"
)

const envPrefix = "PRIMESIEVE_"

type config struct {
	limit       uint64
	workers     int
	output      string
	compress    string
	level       int
	set         string
	logFormat   string
	logLevel    string
	verbose     bool
	progress    time.Duration
	metricsAddr string

	s3 struct {
		region   string
		endpoint string
	}
	minio struct {
		accessKey    string
		secretKey    string
		region       string
		secure       bool
		createBucket bool
	}
}

func defaultConfig() *config {
	return &config{
		limit:     primesieve.MaxLimit,
		workers:   1,
		output:    "-",
		compress:  "auto",
		logFormat: "text",
		logLevel:  "warn",
		progress:  primesieve.DefaultProgressInterval,
	}
}

func registerFlags(app *kingpin.Application) *config {
	cfg := defaultConfig()

	app.Flag("limit", "Exclusive upper bound of the emitted primes, at most 4294967296.").
		Envar(envPrefix+"LIMIT").Default("4294967296").Uint64Var(&cfg.limit)
	app.Flag("workers", "Number of blocks sieved concurrently. Output order is unaffected.").
		Short('j').Envar(envPrefix+"WORKERS").Default("1").IntVar(&cfg.workers)
	app.Flag("output", "Where to write the primes: -, discard, a file path, s3://bucket/key or minio://host/bucket/key.").
		Short('o').Envar(envPrefix+"OUTPUT").Default("-").StringVar(&cfg.output)
	app.Flag("compress", "Output codec: auto, none, gzip, zstd or lz4. auto follows the output extension.").
		Envar(envPrefix+"COMPRESS").Default("auto").StringVar(&cfg.compress)
	app.Flag("compress-level", "Codec specific compression level, 0 for the default.").
		Envar(envPrefix+"COMPRESS_LEVEL").Default("0").IntVar(&cfg.level)
	app.Flag("set", "Also write the primes as a portable Roaring bitmap to this file, s3:// or minio:// location.").
		Envar(envPrefix+"SET").StringVar(&cfg.set)

	app.Flag("log-format", "Log format on stderr.").
		Envar(envPrefix+"LOG_FORMAT").Default("text").EnumVar(&cfg.logFormat, "text", "json")
	app.Flag("log-level", "Minimum log level: debug, info, warn or error.").
		Envar(envPrefix+"LOG_LEVEL").Default("warn").StringVar(&cfg.logLevel)
	app.Flag("verbose", "Enable verbose logging. Same as --log-level=debug.").
		Short('v').Default("false").BoolVar(&cfg.verbose)
	app.Flag("progress", "How often progress is logged at info level, 0 to disable.").
		Envar(envPrefix+"PROGRESS").Default(primesieve.DefaultProgressInterval.String()).DurationVar(&cfg.progress)
	app.Flag("metrics-addr", "Serve Prometheus metrics on this address, e.g. :2112.").
		Envar(envPrefix+"METRICS_ADDR").StringVar(&cfg.metricsAddr)

	app.Flag("s3-region", "AWS region for s3:// destinations. Defaults to the shared AWS configuration.").
		Envar(envPrefix+"S3_REGION").StringVar(&cfg.s3.region)
	app.Flag("s3-endpoint", "Custom S3 endpoint URL. Enables path-style addressing.").
		Envar(envPrefix+"S3_ENDPOINT").StringVar(&cfg.s3.endpoint)

	app.Flag("minio-access-key", "Access key for minio:// destinations.").
		Envar(envPrefix+"MINIO_ACCESS_KEY").StringVar(&cfg.minio.accessKey)
	app.Flag("minio-secret-key", "Secret key for minio:// destinations.").
		Envar(envPrefix+"MINIO_SECRET_KEY").StringVar(&cfg.minio.secretKey)
	app.Flag("minio-region", "Region for minio:// destinations.").
		Envar(envPrefix+"MINIO_REGION").StringVar(&cfg.minio.region)
	app.Flag("minio-secure", "Use HTTPS for minio:// destinations.").
		Envar(envPrefix+"MINIO_SECURE").Default("false").BoolVar(&cfg.minio.secure)
	app.Flag("minio-create-bucket", "Create the minio:// bucket if it does not exist.").
		Envar(envPrefix+"MINIO_CREATE_BUCKET").Default("false").BoolVar(&cfg.minio.createBucket)

	return cfg
}
