package output

import (
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// ErrUnknownCompression is returned for unsupported codec names.
var ErrUnknownCompression = errors.New("unknown compression")

// Compression is the codec applied to the prime listing.
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
	CompressionLZ4  Compression = "lz4"
	// CompressionAuto picks the codec from the destination's extension.
	CompressionAuto Compression = "auto"
)

// ParseCompression parses a codec name. The empty string means auto.
func ParseCompression(s string) (Compression, error) {
	switch c := Compression(strings.ToLower(s)); c {
	case "":
		return CompressionAuto, nil
	case CompressionNone, CompressionGzip, CompressionZstd, CompressionLZ4, CompressionAuto:
		return c, nil
	case "zst":
		return CompressionZstd, nil
	case "gz":
		return CompressionGzip, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCompression, s)
	}
}

// Extension returns the conventional file extension, including the dot.
func (c Compression) Extension() string {
	switch c {
	case CompressionGzip:
		return ".gz"
	case CompressionZstd:
		return ".zst"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// CompressionFor resolves auto against a blob name.
func CompressionFor(c Compression, name string) Compression {
	if c != CompressionAuto {
		return c
	}
	switch path.Ext(name) {
	case ".gz":
		return CompressionGzip
	case ".zst":
		return CompressionZstd
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// NewCompressor wraps w with the codec. Closing the result flushes the codec
// but does not close w. level is codec specific; 0 selects the default.
func NewCompressor(w io.Writer, c Compression, level int) (io.WriteCloser, error) {
	switch c {
	case CompressionNone, CompressionAuto, "":
		return nopWriteCloser{w}, nil
	case CompressionGzip:
		if level == 0 {
			level = gzip.DefaultCompression
		}
		return gzip.NewWriterLevel(w, level)
	case CompressionZstd:
		opts := []zstd.EOption{zstd.WithEncoderConcurrency(1)}
		if level != 0 {
			opts = append(opts, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
		}
		return zstd.NewWriter(w, opts...)
	case CompressionLZ4:
		zw := lz4.NewWriter(w)
		if level != 0 {
			if err := zw.Apply(lz4.CompressionLevelOption(lz4CompressionLevel(level))); err != nil {
				return nil, err
			}
		}
		return zw, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompression, string(c))
	}
}

// lz4CompressionLevel maps 1..9 onto the lz4 levels; anything lower is Fast.
func lz4CompressionLevel(level int) lz4.CompressionLevel {
	if level <= 0 {
		return lz4.Fast
	}
	if level > 9 {
		level = 9
	}
	return lz4.CompressionLevel(1 << (8 + level))
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
