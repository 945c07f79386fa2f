package output

import (
	"errors"
	"io"

	"github.com/hupe1980/primesieve/blobstore"
)

// Writer is the chain from encoded prime text to a blob:
// codec, then blob. Exactly one of Close or Abort must be called.
type Writer struct {
	blob blobstore.WritableBlob
	comp io.WriteCloser
	n    int64
}

// NewWriter wraps blob with the codec c.
func NewWriter(blob blobstore.WritableBlob, c Compression, level int) (*Writer, error) {
	comp, err := NewCompressor(blob, c, level)
	if err != nil {
		_ = blob.Abort()
		return nil, err
	}
	return &Writer{blob: blob, comp: comp}, nil
}

// Write writes uncompressed bytes.
func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.comp.Write(p)
	w.n += int64(n)
	return n, err
}

// Written returns the number of uncompressed bytes accepted so far.
func (w *Writer) Written() int64 { return w.n }

// Close flushes the codec and publishes the blob. If the codec fails the
// blob is aborted.
func (w *Writer) Close() error {
	if err := w.comp.Close(); err != nil {
		return errors.Join(err, w.blob.Abort())
	}
	return w.blob.Close()
}

// Abort discards the blob.
func (w *Writer) Abort() error {
	_ = w.comp.Close()
	return w.blob.Abort()
}

// StreamBlob adapts a process stream to blobstore.WritableBlob.
// Close and Abort leave the stream open.
func StreamBlob(w io.Writer) blobstore.WritableBlob {
	return streamBlob{w}
}

type streamBlob struct {
	io.Writer
}

func (streamBlob) Close() error { return nil }
func (streamBlob) Abort() error { return nil }
