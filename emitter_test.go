package primesieve

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterEmitter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterEmitter(&buf)

	s, err := New(WithLimit(30))
	require.NoError(t, err)
	_, err = s.Run(context.Background(), w)
	require.NoError(t, err)

	assert.Zero(t, buf.Len(), "output stays buffered until flush")
	require.NoError(t, w.Flush())
	assert.Equal(t, "2\n3\n5\n7\n11\n13\n17\n19\n23\n29\n", buf.String())
}

func TestWriterEmitter_LastPrime(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterEmitter(&buf)
	require.NoError(t, w.Emit(4294967291))
	require.NoError(t, w.Flush())
	assert.Equal(t, "4294967291\n", buf.String())
}

type failingWriter struct {
	remaining int
	err       error
}

func (f *failingWriter) Write(p []byte) (int, error) {
	if len(p) > f.remaining {
		n := f.remaining
		f.remaining = 0
		return n, f.err
	}
	f.remaining -= len(p)
	return len(p), nil
}

func TestWriterEmitter_WriteFailureAbortsRun(t *testing.T) {
	errDisk := errors.New("disk full")
	w := NewWriterEmitterSize(&failingWriter{remaining: 64, err: errDisk}, 16)

	s, err := New(WithLimit(100_000))
	require.NoError(t, err)

	stats, err := s.Run(context.Background(), w)
	require.ErrorIs(t, err, errDisk)

	var ee *EmitError
	require.ErrorAs(t, err, &ee)
	assert.Less(t, stats.Primes, uint64(100))
	assert.ErrorIs(t, w.Flush(), errDisk)
}

func TestCountingEmitter(t *testing.T) {
	var c CountingEmitter
	s, err := New(WithLimit(1_000_000))
	require.NoError(t, err)

	stats, err := s.Run(context.Background(), &c)
	require.NoError(t, err)

	assert.Equal(t, uint64(78498), c.Count)
	assert.Equal(t, uint32(999983), c.Last)
	assert.Equal(t, c.Last, stats.Largest)
}

func TestMultiEmitter(t *testing.T) {
	var a, b SliceEmitter
	var sb strings.Builder
	w := NewWriterEmitter(&sb)

	s, err := New(WithLimit(12))
	require.NoError(t, err)
	_, err = s.Run(context.Background(), MultiEmitter(&a, &b, w))
	require.NoError(t, err)
	require.NoError(t, w.Flush())

	assert.Equal(t, []uint32{2, 3, 5, 7, 11}, a.Primes)
	assert.Equal(t, a.Primes, b.Primes)
	assert.Equal(t, "2\n3\n5\n7\n11\n", sb.String())

	errStop := errors.New("stop")
	var after SliceEmitter
	err = MultiEmitter(EmitterFunc(func(uint32) error { return errStop }), &after).Emit(2)
	assert.ErrorIs(t, err, errStop)
	assert.Empty(t, after.Primes)
}
