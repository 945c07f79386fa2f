package primesieve

import (
	"bufio"
	"io"
	"strconv"
)

// Emitter receives primes one at a time in strictly increasing order.
//
// A non-nil error aborts the run.
type Emitter interface {
	Emit(p uint32) error
}

// EmitterFunc adapts an ordinary function to the Emitter interface.
type EmitterFunc func(p uint32) error

// Emit calls f(p).
func (f EmitterFunc) Emit(p uint32) error { return f(p) }

// NoopEmitter discards every prime. Use it to measure sieve throughput alone.
type NoopEmitter struct{}

// Emit implements Emitter.
func (NoopEmitter) Emit(uint32) error { return nil }

// CountingEmitter counts primes and remembers the last one.
type CountingEmitter struct {
	Count uint64
	Last  uint32
}

// Emit implements Emitter.
func (c *CountingEmitter) Emit(p uint32) error {
	c.Count++
	c.Last = p
	return nil
}

// SliceEmitter collects primes in memory. Only suitable for small limits.
type SliceEmitter struct {
	Primes []uint32
}

// Emit implements Emitter.
func (s *SliceEmitter) Emit(p uint32) error {
	s.Primes = append(s.Primes, p)
	return nil
}

// DefaultWriterBufferSize is the buffer size used by NewWriterEmitter.
const DefaultWriterBufferSize = 64 * 1024

// WriterEmitter writes each prime as a decimal integer followed by '\n'.
//
// Output is buffered; call Flush after the run. Once a write fails, every
// later Emit and Flush returns the same error.
type WriterEmitter struct {
	w       *bufio.Writer
	scratch [16]byte
}

// NewWriterEmitter creates a WriterEmitter on w.
func NewWriterEmitter(w io.Writer) *WriterEmitter {
	return NewWriterEmitterSize(w, DefaultWriterBufferSize)
}

// NewWriterEmitterSize creates a WriterEmitter with a buffer of at least size bytes.
func NewWriterEmitterSize(w io.Writer, size int) *WriterEmitter {
	return &WriterEmitter{w: bufio.NewWriterSize(w, size)}
}

// Emit implements Emitter.
func (e *WriterEmitter) Emit(p uint32) error {
	b := strconv.AppendUint(e.scratch[:0], uint64(p), 10)
	b = append(b, '\n')
	_, err := e.w.Write(b)
	return err
}

// Flush writes any buffered output to the underlying writer.
func (e *WriterEmitter) Flush() error {
	return e.w.Flush()
}

// multiEmitter duplicates each prime to all of its emitters.
type multiEmitter []Emitter

// MultiEmitter returns an Emitter that forwards each prime to every emitter
// in order, stopping at the first error.
func MultiEmitter(emitters ...Emitter) Emitter {
	return multiEmitter(emitters)
}

func (m multiEmitter) Emit(p uint32) error {
	for _, e := range m {
		if err := e.Emit(p); err != nil {
			return err
		}
	}
	return nil
}
