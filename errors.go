package primesieve

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLimit is returned when the limit is outside (0, 2^32].
	ErrInvalidLimit = errors.New("limit must be in (0, 2^32]")

	// ErrInvalidWorkers is returned when the worker count is not positive.
	ErrInvalidWorkers = errors.New("workers must be positive")

	// ErrOutOfOrder is returned by PrimeSet when a prime does not exceed
	// the previously added one.
	ErrOutOfOrder = errors.New("primes must arrive in strictly increasing order")

	// errStopped ends a run without error when an iterator consumer stops early.
	errStopped = errors.New("iteration stopped")
)

// EmitError indicates that the emitter rejected a prime.
//
// Emit failures are fatal: the run stops at the first one.
// The underlying error can be accessed via errors.Unwrap.
type EmitError struct {
	Prime uint32
	cause error
}

func (e *EmitError) Error() string {
	return fmt.Sprintf("emit prime %d: %v", e.Prime, e.cause)
}

func (e *EmitError) Unwrap() error { return e.cause }
