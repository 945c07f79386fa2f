// Package primesieve enumerates every prime below 2^32 in increasing order
// with a segmented Sieve of Eratosthenes in a fixed amount of memory.
//
// # Algorithm
//
// The base sieve marks the odd composites below 65536 in a 4096-byte divisor
// mask, striking multiples of the primes below 256 only. The segmented sieve
// then walks blocks of 65536 integers starting at 65536. Each block is sieved
// into a second 4096-byte mask using the divisor mask as its source of
// divisors, and its primes are emitted before the next block starts. The walk
// ends when the 32-bit block base overflows.
//
// # Quick Start
//
//	s, _ := primesieve.New()
//	w := primesieve.NewWriterEmitter(os.Stdout)
//	stats, err := s.Run(ctx, w)
//	if err == nil {
//	    err = w.Flush()
//	}
//
// Iterating instead of pushing:
//
//	s, _ := primesieve.New(primesieve.WithLimit(1_000_000))
//	for p := range s.All(ctx) {
//	    fmt.Println(p)
//	}
//
// # Emitters
//
//   - WriterEmitter: one decimal integer per line on an io.Writer
//   - NoopEmitter: discards (throughput measurements)
//   - CountingEmitter, SliceEmitter: counting and collecting
//   - PrimeSet: a Roaring bitmap of the emitted primes
//
// # Concurrency
//
// By default the run is single-threaded and uses exactly two masks.
// WithWorkers(n) sieves n consecutive blocks at a time, one mask per worker,
// and still emits in strictly increasing order.
package primesieve
