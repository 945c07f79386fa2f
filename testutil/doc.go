// Package testutil provides testing utilities for primesieve.
//
// This package is intended for use in tests and benchmarks only.
// It provides a trial-division primality oracle and a seeded RNG for
// picking sample blocks.
//
// # Oracle
//
//	primes := testutil.PrimesBelow(100_000)   // ground truth
//	ok := testutil.IsPrime(4294967291)
//
// # Sampling
//
//	rng := testutil.NewRNG(seed)
//	base := rng.BlockBase(65536)  // random block base above 65536
package testutil
