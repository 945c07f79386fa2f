package primesieve

import "github.com/hupe1980/primesieve/internal/bitset"

// sieveBase marks every odd composite below BlockSize in divisors and emits
// the primes below BlockSize in increasing order. Bit i of divisors stands
// for the integer 2i+1. divisors must be cleared.
//
// Only primes below 256 strike multiples. Every odd integer in [257, 65536)
// still unmarked after that is prime and is emitted by a direct scan.
func sieveBase(divisors *bitset.Mask, emit func(uint32) error) error {
	if err := emit(2); err != nil {
		return err
	}

	p := uint32(3)
	for ; p < baseTrialLimit; p += 2 {
		if divisors.Test(p >> 1) {
			continue
		}
		if err := emit(p); err != nil {
			return err
		}

		sq := p * p
		maxJ := min(sq, BlockSize/p)
		toSet := sq >> 1

		// For j < p*p, a composite j has a prime factor below p, so p*j is
		// already marked.
		for j := p; j < maxJ; j += 2 {
			if !divisors.Test(j >> 1) {
				divisors.Set(toSet)
			}
			toSet += p
		}

		for ; toSet < bitset.Size; toSet += p {
			divisors.Set(toSet)
		}
	}

	for i, ok := divisors.NextClear(p >> 1); ok; i, ok = divisors.NextClear(i + 1) {
		if err := emit(2*i + 1); err != nil {
			return err
		}
	}
	return nil
}
