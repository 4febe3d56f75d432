// Package prime produces the prime numbers used as fingerprint weights
// for occupation-number states.
//
// The only consumer inside this module is basis, which takes the square
// roots of the first N primes as an (assumed) rationally independent
// weight vector. The sieve bound n² is safe but loose: π(n²) ≥ n holds
// for every n ≥ 1, so FirstN never comes up short.
package prime

import "errors"

// ErrNegativeCount indicates that a negative number of primes was requested.
var ErrNegativeCount = errors.New("prime: count must be non-negative")

// FirstN returns the first n prime numbers in increasing order.
//
// Stage 1 (Validate): reject n < 0.
// Stage 2 (Execute): sieve up to n² (clamped to 2 so n=1 still finds {2}).
// Stage 3 (Finalize): keep the first n entries.
//
// Complexity: O(n² log log n) time, O(n²) transient memory for the sieve.
func FirstN(n int) ([]int, error) {
	// Validate the requested count.
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if n == 0 {
		return []int{}, nil
	}

	// The n² bound always covers at least n primes.
	limit := n * n
	if limit < 2 {
		limit = 2
	}

	return SieveUpTo(limit)[:n], nil
}

// SieveUpTo returns every prime p with 2 ≤ p ≤ limit, ascending.
// A limit below 2 yields an empty slice.
//
// Complexity: O(limit log log limit) time, O(limit) memory.
func SieveUpTo(limit int) []int {
	if limit < 2 {
		return []int{}
	}

	// composite[i] marks i as struck out; 0 and 1 are never emitted.
	composite := make([]bool, limit+1)
	primes := make([]int, 0, limit/2)
	for p := 2; p <= limit; p++ {
		if composite[p] {
			continue
		}
		primes = append(primes, p)
		for q := p * p; q <= limit; q += p {
			composite[q] = true
		}
	}

	return primes
}
