package basis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/bosehubbard/prime"
)

// buildIndex precomputes the fingerprint weight vector, all state
// fingerprints, and the ascending sort permutation used by Index.
func (b *Basis) buildIndex() error {
	ps, err := prime.FirstN(b.sites)
	if err != nil {
		// Unreachable once Dim has validated sites; kept for symmetry.
		return err
	}
	b.weights = make([]float64, b.sites)
	for i, p := range ps {
		b.weights[i] = math.Sqrt(float64(p))
	}

	b.keys = make([]float64, b.dim)
	for i := 0; i < b.dim; i++ {
		b.keys[i] = fingerprint(b.row(i), b.weights)
	}

	// Argsort leaves b.sorted ascending and b.perm holding each key's
	// original (generation-order) index.
	b.sorted = append([]float64(nil), b.keys...)
	b.perm = make([]int, b.dim)
	floats.Argsort(b.sorted, b.perm)

	return nil
}

// fingerprint accumulates w·state strictly left to right, so equal states
// always round to bit-identical keys.
func fingerprint(state []int, w []float64) float64 {
	var sum float64
	for i, n := range state {
		sum += float64(n) * w[i]
	}

	return sum
}

// Fingerprint maps a length-N occupation vector to its scalar key, the dot
// product with √(first N primes). The state need not belong to the basis.
// Complexity: O(N).
func (b *Basis) Fingerprint(state []int) (float64, error) {
	if len(state) != b.sites {
		return 0, ErrStateLength
	}

	return fingerprint(state, b.weights), nil
}

// Index returns the generation-order position of state in the basis.
//
// Stage 1 (Validate): length check via Fingerprint.
// Stage 2 (Search): binary search of the key in the sorted fingerprint
// table, then translate through the sort permutation.
//
// Contract: callers only query states that are members of the basis
// (e.g. a member with one boson moved between two sites). An absent key
// returns ErrStateNotFound, which signals an internal invariant violation
// rather than bad user input — do not retry it.
//
// Complexity: O(N + log M).
func (b *Basis) Index(state []int) (int, error) {
	key, err := b.Fingerprint(state)
	if err != nil {
		return 0, err
	}

	k := sort.SearchFloat64s(b.sorted, key)
	if k == b.dim || b.sorted[k] != key {
		return 0, ErrStateNotFound
	}

	return b.perm[k], nil
}

// IndexAll resolves a batch of states in one call, preserving order.
// The hopping-term assembly performs one batch per (site, link) pass.
// It fails on the first unresolvable state with that state's error.
//
// Complexity: O(B·(N + log M)) for B queried states.
func (b *Basis) IndexAll(states [][]int) ([]int, error) {
	out := make([]int, len(states))
	var err error
	for i, s := range states {
		if out[i], err = b.Index(s); err != nil {
			return nil, err
		}
	}

	return out, nil
}
