// Package basis enumerates the occupation-number basis of a fixed-boson
// charge sector and answers state → index queries over it.
//
// 🚀 What does it do?
//
//	For N lattice sites and nb indistinguishable bosons it builds the
//	complete, deterministically ordered list of all C(nb+N−1, nb)
//	occupation vectors (length-N non-negative integer tuples summing
//	to nb), plus a fingerprint table for O(log M) reverse lookup.
//
// ✨ Key features:
//   - successor-based enumeration: each state is derived from its
//     predecessor in O(N), no recursion, no sorting of states
//   - stable indices: regenerating a (N, nb) basis reproduces identical
//     states in identical order, so matrix indices are reproducible
//   - √prime fingerprints: a state hashes to the dot product of its
//     occupations with the square roots of the first N primes
//   - batched lookup (IndexAll) for the hopping-term assembly loops
//
// ⚙️ Usage:
//
//	b, err := basis.New(4, 2)       // 4 sites, 2 bosons, dim 10
//	if err != nil { ... }
//	k, err := b.Index([]int{1, 0, 1, 0})
//
// ⚠️ Known risk:
//
//	Lookup assumes the √prime fingerprints of distinct reachable states
//	never collide in float64. That is a floating-point assumption, not a
//	theorem; for very large N or nb rounding could in principle make two
//	states compare equal. The scheme is kept as-is because downstream
//	results must reproduce the reference fingerprint ordering. An exact
//	combinatorial rank would be the strictly safer substitute.
//
// Complexity:
//
//   - Time:   O(M·N) generation + O(M log M) argsort, M = C(nb+N−1, nb)
//   - Memory: O(M·N) for the state table, O(M) for fingerprints
package basis
