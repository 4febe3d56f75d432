// Package hamiltonian assembles the sparse many-body Hamiltonian of a
// Bose-Hubbard charge sector.
//
// 🚀 What does it do?
//
//	Given a lattice.Model (onsite energies ω, symmetric hopping matrix
//	H0, interaction strength U) and a boson count nb, it builds the
//	M×M real-symmetric matrix of the Bose-Hubbard Hamiltonian in the
//	occupation basis of the (N, nb) sector, M = C(nb+N−1, nb), ready
//	for an external eigensolver.
//
// Algorithm outline (single pass, no state machine):
//
//  1. Enumerate the sector basis (basis.New) once per Sector.
//  2. Diagonal: for each state n⃗, emit (k, k, ω·n⃗ + (U/2)·Σᵢ nᵢ²).
//     ω is pre-shifted by −U/2 in the model, which turns the physical
//     (U/2)·n·(n−1) interaction into the plain n² sum used here.
//  3. Hopping: for each site i with a nonzero H0 row, each state with
//     nᵢ > 0, and each site l with H0[i,l] ≠ 0, move one boson i → l,
//     look the destination up in the basis, and emit
//     (source, destination, H0[i,l]·√(nᵢ·(n_l+1))).
//  4. Compact the coordinate triples to compressed-row form
//     (sparse.COO → sparse.CSR; duplicate coordinates are summed).
//
// Hermiticity needs no extra symmetrization: H0 is symmetric, so the
// i→l and l→i passes emit equal transposed entries.
//
// Errors:
//   - ErrNilModel — nil *lattice.Model passed to NewSector.
//   - basis sentinels propagate from sector construction (bad nb) and,
//     wrapped with hop context, from lookup failures during assembly.
//     A lookup failure means the enumerated basis was not closed under
//     a hop, which is an internal invariant violation — never retry it.
//
// Complexity:
//
//   - Time:   O(M·N) diagonal + O(M·d·(N + log M)) hopping, where d is
//     the average number of nonzero H0 entries per site
//   - Memory: O(M·N) for states, O(M·d) for coordinate triples
package hamiltonian
