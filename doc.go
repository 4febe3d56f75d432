// Package bosehubbard builds exact many-body Hamiltonians for Bose-Hubbard
// lattice models, one fixed-particle-number sector at a time, ready for
// external diagonalization.
//
// 🚀 What is bosehubbard?
//
//	A small, deterministic library that turns a lattice description into
//	a sparse Hermitian matrix:
//		• Lattice models: onsite energies, hopping links, interaction U
//		• Charge sectors: the complete occupation basis for N sites and
//		  nb bosons, C(nb+N−1, nb) states in a fixed, reproducible order
//		• Fast reverse lookup: √prime fingerprints + binary search
//		• Assembly: onsite, interaction and ladder-operator hopping terms
//		  in coordinate form, compacted to compressed-row (CSR)
//
// ✨ Why choose it?
//
//   - Exact and complete – no truncation, no approximation of the basis
//   - Reproducible – regenerating a sector yields identical indices
//   - Composable – the CSR result implements gonum's mat.Matrix, so any
//     standard eigensolver can consume it directly
//
// Everything is organized under four subpackages:
//
//	prime/       — prime sieve feeding the fingerprint weights
//	basis/       — sector enumeration, fingerprints, state → index lookup
//	lattice/     — model description and the symmetric hopping matrix
//	hamiltonian/ — charge sectors and sparse matrix assembly
//
// Quick sketch:
//
//	m, _ := lattice.NewModel([]float64{0, 0, 0},
//	    []lattice.Link{lattice.Hop(0, 1), lattice.Hop(1, 2), lattice.Hop(2, 0)}, 2)
//	s, _ := hamiltonian.NewSector(m, 2) // 3 sites, 2 bosons, 6 states
//	H, _ := s.Matrix()                  // sparse, real-symmetric, 6×6
//
// Diagonalization, parameter parsing and I/O stay out of scope: hand H to
// your favourite linear-algebra routine.
package bosehubbard
