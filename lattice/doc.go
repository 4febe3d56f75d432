// Package lattice describes a Bose-Hubbard model: per-site onsite
// energies, hopping links between sites, and one onsite interaction
// strength U shared by all sites.
//
// The package owns no many-body machinery. Its two jobs are input
// validation (fail fast on bad site indices or non-finite energies) and
// deriving the dense, symmetric single-particle hopping matrix
// H0 + H0ᵀ from the directed link list. Charge sectors and Hamiltonian
// assembly live in the hamiltonian package, which borrows a Model
// read-only.
//
// The onsite energies are stored pre-shifted by −U/2: the physical
// interaction (U/2)·n·(n−1) per site expands to (U/2)n² − (U/2)n, and
// folding the linear part into the onsite energies lets the assembler
// compute only the n² term. Onsite() still reports the unshifted values.
package lattice
