package basis

import (
	"gonum.org/v1/gonum/stat/combin"
)

// Basis is the immutable, ordered occupation-number basis of one charge
// sector. It owns the enumerated state table plus the fingerprint and
// sort-permutation structures used for lookup. A Basis is safe for
// concurrent readers; it is never mutated after New returns.
type Basis struct {
	sites  int   // number of lattice sites N
	bosons int   // total boson count nb
	dim    int   // number of states M = C(nb+N−1, nb)
	states []int // row-major M×N occupation table

	weights []float64 // √(first N primes), the fingerprint weight vector
	keys    []float64 // fingerprints in generation order, keys[i] = w·states[i]
	sorted  []float64 // keys, ascending
	perm    []int     // perm[k] = generation index of the k-th smallest key
}

// Dim returns the dimension of the (sites, bosons) charge sector,
// C(bosons+sites−1, bosons), without generating any states.
//
// Stage 1 (Validate): sites ≥ 1 and bosons ≥ 0.
// Stage 2 (Finalize): evaluate the binomial coefficient.
func Dim(sites, bosons int) (int, error) {
	if sites <= 0 {
		return 0, ErrNoSites
	}
	if bosons < 0 {
		return 0, ErrNegativeBosons
	}

	return combin.Binomial(bosons+sites-1, bosons), nil
}

// New enumerates the complete occupation basis for the given site and boson
// counts and builds its lookup structures.
//
// Stage 1 (Validate): parameter checks via Dim.
// Stage 2 (Generate): successor-based enumeration (see generate).
// Stage 3 (Index): fingerprint every state and argsort the fingerprints.
//
// Complexity: O(M·N + M log M) time, O(M·N) memory.
func New(sites, bosons int) (*Basis, error) {
	dim, err := Dim(sites, bosons)
	if err != nil {
		return nil, err
	}

	b := &Basis{
		sites:  sites,
		bosons: bosons,
		dim:    dim,
		states: generate(sites, bosons, dim),
	}
	if err = b.buildIndex(); err != nil {
		return nil, err
	}

	return b, nil
}

// generate enumerates all dim compositions of bosons into sites parts, in
// the fixed successor order:
//
//  1. The first state places every boson on site 0.
//  2. Each successor copies its predecessor's first N−1 sites, decrements
//     the cursor site ni, and adds 1 plus the predecessor's last-site
//     occupation to site ni+1 (the leftover moves strictly to ni+1, the
//     last site restarts at 0).
//  3. Cursor update: while ni < N−2 it simply advances; once at N−2 it
//     rescans sites 0..N−2 of the new state for the rightmost nonzero
//     entry (unchanged if all are zero).
//
// The order is total and deterministic; every state sums to bosons with
// non-negative entries.
func generate(sites, bosons, dim int) []int {
	states := make([]int, dim*sites)
	states[0] = bosons

	ni := 0 // rightmost site currently eligible for decrement
	var prev, cur int
	for i := 1; i < dim; i++ {
		prev, cur = (i-1)*sites, i*sites

		// Carry the predecessor forward, last site excluded (stays 0).
		copy(states[cur:cur+sites-1], states[prev:prev+sites-1])
		states[cur+ni]--
		states[cur+ni+1] += 1 + states[prev+sites-1]

		if ni >= sites-2 {
			// Rescan for the rightmost nonzero among sites 0..N−2.
			for j := sites - 2; j >= 0; j-- {
				if states[cur+j] != 0 {
					ni = j
					break
				}
			}
		} else {
			ni++
		}
	}

	return states
}

// Sites returns the number of lattice sites N.
func (b *Basis) Sites() int { return b.sites }

// Bosons returns the total boson count nb of the sector.
func (b *Basis) Bosons() int { return b.bosons }

// Dim returns the number of basis states M.
func (b *Basis) Dim() int { return b.dim }

// State returns a copy of the i-th occupation state in generation order.
// Complexity: O(N).
func (b *Basis) State(i int) ([]int, error) {
	if i < 0 || i >= b.dim {
		return nil, ErrIndexOutOfRange
	}
	out := make([]int, b.sites)
	copy(out, b.row(i))

	return out, nil
}

// States returns copies of all basis states in generation order. Callers
// interpreting eigenvector components index this slice by matrix row.
// Complexity: O(M·N) time and memory.
func (b *Basis) States() [][]int {
	out := make([][]int, b.dim)
	for i := 0; i < b.dim; i++ {
		out[i] = make([]int, b.sites)
		copy(out[i], b.row(i))
	}

	return out
}

// row returns the internal storage view of state i. Callers must not
// mutate it.
func (b *Basis) row(i int) []int {
	return b.states[i*b.sites : (i+1)*b.sites]
}
