package hamiltonian

import (
	"errors"
	"fmt"
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bosehubbard/basis"
	"github.com/katalvlaran/bosehubbard/lattice"
)

// ErrNilModel indicates that a nil *lattice.Model was passed to NewSector.
var ErrNilModel = errors.New("hamiltonian: model is nil")

// Sector is one fixed-boson-number subspace of a lattice model. It borrows
// the model read-only and owns the enumerated basis of the subspace; both
// stay immutable for the Sector's lifetime, so a Sector is safe for
// concurrent readers.
type Sector struct {
	model *lattice.Model
	basis *basis.Basis
}

// NewSector enumerates the (model.Sites(), bosons) occupation basis and
// binds it to the model.
//
// Stage 1 (Validate): model non-nil; bosons validated by basis.New.
// Stage 2 (Generate): build basis and lookup structures.
//
// Complexity: O(M·N + M log M), M = C(bosons+N−1, bosons).
func NewSector(m *lattice.Model, bosons int) (*Sector, error) {
	if m == nil {
		return nil, ErrNilModel
	}

	b, err := basis.New(m.Sites(), bosons)
	if err != nil {
		return nil, err
	}

	return &Sector{model: m, basis: b}, nil
}

// Basis exposes the sector's occupation basis, e.g. for interpreting
// eigenvector components by matrix row.
func (s *Sector) Basis() *basis.Basis { return s.basis }

// Bosons returns the sector's total boson count nb.
func (s *Sector) Bosons() int { return s.basis.Bosons() }

// Model returns the borrowed lattice description.
func (s *Sector) Model() *lattice.Model { return s.model }

// Matrix assembles the sector's many-body Hamiltonian in compressed-row
// form. The result is real-symmetric; row/column k corresponds to
// Basis().State(k).
//
// Stage 1 (Diagonal): onsite + interaction terms, one triple per state.
// Stage 2 (Hopping): off-diagonal ladder-operator terms, batched basis
// lookups per (site, neighbor) pair.
// Stage 3 (Finalize): coordinate triples → CSR (duplicates summed, which
// also folds self-link contributions onto the diagonal).
func (s *Sector) Matrix() (*sparse.CSR, error) {
	var (
		dim    = s.basis.Dim()
		states = s.basis.States()
		rows   = make([]int, 0, dim)
		cols   = make([]int, 0, dim)
		vals   = make([]float64, 0, dim)
	)

	rows, cols, vals = s.diagonal(states, rows, cols, vals)
	rows, cols, vals, err := s.hopping(states, rows, cols, vals)
	if err != nil {
		return nil, err
	}

	return sparse.NewCOO(dim, dim, rows, cols, vals).ToCSR(), nil
}

// Dense assembles the Hamiltonian and copies it into a dense matrix.
// Convenient for small sectors and for handing to dense eigensolvers;
// prefer Matrix for anything large.
func (s *Sector) Dense() (*mat.Dense, error) {
	csr, err := s.Matrix()
	if err != nil {
		return nil, err
	}

	return mat.DenseCopyOf(csr), nil
}

// diagonal appends one (k, k, ω·n⃗ + (U/2)·Σ nᵢ²) triple per state.
// ω is the model's −U/2-shifted onsite vector, so the n² sum alone
// reproduces the physical (U/2)·n·(n−1) interaction.
func (s *Sector) diagonal(states [][]int, rows, cols []int, vals []float64) ([]int, []int, []float64) {
	omega := s.model.ShiftedOnsite()
	u := s.model.Interaction()

	scratch := make([]float64, s.model.Sites())
	for k, st := range states {
		var sq float64
		for j, n := range st {
			scratch[j] = float64(n)
			sq += float64(n * n)
		}

		rows = append(rows, k)
		cols = append(cols, k)
		vals = append(vals, floats.Dot(omega, scratch)+u/2*sq)
	}

	return rows, cols, vals
}

// hopping appends the off-diagonal ladder-operator triples. For every
// site pair (i, l) with H0[i,l] ≠ 0 it moves one boson i → l on every
// state with nᵢ > 0, resolves the destinations in one batch, and emits
// H0[i,l]·√(nᵢ·(n_l+1)) with the source occupations taken before the move.
func (s *Sector) hopping(states [][]int, rows, cols []int, vals []float64) ([]int, []int, []float64, error) {
	var (
		n  = s.model.Sites()
		h0 = s.model.Hopping()
	)

	js := make([]int, 0, len(states))
	for i := 0; i < n; i++ {
		// Source states with at least one boson on site i.
		js = js[:0]
		for k, st := range states {
			if st[i] > 0 {
				js = append(js, k)
			}
		}
		if len(js) == 0 {
			continue
		}

		for l := 0; l < n; l++ {
			amp := h0.At(i, l)
			if amp == 0 {
				continue
			}

			// Destination states: one boson moved i → l.
			dests := make([][]int, len(js))
			for q, k := range js {
				d := append([]int(nil), states[k]...)
				d[i]--
				d[l]++
				dests[q] = d
			}

			ks, err := s.basis.IndexAll(dests)
			if err != nil {
				return nil, nil, nil, s.hopError(i, l, states, js, dests, err)
			}

			for q, k := range js {
				ni, nl := states[k][i], states[k][l]
				rows = append(rows, k)
				cols = append(cols, ks[q])
				vals = append(vals, amp*math.Sqrt(float64(ni*(nl+1))))
			}
		}
	}

	return rows, cols, vals, nil
}

// hopError rebuilds the context of a failed batched lookup: which source
// state of the i→l pass produced the unresolvable destination. A hit here
// means the basis is not closed under single-boson hops, which a correct
// enumeration makes impossible — surface everything we know.
func (s *Sector) hopError(i, l int, states [][]int, js []int, dests [][]int, err error) error {
	for q, d := range dests {
		if _, e := s.basis.Index(d); e != nil {
			return fmt.Errorf("hamiltonian: hop %d->%d from state %v (index %d) to %v: %w",
				i, l, states[js[q]], js[q], d, err)
		}
	}

	// Batch failed but every retry resolves: still abort with pair context.
	return fmt.Errorf("hamiltonian: hop %d->%d: %w", i, l, err)
}
