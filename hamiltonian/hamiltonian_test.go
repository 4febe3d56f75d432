package hamiltonian_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bosehubbard/basis"
	"github.com/katalvlaran/bosehubbard/hamiltonian"
	"github.com/katalvlaran/bosehubbard/lattice"
)

// ringModel builds an n-site ring with uniform hopping amplitude amp,
// zero onsite energies, and interaction u.
func ringModel(t *testing.T, n int, amp, u float64) *lattice.Model {
	t.Helper()

	links := make([]lattice.Link, 0, n)
	for i := 0; i < n; i++ {
		links = append(links, lattice.Link{From: i, To: (i + 1) % n, Amplitude: amp})
	}
	m, err := lattice.NewModel(make([]float64, n), links, u)
	require.NoError(t, err, "ring model must construct")

	return m
}

// TestNewSector_Validation covers the nil-model and bad-boson-count paths.
func TestNewSector_Validation(t *testing.T) {
	_, err := hamiltonian.NewSector(nil, 2)
	assert.ErrorIs(t, err, hamiltonian.ErrNilModel, "nil model must error")

	m, err := lattice.NewModel([]float64{0, 0}, nil, 1)
	require.NoError(t, err)
	_, err = hamiltonian.NewSector(m, -1)
	assert.ErrorIs(t, err, basis.ErrNegativeBosons, "negative boson count must propagate the basis sentinel")
}

// TestMatrix_InteractionOnly pins the concrete diagonal scenario: two sites,
// two bosons, ω=[0,0], U=2, no links. Shifted ω=[−1,−1] gives the diagonal
// [2, 0, 2] over the basis order [2,0], [1,1], [0,2], with no off-diagonal
// entries at all.
func TestMatrix_InteractionOnly(t *testing.T) {
	m, err := lattice.NewModel([]float64{0, 0}, nil, 2)
	require.NoError(t, err)
	sec, err := hamiltonian.NewSector(m, 2)
	require.NoError(t, err)

	h, err := sec.Matrix()
	require.NoError(t, err)

	want := mat.NewDense(3, 3, []float64{
		2, 0, 0,
		0, 0, 0,
		0, 0, 2,
	})
	assert.True(t, mat.EqualApprox(h, want, 1e-12), "interaction-only Hamiltonian\n got: %v", mat.Formatted(h))
}

// TestMatrix_SingleBosonRing pins the concrete hopping scenario: a 3-site
// ring with amplitude −1, ω=0, U=2 and a single boson. The many-body matrix
// must equal the single-particle hopping matrix exactly (the interaction
// vanishes algebraically for n ∈ {0,1}).
func TestMatrix_SingleBosonRing(t *testing.T) {
	m := ringModel(t, 3, -1, 2)
	sec, err := hamiltonian.NewSector(m, 1)
	require.NoError(t, err)

	h, err := sec.Matrix()
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(h, m.Hopping(), 1e-12),
		"single-boson ring must reduce to H0\n got: %v", mat.Formatted(h))
}

// TestMatrix_SingleBosonReduction checks the nb=1 reduction on an irregular
// lattice: H must equal H0 + diag(unshifted onsite energies).
func TestMatrix_SingleBosonReduction(t *testing.T) {
	onsite := []float64{0.5, -0.2, 0.1, 0}
	links := []lattice.Link{
		{From: 0, To: 1, Amplitude: -0.7},
		{From: 1, To: 2, Amplitude: 0.3},
		{From: 0, To: 3, Amplitude: -1},
	}
	m, err := lattice.NewModel(onsite, links, 1.7)
	require.NoError(t, err)

	sec, err := hamiltonian.NewSector(m, 1)
	require.NoError(t, err)
	h, err := sec.Matrix()
	require.NoError(t, err)

	want := mat.DenseCopyOf(m.Hopping())
	for i, w := range onsite {
		want.Set(i, i, want.At(i, i)+w)
	}
	assert.True(t, mat.EqualApprox(h, want, 1e-12),
		"nb=1 must reduce to H0 + diag(ω)\n got: %v\nwant: %v", mat.Formatted(h), mat.Formatted(want))
}

// TestMatrix_TwoSiteHopping verifies the ladder-operator normalization on
// the smallest non-trivial hopping problem: two sites, two bosons, one bond
// of amplitude −1, U=0. Every off-diagonal element is −√2.
func TestMatrix_TwoSiteHopping(t *testing.T) {
	m, err := lattice.NewModel([]float64{0, 0}, []lattice.Link{lattice.Hop(0, 1)}, 0)
	require.NoError(t, err)
	sec, err := hamiltonian.NewSector(m, 2)
	require.NoError(t, err)

	h, err := sec.Matrix()
	require.NoError(t, err)

	r2 := math.Sqrt2
	want := mat.NewDense(3, 3, []float64{
		0, -r2, 0,
		-r2, 0, -r2,
		0, -r2, 0,
	})
	assert.True(t, mat.EqualApprox(h, want, 1e-12),
		"two-site hopping matrix\n got: %v", mat.Formatted(h))
}

// TestMatrix_Hermiticity asserts H == Hᵀ entry-wise across several
// lattice/sector configurations, including multi-boson sectors.
func TestMatrix_Hermiticity(t *testing.T) {
	cases := []struct {
		name   string
		model  func(t *testing.T) *lattice.Model
		bosons int
	}{
		{
			name:   "ring_4_sites_2_bosons",
			model:  func(t *testing.T) *lattice.Model { return ringModel(t, 4, -1, 2) },
			bosons: 2,
		},
		{
			name:   "ring_5_sites_3_bosons_weak_hopping",
			model:  func(t *testing.T) *lattice.Model { return ringModel(t, 5, 0.1, 1) },
			bosons: 3,
		},
		{
			name: "chain_with_mixed_amplitudes",
			model: func(t *testing.T) *lattice.Model {
				t.Helper()
				m, err := lattice.NewModel([]float64{0.3, -0.1, 0.2},
					[]lattice.Link{{From: 0, To: 1, Amplitude: -0.4}, {From: 1, To: 2, Amplitude: 0.8}}, 0.9)
				require.NoError(t, err)

				return m
			},
			bosons: 3,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sec, err := hamiltonian.NewSector(tc.model(t), tc.bosons)
			require.NoError(t, err)

			h, err := sec.Dense()
			require.NoError(t, err)
			assert.True(t, mat.EqualApprox(h, h.T(), 1e-12), "Hamiltonian must equal its transpose")
		})
	}
}

// TestMatrix_RowAlignment cross-checks that matrix rows follow the basis
// order: applying the diagonal formula per introspected state reproduces
// every diagonal entry.
func TestMatrix_RowAlignment(t *testing.T) {
	m := ringModel(t, 4, -1, 3)
	sec, err := hamiltonian.NewSector(m, 2)
	require.NoError(t, err)

	h, err := sec.Matrix()
	require.NoError(t, err)

	u := m.Interaction()
	omega := m.ShiftedOnsite()
	for k := 0; k < sec.Basis().Dim(); k++ {
		st, err := sec.Basis().State(k)
		require.NoError(t, err)

		var want float64
		for i, n := range st {
			want += omega[i]*float64(n) + u/2*float64(n*n)
		}
		assert.InDelta(t, want, h.At(k, k), 1e-12, "diagonal entry %d for state %v", k, st)
	}
}

// TestDense_MatchesMatrix checks that the dense convenience copy agrees
// with the sparse assembly entry for entry.
func TestDense_MatchesMatrix(t *testing.T) {
	m := ringModel(t, 3, -1, 2)
	sec, err := hamiltonian.NewSector(m, 2)
	require.NoError(t, err)

	csr, err := sec.Matrix()
	require.NoError(t, err)
	dense, err := sec.Dense()
	require.NoError(t, err)

	assert.True(t, mat.EqualApprox(csr, dense, 0), "Dense must copy Matrix exactly")
}
