package lattice

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by model construction.
var (
	// ErrNoSites indicates an empty onsite-energy list (N must be ≥ 1).
	ErrNoSites = errors.New("lattice: onsite energies must cover at least one site")

	// ErrLinkOutOfRange indicates a link endpoint outside [0, N).
	ErrLinkOutOfRange = errors.New("lattice: link endpoint outside site range")

	// ErrNonFinite indicates a NaN or ±Inf onsite energy, amplitude, or
	// interaction strength. Finite values are required at ingestion.
	ErrNonFinite = errors.New("lattice: NaN or Inf encountered")
)

// DefaultAmplitude is the hopping amplitude assumed when a link does not
// specify one.
const DefaultAmplitude = -1.0

// Link is one directed hopping term (From → To) with a real amplitude.
// The symmetric conjugate is added automatically when the hopping matrix
// is derived, so each physical bond is listed once.
type Link struct {
	From, To  int
	Amplitude float64
}

// Hop builds a Link with the default amplitude −1.
func Hop(from, to int) Link {
	return Link{From: from, To: to, Amplitude: DefaultAmplitude}
}

// Model is an immutable Bose-Hubbard lattice description.
type Model struct {
	sites   int
	onsite  []float64 // unshifted onsite energies, length == sites
	shifted []float64 // onsite − U/2, the form the assembler consumes
	links   []Link
	u       float64 // interaction strength U
}

// NewModel validates and captures a lattice description.
//
// Stage 1 (Validate): N ≥ 1, finite energies/amplitudes/U, link endpoints
// in range.
// Stage 2 (Prepare): copy inputs, precompute the −U/2 shift.
//
// Complexity: O(N + L) for N sites and L links.
func NewModel(onsite []float64, links []Link, u float64) (*Model, error) {
	n := len(onsite)
	if n == 0 {
		return nil, ErrNoSites
	}
	if !isFinite(u) {
		return nil, fmt.Errorf("interaction strength %v: %w", u, ErrNonFinite)
	}
	for i, w := range onsite {
		if !isFinite(w) {
			return nil, fmt.Errorf("onsite energy %v at site %d: %w", w, i, ErrNonFinite)
		}
	}
	for _, l := range links {
		if l.From < 0 || l.From >= n || l.To < 0 || l.To >= n {
			return nil, fmt.Errorf("link %d->%d with %d sites: %w", l.From, l.To, n, ErrLinkOutOfRange)
		}
		if !isFinite(l.Amplitude) {
			return nil, fmt.Errorf("link %d->%d amplitude %v: %w", l.From, l.To, l.Amplitude, ErrNonFinite)
		}
	}

	m := &Model{
		sites:   n,
		onsite:  append([]float64(nil), onsite...),
		shifted: make([]float64, n),
		links:   append([]Link(nil), links...),
		u:       u,
	}
	for i, w := range onsite {
		m.shifted[i] = w - u/2
	}

	return m, nil
}

// Sites returns the number of lattice sites N.
func (m *Model) Sites() int { return m.sites }

// Interaction returns the onsite interaction strength U.
func (m *Model) Interaction() float64 { return m.u }

// Onsite returns a copy of the unshifted onsite energies.
func (m *Model) Onsite() []float64 {
	return append([]float64(nil), m.onsite...)
}

// ShiftedOnsite returns a copy of the pre-shifted energies ω − U/2
// consumed by the diagonal Hamiltonian pass.
func (m *Model) ShiftedOnsite() []float64 {
	return append([]float64(nil), m.shifted...)
}

// Links returns a copy of the link list.
func (m *Model) Links() []Link {
	return append([]Link(nil), m.links...)
}

// Hopping derives the dense single-particle hopping matrix: amplitudes are
// accumulated as H0[from,to] += amplitude over all links, then symmetrized
// as H0 + H0ᵀ. The result is always symmetric; the diagonal is only
// nonzero if a self-link was supplied.
//
// Complexity: O(N² + L) time, O(N²) memory.
func (m *Model) Hopping() *mat.Dense {
	h0 := mat.NewDense(m.sites, m.sites, nil)
	for _, l := range m.links {
		h0.Set(l.From, l.To, h0.At(l.From, l.To)+l.Amplitude)
	}

	sym := mat.NewDense(m.sites, m.sites, nil)
	sym.Add(h0, h0.T())

	return sym
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
