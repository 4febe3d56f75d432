// SPDX-License-Identifier: MIT
// Package basis: sentinel error set.
// All public entry points return these sentinels and tests match them via
// errors.Is. Wrapping with fmt.Errorf("ctx: %w", ErrX) is reserved for outer
// boundaries (e.g. the hamiltonian assembler adding hop context).
package basis

import "errors"

var (
	// ErrNoSites indicates a requested site count N ≤ 0.
	ErrNoSites = errors.New("basis: site count must be positive")

	// ErrNegativeBosons indicates a requested boson count nb < 0.
	ErrNegativeBosons = errors.New("basis: boson count must be non-negative")

	// ErrStateLength indicates a query state whose length differs from the
	// basis site count.
	ErrStateLength = errors.New("basis: state length does not match site count")

	// ErrIndexOutOfRange indicates a state index outside [0, Dim).
	ErrIndexOutOfRange = errors.New("basis: state index out of range")

	// ErrStateNotFound indicates a fingerprint absent from the sorted key
	// table. The enumerated basis is closed under single-boson hops, so for
	// in-contract queries this is an internal invariant violation, not a
	// recoverable input error: treat it as an assertion failure.
	ErrStateNotFound = errors.New("basis: state not found in enumerated basis")
)
