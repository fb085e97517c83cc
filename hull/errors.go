// SPDX-License-Identifier: MIT
package hull

import "errors"

var (
	// ErrDimensionMismatch is returned when a Set's members, or a
	// candidate row, disagree on ambient dimension.
	ErrDimensionMismatch = errors.New("hull: dimension mismatch")

	// ErrLPFailure is returned when an underlying LP call reports
	// lp.Error: an internal invariant violation in the LP layer, not a
	// caller input error.
	ErrLPFailure = errors.New("hull: linear program reported an error outcome")

	// ErrInternal marks a caller-facing failure in this package's own
	// bookkeeping that is still worth reporting as a result rather than
	// panicking: a nil Set, or Extend's facet count exceeding
	// WithMaxFacets. Preconditions spec.md §7 calls programming bugs
	// (e.g. InitialFacetConstraint receiving zero bounding directions)
	// panic via package invariant instead; see hull/facet.go.
	ErrInternal = errors.New("hull: internal invariant violated")
)
