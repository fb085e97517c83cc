// SPDX-License-Identifier: MIT
package simplex

import "errors"

var (
	// ErrDimensionMismatch signals an objective vector whose length
	// does not match the tableau's ambient dimension.
	ErrDimensionMismatch = errors.New("simplex: dimension mismatch")

	// ErrInternal marks a precondition violation inside the simplex
	// loop; per spec.md §7 this is a programming bug, reported as the
	// single in-band sentinel by callers. No function in this package
	// returns it: an artificial variable left basic at zero after
	// phase 1 is kept by solveStandard rather than reported.
	ErrInternal = errors.New("simplex: internal invariant violated")
)
