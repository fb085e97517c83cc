// SPDX-License-Identifier: MIT
package lp

import (
	"math/big"

	"github.com/katalvlaran/polyhull/polytope"
	"github.com/katalvlaran/polyhull/simplex"
)

// Outcome mirrors simplex.Outcome; re-declared here so hull's imports
// name lp.Ok/lp.Empty/lp.Unbounded/lp.Error rather than reaching into
// package simplex directly.
type Outcome = simplex.Outcome

const (
	Ok        = simplex.Ok
	Empty     = simplex.Empty
	Unbounded = simplex.Unbounded
	Error     = simplex.Error
)

// Solve minimizes (objective . x) / denom over p, exactly, via a fresh
// simplex.Tableau. denom must be positive. On Ok, num/den is the
// reduced (den > 0) rational minimum.
func Solve(p *polytope.Polyhedron, objective []*big.Int, denom *big.Int) (Outcome, *big.Int, *big.Int) {
	if p == nil {
		return Error, nil, nil
	}
	if denom.Sign() <= 0 {
		return Error, nil, nil
	}
	t := simplex.FromPolyhedron(p)
	return t.Solve(objective, denom)
}

// SolveCone minimizes objective over p's recession cone. The hull code
// does not call it: boundedness goes through IsBoundedCone and
// wrap_facet builds its dilation LP for Solve.
func SolveCone(p *polytope.Polyhedron, objective []*big.Int, denom *big.Int) (Outcome, *big.Int, *big.Int) {
	if p == nil {
		return Error, nil, nil
	}
	t := simplex.FromRecessionCone(p)
	return t.Solve(objective, denom)
}

// IsBoundedCone reports whether p's recession cone is {0}, i.e. p
// itself is bounded.
func IsBoundedCone(p *polytope.Polyhedron) bool {
	return simplex.FromRecessionCone(p).ConeIsBounded()
}

// ImplicitEqualities returns the inequality indices of p that are
// implicit equalities (tight at every point of p).
func ImplicitEqualities(p *polytope.Polyhedron) []int {
	return simplex.FromPolyhedron(p).DetectEqualities()
}
