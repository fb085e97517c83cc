// SPDX-License-Identifier: MIT
package hull

import (
	"math/big"

	"github.com/katalvlaran/polyhull/lp"
	"github.com/katalvlaran/polyhull/polytope"
)

// Redundant decides whether candidate inequality c is implied by p, i.e.
// whether p ⊆ {c >= 0}. spec.md §4.2.
//
// A cheap sign filter runs first: for every coordinate where c has a
// non-zero coefficient, p must already contain some inequality with a
// coefficient of the same sign at that coordinate, or p is unbounded in
// a direction that rules out redundancy without needing an LP call at
// all.
func Redundant(p *polytope.Polyhedron, c polytope.Row) (bool, error) {
	if p == nil {
		return false, ErrInternal
	}
	if p.IsEmpty() {
		return true, nil
	}
	if p.Dim() != c.Dim() {
		return false, ErrDimensionMismatch
	}

	coeffs := c.Coeffs()
	for i, ci := range coeffs {
		if ci.Sign() == 0 {
			continue
		}
		found := false
		for j := 0; j < p.NumIneq(); j++ {
			if p.Ineq(j).Coeffs()[i].Sign() == ci.Sign() {
				found = true
				break
			}
		}
		if !found {
			return false, nil
		}
	}

	outcome, num, den := lp.Solve(p, coeffs, big.NewInt(1))
	switch outcome {
	case lp.Unbounded:
		return false, nil
	case lp.Empty:
		// p's own constraints are contradictory; an empty set is a
		// subset of every halfspace, but per spec.md §4.2 this path
		// reports "not redundant" and leaves emptiness detection to the
		// caller (ConvexHull1 derives emptiness independently via the
		// tableau, not through this per-row check).
		return false, nil
	case lp.Ok:
		m := new(big.Int).Mul(c.Const(), den)
		m.Add(m, num)
		return m.Sign() >= 0, nil
	default:
		return false, ErrLPFailure
	}
}
