// SPDX-License-Identifier: MIT
package hull

import (
	"math/big"

	"github.com/katalvlaran/polyhull/intvec"
	"github.com/katalvlaran/polyhull/polytope"
)

// eliminateDims projects a polyhedron's row system onto the complement
// of cols by classical Fourier-Motzkin elimination, processing one
// column at a time:
//
//   - if some equality still has a non-zero entry at the column, that
//     equality is used as a pivot and every other row (equality or
//     inequality) touching the column is replaced by its elimination
//     against the pivot (Gaussian substitution; valid for inequalities
//     too, since the pivot row is forced to 0 and is renormalized to a
//     positive pivot coefficient first so the combination cannot flip
//     an inequality's direction);
//   - otherwise the column is eliminated by combining every pair of
//     inequalities with opposite-sign coefficients there (the textbook
//     Fourier-Motzkin step); a column bounded on only one side carries
//     no constraint on the others once it is allowed to run to
//     infinity in the unbounded direction, so both its pos and neg rows
//     are simply dropped.
//
// The eliminated columns are still present (zeroed) in the returned
// rows; RemoveDims performs the final compaction once every column has
// been processed, since RemoveDims itself assumes the dropped columns
// are already zero everywhere. Grounded on the original isl
// convex_hull_pair/uset_convex_hull_elim's use of
// isl_basic_set_remove_dims after a genuine elimination step
// (original_source/isl_convex_hull.c).
func eliminateDims(eq, ineq []polytope.Row, cols []int) ([]polytope.Row, []polytope.Row) {
	eq = append([]polytope.Row{}, eq...)
	ineq = append([]polytope.Row{}, ineq...)

	for _, col := range cols {
		pivotIdx := -1
		for i, r := range eq {
			if r[col].Sign() != 0 {
				pivotIdx = i
				break
			}
		}
		if pivotIdx >= 0 {
			pivot := eq[pivotIdx]
			if pivot[col].Sign() < 0 {
				pivot = polytope.Row(intvec.Negate(pivot))
			}

			newEq := make([]polytope.Row, 0, len(eq))
			for i, r := range eq {
				if i == pivotIdx {
					continue
				}
				if r[col].Sign() == 0 {
					newEq = append(newEq, r)
					continue
				}
				newEq = append(newEq, polytope.Row(intvec.GCDNormalize(intvec.EliminateAgainst(pivot, r, col))))
			}
			newIneq := make([]polytope.Row, 0, len(ineq))
			for _, r := range ineq {
				if r[col].Sign() == 0 {
					newIneq = append(newIneq, r)
					continue
				}
				newIneq = append(newIneq, polytope.Row(intvec.GCDNormalize(intvec.EliminateAgainst(pivot, r, col))))
			}
			eq, ineq = newEq, newIneq
			continue
		}

		var pos, neg, zero []polytope.Row
		for _, r := range ineq {
			switch r[col].Sign() {
			case 1:
				pos = append(pos, r)
			case -1:
				neg = append(neg, r)
			default:
				zero = append(zero, r)
			}
		}
		if len(pos) == 0 || len(neg) == 0 {
			ineq = zero
			continue
		}
		merged := make([]polytope.Row, 0, len(zero)+len(pos)*len(neg))
		merged = append(merged, zero...)
		for _, a := range pos {
			for _, b := range neg {
				cb := new(big.Int).Neg(b[col])
				row := intvec.Combine(cb, a, new(big.Int).Set(a[col]), b)
				merged = append(merged, polytope.Row(intvec.GCDNormalize(row)))
			}
		}
		ineq = merged
	}

	return eq, ineq
}

// convexHullPair computes conv(a ∪ b) for two polyhedra of the same
// dimension d, including when either is unbounded, by the classical
// Minkowski-sum construction: conv(a∪b) is the projection, onto the y
// block, of
//
//	{ (y, a1, x1, a2, x2) : a1,a2 >= 0, a1+a2 = 1,
//	  (a1,x1) in cone(a), (a2,x2) in cone(b), y = x1+x2 }
//
// where cone(P) is P's rows homogenized against the dilation variable
// a_i. Eliminating (a1,x1,a2,x2) by Fourier-Motzkin leaves exactly the
// points reachable as a convex combination of a point of a and a point
// of b, which is conv(a∪b) whenever a and b are themselves convex.
// spec.md §4.10; grounded verbatim on the original isl
// convex_hull_pair/uset_convex_hull_elim
// (original_source/isl_convex_hull.c).
func convexHullPair(a, b *polytope.Polyhedron) (*polytope.Polyhedron, error) {
	d := a.Dim()
	if b.Dim() != d {
		return nil, ErrDimensionMismatch
	}

	total := 3*d + 2
	aCol1, xBase1 := d+1, d+2
	aCol2, xBase2 := 2*d+2, 2*d+3

	zeroRow := func() polytope.Row {
		r := make(polytope.Row, total+1)
		for i := range r {
			r[i] = new(big.Int)
		}
		return r
	}
	homogenize := func(r polytope.Row, aCol, xBase int) polytope.Row {
		out := zeroRow()
		out[aCol] = new(big.Int).Set(r.Const())
		for i, c := range r.Coeffs() {
			out[xBase+i] = new(big.Int).Set(c)
		}
		return out
	}

	var eq, ineq []polytope.Row
	for i := 0; i < a.NumEq(); i++ {
		eq = append(eq, homogenize(a.Eq(i), aCol1, xBase1))
	}
	for i := 0; i < a.NumIneq(); i++ {
		ineq = append(ineq, homogenize(a.Ineq(i), aCol1, xBase1))
	}
	for i := 0; i < b.NumEq(); i++ {
		eq = append(eq, homogenize(b.Eq(i), aCol2, xBase2))
	}
	for i := 0; i < b.NumIneq(); i++ {
		ineq = append(ineq, homogenize(b.Ineq(i), aCol2, xBase2))
	}

	nonNeg := func(col int) polytope.Row {
		r := zeroRow()
		r[col] = big.NewInt(1)
		return r
	}
	ineq = append(ineq, nonNeg(aCol1), nonNeg(aCol2))

	dilationSum := zeroRow()
	dilationSum[0] = big.NewInt(-1)
	dilationSum[aCol1] = big.NewInt(1)
	dilationSum[aCol2] = big.NewInt(1)
	eq = append(eq, dilationSum)

	for j := 0; j < d; j++ {
		row := zeroRow()
		row[1+j] = big.NewInt(-1)
		row[xBase1+j] = big.NewInt(1)
		row[xBase2+j] = big.NewInt(1)
		eq = append(eq, row)
	}

	project := make([]int, 0, total-d)
	for c := d + 1; c <= total; c++ {
		project = append(project, c)
	}
	eq, ineq = eliminateDims(eq, ineq, project)

	reduced := polytope.NewPolyhedron(total).WithRows(eq, ineq).RemoveDims(project...)
	return ConvexHull1(reduced.Finalize())
}

// unboundedElimHull computes conv(S) for a union whose members may be
// unbounded, by folding convexHullPair pairwise across every non-empty
// member, left to right. spec.md §4.10; grounded on the original's
// uset_convex_hull_elim, which reduces a union the same way.
func unboundedElimHull(s *polytope.Set) (*polytope.Polyhedron, error) {
	members := nonEmptyMembers(s)
	if len(members) == 0 {
		return polytope.Empty(s.Dim()), nil
	}
	acc := members[0]
	for _, m := range members[1:] {
		var err error
		acc, err = convexHullPair(acc, m)
		if err != nil {
			return nil, err
		}
	}
	return ConvexHull1(acc.Finalize())
}
