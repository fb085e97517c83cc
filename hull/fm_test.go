// SPDX-License-Identifier: MIT
package hull

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyhull/polytope"
)

// rowsEqualUpToOrder compares two row sets ignoring order, after
// gcd-normalizing via polytope.Row.Equal on each pair.
func rowsEqualUpToOrder(t *testing.T, got, want []polytope.Row) {
	t.Helper()
	require.Equal(t, len(want), len(got))
	used := make([]bool, len(got))
	for _, w := range want {
		found := false
		for i, g := range got {
			if used[i] {
				continue
			}
			if g.Equal(w) {
				used[i] = true
				found = true
				break
			}
		}
		require.True(t, found, "expected row %v not found in %v", w, got)
	}
}

// TestEliminateDimsSubstitutesEquality covers the pivot branch: given
// x - y = 0 (eq) and x >= 0 (ineq), eliminating x must substitute
// x = y everywhere, leaving y >= 0.
func TestEliminateDimsSubstitutesEquality(t *testing.T) {
	eq := []polytope.Row{polytope.NewRow(0, 1, -1)} // x - y = 0
	ineq := []polytope.Row{polytope.NewRow(0, 1, 0)} // x >= 0

	newEq, newIneq := eliminateDims(eq, ineq, []int{1})
	require.Len(t, newEq, 0)
	rowsEqualUpToOrder(t, newIneq, []polytope.Row{polytope.NewRow(0, 0, 1)}) // y >= 0
}

// TestEliminateDimsCombinesOppositeSignInequalities covers the classic
// pairwise step: x <= 1 and x >= y together eliminate x, leaving y <= 1.
func TestEliminateDimsCombinesOppositeSignInequalities(t *testing.T) {
	ineq := []polytope.Row{
		polytope.NewRow(1, -1, 0), // 1 - x >= 0, i.e. x <= 1
		polytope.NewRow(0, 1, -1), // x - y >= 0, i.e. x >= y
	}

	_, newIneq := eliminateDims(nil, ineq, []int{1})
	rowsEqualUpToOrder(t, newIneq, []polytope.Row{polytope.NewRow(1, 0, -1)}) // 1 - y >= 0
}

// TestEliminateDimsDropsOneSidedColumn covers the unbounded-column rule:
// a column with inequalities on only one side carries no constraint on
// the remaining variables once eliminated.
func TestEliminateDimsDropsOneSidedColumn(t *testing.T) {
	ineq := []polytope.Row{
		polytope.NewRow(0, 1, 0), // x >= 0, no upper bound on x
		polytope.NewRow(0, 0, 1), // y >= 0
	}

	_, newIneq := eliminateDims(nil, ineq, []int{1})
	rowsEqualUpToOrder(t, newIneq, []polytope.Row{polytope.NewRow(0, 0, 1)}) // only y >= 0 survives
}

// TestConvexHullPairOfTwoIntervals checks the Minkowski-sum pairwise
// construction on a 1-D shape simple enough to verify by hand:
// conv([0,1] u [2,3]) = [0,3].
func TestConvexHullPairOfTwoIntervals(t *testing.T) {
	a := polytope.NewPolyhedron(1)
	a, _ = a.AddInequality(polytope.NewRow(0, 1))  // x >= 0
	a, _ = a.AddInequality(polytope.NewRow(1, -1)) // x <= 1

	b := polytope.NewPolyhedron(1)
	b, _ = b.AddInequality(polytope.NewRow(-2, 1)) // x >= 2
	b, _ = b.AddInequality(polytope.NewRow(3, -1))  // x <= 3

	out, err := convexHullPair(a, b)
	require.NoError(t, err)
	require.False(t, out.IsEmpty())

	eval := func(r polytope.Row, x int64) *big.Int {
		return new(big.Int).Add(r.Const(), new(big.Int).Mul(r.Coeffs()[0], big.NewInt(x)))
	}
	contains := func(x int64) bool {
		for i := 0; i < out.NumIneq(); i++ {
			if eval(out.Ineq(i), x).Sign() < 0 {
				return false
			}
		}
		return true
	}
	require.True(t, contains(0))
	require.True(t, contains(1))
	require.True(t, contains(2))
	require.True(t, contains(3))
	require.False(t, contains(-1))
	require.False(t, contains(4))
}

func TestConvexHullPairDimensionMismatch(t *testing.T) {
	a := polytope.NewPolyhedron(1)
	b := polytope.NewPolyhedron(2)

	_, err := convexHullPair(a, b)
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

// TestUnboundedElimHullFoldsAcrossThreeMembers checks the pairwise fold
// over more than two members: conv([0,1] u [2,3] u [5,6]) = [0,6].
func TestUnboundedElimHullFoldsAcrossThreeMembers(t *testing.T) {
	interval := func(lo, hi int64) *polytope.Polyhedron {
		p := polytope.NewPolyhedron(1)
		p, _ = p.AddInequality(polytope.NewRow(-lo, 1))
		p, _ = p.AddInequality(polytope.NewRow(hi, -1))
		return p
	}
	set, err := polytope.NewSet(1, interval(0, 1), interval(2, 3), interval(5, 6))
	require.NoError(t, err)

	out, err := unboundedElimHull(set)
	require.NoError(t, err)

	loNum, loDen, hasLo, hiNum, hiDen, hasHi := memberBounds1D(out)
	require.True(t, hasLo)
	require.True(t, hasHi)
	require.Equal(t, int64(0), loNum.Int64())
	require.Equal(t, int64(1), loDen.Int64())
	require.Equal(t, int64(6), hiNum.Int64())
	require.Equal(t, int64(1), hiDen.Int64())
}

func TestUnboundedElimHullAllEmptyIsEmpty(t *testing.T) {
	set, err := polytope.NewSet(2, polytope.Empty(2), polytope.Empty(2))
	require.NoError(t, err)

	out, err := unboundedElimHull(set)
	require.NoError(t, err)
	require.True(t, out.IsEmpty())
}
