// SPDX-License-Identifier: MIT
package hull_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyhull/hull"
	"github.com/katalvlaran/polyhull/polytope"
)

// containsPoint reports whether pt (integer coordinates) satisfies
// every equality and inequality of p.
func containsPoint(p *polytope.Polyhedron, pt []int64) bool {
	eval := func(r polytope.Row) *big.Int {
		sum := new(big.Int).Set(r.Const())
		for i, c := range r.Coeffs() {
			term := new(big.Int).Mul(c, big.NewInt(pt[i]))
			sum.Add(sum, term)
		}
		return sum
	}
	for i := 0; i < p.NumEq(); i++ {
		if eval(p.Eq(i)).Sign() != 0 {
			return false
		}
	}
	for i := 0; i < p.NumIneq(); i++ {
		if eval(p.Ineq(i)).Sign() < 0 {
			return false
		}
	}
	return true
}

// TestSimpleHullGap matches spec.md §8's "Simple-hull gap" scenario:
// S = {0<=x<=1, 0<=y<=1} ∪ {1<=x<=2, 2<=y<=3}. The true hull has a
// diagonal facet cutting off (0,3); the simple hull is only the
// 0<=x<=2, 0<=y<=3 bounding box, which still contains (0,3).
func TestSimpleHullGap(t *testing.T) {
	a := polytope.NewPolyhedron(2)
	a, _ = a.AddInequality(polytope.NewRow(0, 1, 0))
	a, _ = a.AddInequality(polytope.NewRow(0, 0, 1))
	a, _ = a.AddInequality(polytope.NewRow(1, -1, 0))
	a, _ = a.AddInequality(polytope.NewRow(1, 0, -1))

	b := polytope.NewPolyhedron(2)
	b, _ = b.AddInequality(polytope.NewRow(-1, 1, 0))
	b, _ = b.AddInequality(polytope.NewRow(-2, 0, 1))
	b, _ = b.AddInequality(polytope.NewRow(2, -1, 0))
	b, _ = b.AddInequality(polytope.NewRow(3, 0, -1))

	set, err := polytope.NewSet(2, a, b)
	require.NoError(t, err)

	simple, err := hull.SimpleHull(set)
	require.NoError(t, err)
	require.Equal(t, 4, simple.NumIneq())
	require.True(t, containsPoint(simple, []int64{0, 3}))

	exact, err := hull.ConvexHull(set)
	require.NoError(t, err)
	require.False(t, containsPoint(exact, []int64{0, 3}))
}
