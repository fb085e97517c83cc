// SPDX-License-Identifier: MIT
package simplex_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyhull/polytope"
	"github.com/katalvlaran/polyhull/simplex"
)

func TestSolveUnitInterval(t *testing.T) {
	p := polytope.NewPolyhedron(1)
	p, _ = p.AddInequality(polytope.NewRow(0, 1))  // x>=0
	p, _ = p.AddInequality(polytope.NewRow(1, -1)) // x<=1

	tab := simplex.FromPolyhedron(p)
	outcome, num, den := tab.Solve([]*big.Int{big.NewInt(1)}, big.NewInt(1))
	require.Equal(t, simplex.Ok, outcome)
	require.Equal(t, int64(0), num.Int64())
	require.NotZero(t, den.Int64())
}

func TestConeIsBounded(t *testing.T) {
	bounded := polytope.NewPolyhedron(1)
	bounded, _ = bounded.AddInequality(polytope.NewRow(0, 1))
	bounded, _ = bounded.AddInequality(polytope.NewRow(1, -1))
	require.True(t, simplex.FromRecessionCone(bounded).ConeIsBounded())

	unbounded := polytope.NewPolyhedron(1)
	unbounded, _ = unbounded.AddInequality(polytope.NewRow(0, 1))
	require.False(t, simplex.FromRecessionCone(unbounded).ConeIsBounded())
}

func TestDetectEqualities(t *testing.T) {
	p := polytope.NewPolyhedron(1)
	p, _ = p.AddInequality(polytope.NewRow(0, 1))
	p, _ = p.AddInequality(polytope.NewRow(0, -1))
	idx := simplex.FromPolyhedron(p).DetectEqualities()
	require.Len(t, idx, 2)
}
