// SPDX-License-Identifier: MIT
package hull_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/polyhull/hull"
	"github.com/katalvlaran/polyhull/polytope"
)

// DriverSuite covers spec.md §8's universal properties and end-to-end
// scenarios for hull.ConvexHull.
type DriverSuite struct {
	suite.Suite
}

func TestDriverSuite(t *testing.T) {
	suite.Run(t, new(DriverSuite))
}

// triangle builds the 2-D triangle with vertices (0,0), (a,0), (0,a).
func triangle(a int64) *polytope.Polyhedron {
	p := polytope.NewPolyhedron(2)
	p, _ = p.AddInequality(polytope.NewRow(0, 1, 0))
	p, _ = p.AddInequality(polytope.NewRow(0, 0, 1))
	p, _ = p.AddInequality(polytope.NewRow(a, -1, -1))
	return p
}

func (s *DriverSuite) TestSingleTriangleIsFixedPoint() {
	tri := triangle(3)
	set, err := polytope.NewSet(2, tri)
	require.NoError(s.T(), err)

	h, err := hull.ConvexHull(set)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, h.NumIneq())
	require.Equal(s.T(), 0, h.NumEq())
}

func (s *DriverSuite) TestEmptyUnionIsEmpty() {
	set, err := polytope.NewSet(2, polytope.Empty(2), polytope.Empty(2))
	require.NoError(s.T(), err)

	h, err := hull.ConvexHull(set)
	require.NoError(s.T(), err)
	require.True(s.T(), h.IsEmpty())
}

func (s *DriverSuite) TestZeroDimensionalUniverse() {
	set, err := polytope.NewSet(0, polytope.Universe(0))
	require.NoError(s.T(), err)

	h, err := hull.ConvexHull(set)
	require.NoError(s.T(), err)
	require.False(s.T(), h.IsEmpty())
	require.Equal(s.T(), 0, h.Dim())
}

// TestCollinearUnion matches spec.md §8's "Collinear union" scenario:
// {1<=x<=3} u {2<=x<=5} u {7<=x<=8} hulls to {1<=x<=8}.
func (s *DriverSuite) TestCollinearUnion() {
	interval := func(lo, hi int64) *polytope.Polyhedron {
		p := polytope.NewPolyhedron(1)
		p, _ = p.AddInequality(polytope.NewRow(-lo, 1))
		p, _ = p.AddInequality(polytope.NewRow(hi, -1))
		return p
	}
	set, err := polytope.NewSet(1, interval(1, 3), interval(2, 5), interval(7, 8))
	require.NoError(s.T(), err)

	h, err := hull.ConvexHull(set)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, h.NumIneq())

	loNum, loDen, hasLo, hiNum, hiDen, hasHi := memberBounds1DForTest(h)
	require.True(s.T(), hasLo)
	require.True(s.T(), hasHi)
	require.Equal(s.T(), int64(1), loNum.Int64())
	require.Equal(s.T(), int64(1), loDen.Int64())
	require.Equal(s.T(), int64(8), hiNum.Int64())
	require.Equal(s.T(), int64(1), hiDen.Int64())
}

// TestSquareFromTwoTriangles matches spec.md §8's flagship scenario: the
// union of two right triangles sharing a hypotenuse hulls to the square
// they tile.
func (s *DriverSuite) TestSquareFromTwoTriangles() {
	t1 := polytope.NewPolyhedron(2)
	t1, _ = t1.AddInequality(polytope.NewRow(0, 1, 0))
	t1, _ = t1.AddInequality(polytope.NewRow(0, 0, 1))
	t1, _ = t1.AddInequality(polytope.NewRow(2, -1, -1))

	t2 := polytope.NewPolyhedron(2)
	t2, _ = t2.AddInequality(polytope.NewRow(2, -1, 0))
	t2, _ = t2.AddInequality(polytope.NewRow(2, 0, -1))
	t2, _ = t2.AddInequality(polytope.NewRow(-2, 1, 1))

	set, err := polytope.NewSet(2, t1, t2)
	require.NoError(s.T(), err)

	h, err := hull.ConvexHull(set)
	require.NoError(s.T(), err)
	require.False(s.T(), h.IsEmpty())
	require.Equal(s.T(), 4, h.NumIneq())
}

// memberBounds1DForTest extracts the lower/upper bound of a 1-D
// polyhedron built purely from inequalities, for assertions above.
// An inequality c0+c1*x>=0 with c1>0 gives x>=-c0/c1 (a lower bound);
// with c1<0 it gives x<=c0/(-c1) (an upper bound).
func memberBounds1DForTest(p *polytope.Polyhedron) (loNum, loDen *big.Int, hasLo bool, hiNum, hiDen *big.Int, hasHi bool) {
	for i := 0; i < p.NumIneq(); i++ {
		r := p.Ineq(i)
		c0, c1 := r[0], r[1]
		switch c1.Sign() {
		case 1:
			loNum, loDen, hasLo = new(big.Int).Neg(c0), c1, true
		case -1:
			hiNum, hiDen, hasHi = c0, new(big.Int).Neg(c1), true
		}
	}
	return
}
