// SPDX-License-Identifier: MIT
package hull_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyhull/hull"
	"github.com/katalvlaran/polyhull/polytope"
)

// triangle3 builds the 2-D triangle x>=0, y>=0, x+y<=3.
func triangle3() *polytope.Polyhedron {
	p := polytope.NewPolyhedron(2)
	p, _ = p.AddInequality(polytope.NewRow(0, 1, 0))
	p, _ = p.AddInequality(polytope.NewRow(0, 0, 1))
	p, _ = p.AddInequality(polytope.NewRow(3, -1, -1))
	return p
}

// TestWrapFacetZeroTiltReturnsRidge covers the case where facet is
// already a genuine supporting inequality of S: the dilation LP's
// minimum is attained with no tilt (num=0), so the combination
// collapses to ridge itself.
func TestWrapFacetZeroTiltReturnsRidge(t *testing.T) {
	tri := triangle3()
	set, err := polytope.NewSet(2, tri)
	require.NoError(t, err)

	facet := polytope.NewRow(0, 1, 0)  // x >= 0
	ridge := polytope.NewRow(3, -1, -1) // 3-x-y >= 0

	got, err := hull.WrapFacet(set, facet, ridge)
	require.NoError(t, err)
	require.True(t, got.Equal(polytope.NewRow(3, -1, -1)))
}

// TestWrapFacetUnboundedReturnsFacetUnchanged covers the lp.Unbounded
// branch: a ridge direction with no bound at all leaves the original
// facet untouched, per spec.md §9.
func TestWrapFacetUnboundedReturnsFacetUnchanged(t *testing.T) {
	p := polytope.NewPolyhedron(2)
	p, _ = p.AddInequality(polytope.NewRow(0, 1, 0)) // x >= 0, y free
	set, err := polytope.NewSet(2, p)
	require.NoError(t, err)

	facet := polytope.NewRow(0, 1, 0) // x >= 0
	ridge := polytope.NewRow(0, 0, 1) // y, unbounded below on p

	got, err := hull.WrapFacet(set, facet, ridge)
	require.NoError(t, err)
	require.True(t, got.Equal(facet))
}

// TestWrapFacetDimensionMismatch exercises the boundary check.
func TestWrapFacetDimensionMismatch(t *testing.T) {
	tri := triangle3()
	set, err := polytope.NewSet(2, tri)
	require.NoError(t, err)

	_, err = hull.WrapFacet(set, polytope.NewRow(0, 1), polytope.NewRow(0, 0, 1))
	require.ErrorIs(t, err, hull.ErrDimensionMismatch)
}
