// SPDX-License-Identifier: MIT
package hull_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyhull/hull"
	"github.com/katalvlaran/polyhull/polytope"
)

// TestInitialFacetConstraintReturnsGenuineFacet checks that collapsing
// the triangle's d independent bounding directions produces a row that
// is exactly one of its three true facets, normalized.
func TestInitialFacetConstraintReturnsGenuineFacet(t *testing.T) {
	tri := triangle3()
	set, err := polytope.NewSet(2, tri)
	require.NoError(t, err)

	bounds, err := hull.IndependentBounds(set)
	require.NoError(t, err)
	require.Equal(t, 2, bounds.Rows())

	f0, err := hull.InitialFacetConstraint(set, bounds)
	require.NoError(t, err)

	candidates := []polytope.Row{
		polytope.NewRow(0, 1, 0),
		polytope.NewRow(0, 0, 1),
		polytope.NewRow(3, -1, -1),
	}
	matched := false
	for _, c := range candidates {
		if f0.Equal(c) {
			matched = true
			break
		}
	}
	require.True(t, matched, "InitialFacetConstraint returned %v, expected one of the triangle's facets", f0)
}

// TestComputeFacetFindsRidgesOfKnownFacet checks that ComputeFacet on
// the triangle's x>=0 facet finds exactly the two ridges bounding that
// edge (y>=0 and 3-y>=0 after dropping the now-trivial x coordinate).
func TestComputeFacetFindsRidgesOfKnownFacet(t *testing.T) {
	tri := triangle3()
	set, err := polytope.NewSet(2, tri)
	require.NoError(t, err)

	facetPoly, err := hull.ComputeFacet(set, polytope.NewRow(0, 1, 0))
	require.NoError(t, err)
	require.Equal(t, 0, facetPoly.NumEq())
	require.Equal(t, 2, facetPoly.NumIneq())
}
