// SPDX-License-Identifier: MIT

// Package hull_test demonstrates computing a convex hull and a
// conservative simple-hull bound on a union of polyhedra.
package hull_test

import (
	"fmt"

	"github.com/katalvlaran/polyhull/hull"
	"github.com/katalvlaran/polyhull/polytope"
)

// ExampleConvexHull_squareFromTwoTriangles hulls two right triangles
// sharing a hypotenuse into the square they tile.
func ExampleConvexHull_squareFromTwoTriangles() {
	lower := polytope.NewPolyhedron(2)
	lower, _ = lower.AddInequality(polytope.NewRow(0, 1, 0))
	lower, _ = lower.AddInequality(polytope.NewRow(0, 0, 1))
	lower, _ = lower.AddInequality(polytope.NewRow(2, -1, -1))

	upper := polytope.NewPolyhedron(2)
	upper, _ = upper.AddInequality(polytope.NewRow(2, -1, 0))
	upper, _ = upper.AddInequality(polytope.NewRow(2, 0, -1))
	upper, _ = upper.AddInequality(polytope.NewRow(-2, 1, 1))

	set, err := polytope.NewSet(2, lower, upper)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	h, err := hull.ConvexHull(set)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("facets=%d\n", h.NumIneq())
	// Output: facets=4
}
