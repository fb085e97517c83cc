// SPDX-License-Identifier: MIT
package hull

import (
	"math/big"

	"github.com/katalvlaran/polyhull/intmat"
	"github.com/katalvlaran/polyhull/internal/invariant"
	"github.com/katalvlaran/polyhull/intvec"
	"github.com/katalvlaran/polyhull/lp"
	"github.com/katalvlaran/polyhull/polytope"
)

// InitialFacetConstraint combines the d linearly independent bounding
// directions D into a single true facet of conv(S). spec.md §4.7.
//
// Simplification from the literal spec: the original procedure slices S
// by D0=0, computes the slice's affine hull to decide whether D0 is
// already a facet, and otherwise builds an explicit change of basis to
// project the remaining rows into the face before wrapping. Because this
// module's WrapFacet (see wrap.go) evaluates facet and ridge directly as
// functionals rather than requiring pre-transformed coordinates, that
// projection step is unnecessary: repeatedly wrapping D0 against the
// last remaining direction and shrinking the list converges to the same
// fixed point (D0 is a facet exactly when no direction remains to wrap
// against). This is recorded as a deliberate simplification in
// DESIGN.md.
func InitialFacetConstraint(s *polytope.Set, d *intmat.Matrix) (polytope.Row, error) {
	rows := matrixToRows(d)
	invariant.Check(len(rows) >= 1, "initial_facet_constraint requires at least one bounding direction")
	for len(rows) > 1 {
		d0 := rows[0]
		last := rows[len(rows)-1]
		newFacet, err := WrapFacet(s, d0, last)
		if err != nil {
			return nil, err
		}
		rest := append([]polytope.Row{newFacet}, rows[1:len(rows)-1]...)
		rows = rest
	}
	return rows[0], nil
}

// ComputeFacet changes coordinates so facet inequality c becomes x1>=0,
// slices S at x1=0, drops that now-trivial dimension, recursively hulls
// the (d-1)-dimensional projection to find the ridges of c, and embeds
// each ridge back into the ambient frame. spec.md §4.9.
func ComputeFacet(s *polytope.Set, c polytope.Row) (*polytope.Polyhedron, error) {
	d := s.Dim()
	if c.Dim() != d {
		return nil, ErrDimensionMismatch
	}

	identity0 := make([]*big.Int, d+1)
	identity0[0] = big.NewInt(1)
	for i := 1; i <= d; i++ {
		identity0[i] = new(big.Int)
	}
	basis, err := intmat.CompleteUnimodularBasis([][]*big.Int{identity0, c}, d+1)
	if err != nil {
		return nil, err
	}
	m, err := intmat.Inverse(basis)
	if err != nil {
		return nil, err
	}

	x1zero := make(polytope.Row, d+1)
	for i := range x1zero {
		x1zero[i] = new(big.Int)
	}
	x1zero[1] = big.NewInt(1)

	members := make([]*polytope.Polyhedron, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		p := s.At(i)
		if p == nil || p.IsEmpty() {
			continue
		}
		tp, terr := p.Preimage(m)
		if terr != nil {
			return nil, terr
		}
		sliced, aerr := tp.AddEquality(x1zero)
		if aerr != nil {
			return nil, aerr
		}
		if outcome, _, _ := lp.Solve(sliced, intvec.Zero(d), big.NewInt(1)); outcome == lp.Empty {
			continue
		}
		members = append(members, sliced.RemoveDims(1))
	}

	sliceSet, err := polytope.NewSet(d-1, members...)
	if err != nil {
		return nil, err
	}
	ridgeHull, err := ConvexHull(sliceSet)
	if err != nil {
		return nil, err
	}

	out := polytope.NewPolyhedron(d)
	for i := 0; i < ridgeHull.NumEq(); i++ {
		if ridgeHull.Eq(i).IsZero() {
			continue
		}
		out, err = out.AddEquality(reembedFacetRow(ridgeHull.Eq(i), basis))
		if err != nil {
			return nil, err
		}
	}
	for i := 0; i < ridgeHull.NumIneq(); i++ {
		out, err = out.AddInequality(reembedFacetRow(ridgeHull.Ineq(i), basis))
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// reembedFacetRow widens a (d-1)-dimensional row back to d dimensions
// (reinserting the dropped x1 coordinate as zero) and maps it back to
// the ambient frame via basis (the inverse of the transform ComputeFacet
// used to build the projected set).
func reembedFacetRow(r polytope.Row, basis *intmat.Matrix) polytope.Row {
	widened := insertZeroDim(r, 1)
	return polytope.Row(rowTimesMatrix(widened, basis))
}
