// SPDX-License-Identifier: MIT
package hull

import (
	"github.com/katalvlaran/polyhull/lp"
	"github.com/katalvlaran/polyhull/polytope"
)

// ConvexHull1 removes redundant inequalities from p and promotes its
// implicit equalities to explicit ones. spec.md §4.3.
//
// Fast paths: p already flagged NO_REDUNDANT, or with at most one
// inequality, is returned unchanged; an empty p is returned unchanged.
//
// Otherwise: lp.ImplicitEqualities finds the tableau's implicit
// equalities and those rows are promoted; every remaining inequality is
// tested with Redundant against the polyhedron formed by the promoted
// equalities and the other surviving inequalities, confirmed redundant
// rows are dropped permanently (a standard sequential redundancy sweep).
func ConvexHull1(p *polytope.Polyhedron) (*polytope.Polyhedron, error) {
	if p == nil {
		return nil, ErrInternal
	}
	if p.IsEmpty() {
		return p, nil
	}
	if p.Flags().Has(polytope.FlagNoRedundant) || p.NumIneq() <= 1 {
		return p, nil
	}

	implicit := make(map[int]bool)
	for _, i := range lp.ImplicitEqualities(p) {
		implicit[i] = true
	}

	eq := append([]polytope.Row{}, p.Equalities()...)
	var remaining []polytope.Row
	for i := 0; i < p.NumIneq(); i++ {
		row := p.Ineq(i)
		if implicit[i] {
			eq = append(eq, row)
		} else {
			remaining = append(remaining, row)
		}
	}

	var kept []polytope.Row
	for i, row := range remaining {
		others := make([]polytope.Row, 0, len(kept)+len(remaining)-i-1)
		others = append(others, kept...)
		others = append(others, remaining[i+1:]...)
		cand := p.WithRows(eq, others)
		redundant, err := Redundant(cand, row)
		if err != nil {
			return nil, err
		}
		if !redundant {
			kept = append(kept, row)
		}
	}

	out := p.WithRows(eq, kept).Finalize().MarkNoRedundant()
	return out, nil
}
