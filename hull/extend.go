// SPDX-License-Identifier: MIT
package hull

import (
	"github.com/katalvlaran/polyhull/intvec"
	"github.com/katalvlaran/polyhull/polytope"
)

// Extend grows the hull from a single known facet f0 into the complete
// set of conv(S)'s facets. spec.md §4.8.
//
// H starts as [f0] and is walked index-by-index, including rows
// appended during the walk (spec.md §9's "mutable extension" note): for
// each facet already in H, ComputeFacet finds its ridges, and each ridge
// is wrapped back out to a candidate facet; a candidate is appended only
// if it is not already present (gcd-normalized row equality).
func Extend(s *polytope.Set, f0 polytope.Row, opts ...Option) (*polytope.Polyhedron, error) {
	cfg := resolveOptions(opts)
	d := s.Dim()
	H := []polytope.Row{polytope.Row(intvec.GCDNormalize(f0))}

	for i := 0; i < len(H); i++ {
		if cfg.maxFacets > 0 && len(H) > cfg.maxFacets {
			return nil, ErrInternal
		}
		fi := H[i]
		facetPoly, err := ComputeFacet(s, fi)
		if err != nil {
			return nil, err
		}
		for j := 0; j < facetPoly.NumIneq(); j++ {
			ridge := facetPoly.Ineq(j)
			cand, werr := WrapFacet(s, fi, ridge)
			if werr != nil {
				return nil, werr
			}
			cand = polytope.Row(intvec.GCDNormalize(cand))

			novel := true
			for _, existing := range H {
				if existing.Equal(cand) {
					novel = false
					break
				}
			}
			if novel {
				H = append(H, cand)
			}
		}
	}

	out := polytope.NewPolyhedron(d)
	var err error
	for _, row := range H {
		out, err = out.AddInequality(row)
		if err != nil {
			return nil, err
		}
	}
	return out.Finalize(), nil
}
