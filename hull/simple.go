// SPDX-License-Identifier: MIT
package hull

import "github.com/katalvlaran/polyhull/polytope"

// SimpleHull computes a conservative, translate-only superset of
// ConvexHull(s): every inequality of every member is tested as a bound
// of the whole union (IsBound) and, if so, tightened and kept; the
// candidate polyhedron is then run through ConvexHull1 to drop
// redundancies. spec.md §4.12.
//
// Duplicate normals across members are accepted and deduplicated by
// ConvexHull1's Finalize step, not filtered here.
func SimpleHull(s *polytope.Set) (*polytope.Polyhedron, error) {
	s = s.Canonicalize()
	d := s.Dim()

	cand := polytope.NewPolyhedron(d)
	var err error
	for i := 0; i < s.Len(); i++ {
		p := s.At(i)
		if p == nil || p.IsEmpty() {
			continue
		}
		for j := 0; j < p.NumIneq(); j++ {
			ok, bound, berr := IsBound(s, p.Ineq(j).Coeffs())
			if berr != nil {
				return nil, berr
			}
			if !ok {
				continue
			}
			cand, err = cand.AddInequality(bound)
			if err != nil {
				return nil, err
			}
		}
	}

	h, err := ConvexHull1(cand.Finalize())
	if err != nil {
		return nil, err
	}
	return h.SetRational(false), nil
}
