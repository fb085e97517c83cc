// SPDX-License-Identifier: MIT
package hull

import (
	"github.com/katalvlaran/polyhull/intvec"
	"github.com/katalvlaran/polyhull/lp"
	"github.com/katalvlaran/polyhull/polytope"
)

// ConvexHull computes the exact rational convex hull of the union S.
// spec.md §4.11.
//
// 1. Canonicalize drops logically-empty members.
// 2. dim=0 is handled directly.
// 3. A wholly-empty S returns Empty(dim).
// 4. |S|=1 reduces to ConvexHull1.
// 5. Equalities shared by the affine hull of every member are factored
//    out (RemoveEqualities), the hull computed in the reduced space, and
//    re-embedded.
// 6. dim=1 uses convexHull1D; an unbounded union uses
//    fourierMotzkinPairHull.
// 7. Otherwise: IndependentBounds, InitialFacetConstraint, Extend.
//
// The result always has FlagRational cleared (spec.md §4.11 step 7: the
// hull's coordinates are integer, regardless of whether inputs were
// flagged rational).
func ConvexHull(s *polytope.Set, opts ...Option) (*polytope.Polyhedron, error) {
	if s == nil {
		return nil, ErrInternal
	}
	s = s.Canonicalize()
	d := s.Dim()

	if d == 0 {
		return convexHull0D(s)
	}
	if s.IsEmpty() {
		return polytope.Empty(d), nil
	}
	if s.Len() == 1 {
		h, err := ConvexHull1(s.At(0))
		if err != nil {
			return nil, err
		}
		return h.SetRational(false), nil
	}

	if eqs := collectAffineHullEqualities(s); len(eqs) > 0 {
		probe := polytope.NewPolyhedron(d)
		var err error
		for _, r := range eqs {
			probe, err = probe.AddEquality(r)
			if err != nil {
				return nil, err
			}
		}
		reduced, T, Tinv, rerr := probe.RemoveEqualities()
		if rerr != nil {
			return nil, rerr
		}
		if reduced.Dim() < d {
			members := make([]*polytope.Polyhedron, 0, s.Len())
			for i := 0; i < s.Len(); i++ {
				m := s.At(i)
				if m == nil || m.IsEmpty() {
					continue
				}
				tm, terr := m.Preimage(T)
				if terr != nil {
					return nil, terr
				}
				members = append(members, tm)
			}
			reducedSet, nerr := polytope.NewSet(reduced.Dim(), members...)
			if nerr != nil {
				return nil, nerr
			}
			sub, herr := ConvexHull(reducedSet, opts...)
			if herr != nil {
				return nil, herr
			}

			out := polytope.NewPolyhedron(d)
			for i := 0; i < sub.NumEq(); i++ {
				out, err = out.AddEquality(polytope.Row(rowTimesMatrix(sub.Eq(i), Tinv)))
				if err != nil {
					return nil, err
				}
			}
			for i := 0; i < sub.NumIneq(); i++ {
				out, err = out.AddInequality(polytope.Row(rowTimesMatrix(sub.Ineq(i), Tinv)))
				if err != nil {
					return nil, err
				}
			}
			for _, r := range eqs {
				out, err = out.AddEquality(r)
				if err != nil {
					return nil, err
				}
			}
			return out.Finalize().SetRational(false), nil
		}
	}

	if d == 1 {
		h, err := convexHull1D(s)
		if err != nil {
			return nil, err
		}
		return h.SetRational(false), nil
	}

	if !setIsBounded(s) {
		h, err := fourierMotzkinPairHull(s)
		if err != nil {
			return nil, err
		}
		return h.SetRational(false), nil
	}

	bounds, err := IndependentBounds(s)
	if err != nil {
		return nil, err
	}
	if bounds.Rows() < d {
		h, err := fourierMotzkinPairHull(s)
		if err != nil {
			return nil, err
		}
		return h.SetRational(false), nil
	}

	f0, err := InitialFacetConstraint(s, bounds)
	if err != nil {
		return nil, err
	}
	h, err := Extend(s, f0, opts...)
	if err != nil {
		return nil, err
	}
	return h.SetRational(false), nil
}

// setIsBounded reports whether every non-empty member of s has a
// trivial recession cone.
func setIsBounded(s *polytope.Set) bool {
	for i := 0; i < s.Len(); i++ {
		p := s.At(i)
		if p == nil || p.IsEmpty() {
			continue
		}
		if !lp.IsBoundedCone(p) {
			return false
		}
	}
	return true
}

// collectAffineHullEqualities returns the equality rows (explicit or
// implicit) common, up to sign and scale, to every non-empty member of
// s. Each returned row holds on the union's affine hull; an equality of
// that hull which is not, up to sign and scale, a row of every member
// is not found.
func collectAffineHullEqualities(s *polytope.Set) []polytope.Row {
	var candidates []polytope.Row
	first := true
	for i := 0; i < s.Len(); i++ {
		p := s.At(i)
		if p == nil || p.IsEmpty() {
			continue
		}
		rows := memberEqualityRows(p)
		if first {
			candidates = rows
			first = false
			continue
		}
		var kept []polytope.Row
		for _, c := range candidates {
			for _, r := range rows {
				if rowsParallelSameNormal(c, r) {
					kept = append(kept, c)
					break
				}
			}
		}
		candidates = kept
	}
	return candidates
}

func memberEqualityRows(p *polytope.Polyhedron) []polytope.Row {
	out := append([]polytope.Row{}, p.Equalities()...)
	for _, i := range lp.ImplicitEqualities(p) {
		out = append(out, p.Ineq(i))
	}
	return out
}

func rowsParallelSameNormal(a, b polytope.Row) bool {
	na := intvec.GCDNormalize(a)
	nb := intvec.GCDNormalize(b)
	return intvec.Equal(na, nb) || intvec.Equal(na, intvec.Negate(nb))
}
