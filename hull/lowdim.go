// SPDX-License-Identifier: MIT
package hull

import (
	"math/big"

	"github.com/katalvlaran/polyhull/polytope"
)

// convexHull0D handles the trivial ambient-dimension-0 case: S is either
// entirely empty or it is the single point of the 0-dimensional space.
// spec.md §4.10.
func convexHull0D(s *polytope.Set) (*polytope.Polyhedron, error) {
	if s.IsEmpty() {
		return polytope.Empty(0), nil
	}
	return polytope.Universe(0), nil
}

// memberBounds1D reduces a 1-D polyhedron's own constraints (intersected
// within that single member) to at most one lower and one upper bound.
func memberBounds1D(p *polytope.Polyhedron) (loNum, loDen *big.Int, hasLo bool, hiNum, hiDen *big.Int, hasHi bool) {
	consider := func(c0, c1 *big.Int) {
		switch c1.Sign() {
		case 1:
			n, d := new(big.Int).Neg(c0), new(big.Int).Set(c1)
			if !hasLo || cmpRat(n, d, loNum, loDen) > 0 {
				loNum, loDen, hasLo = n, d, true
			}
		case -1:
			n, d := new(big.Int).Set(c0), new(big.Int).Neg(c1)
			if !hasHi || cmpRat(n, d, hiNum, hiDen) < 0 {
				hiNum, hiDen, hasHi = n, d, true
			}
		}
	}
	for i := 0; i < p.NumEq(); i++ {
		r := p.Eq(i)
		if r[1].Sign() == 0 {
			continue
		}
		consider(r[0], r[1])
		consider(new(big.Int).Neg(r[0]), new(big.Int).Neg(r[1]))
	}
	for i := 0; i < p.NumIneq(); i++ {
		r := p.Ineq(i)
		consider(r[0], r[1])
	}
	return
}

// convexHull1D merges the running lower/upper bound across every member
// of S, tightened by exact rational comparison. A member lacking a
// lower (upper) bound erases the running lower (upper): the union then
// extends unboundedly in that direction. spec.md §4.10, §9.
func convexHull1D(s *polytope.Set) (*polytope.Polyhedron, error) {
	first := true
	var haveLower, haveUpper bool
	var loNum, loDen, hiNum, hiDen *big.Int

	for i := 0; i < s.Len(); i++ {
		p := s.At(i)
		if p == nil || p.IsEmpty() {
			continue
		}
		mLoNum, mLoDen, mHasLo, mHiNum, mHiDen, mHasHi := memberBounds1D(p)

		if first {
			loNum, loDen, haveLower = mLoNum, mLoDen, mHasLo
			hiNum, hiDen, haveUpper = mHiNum, mHiDen, mHasHi
			first = false
			continue
		}
		if !mHasLo {
			haveLower = false
		} else if haveLower && cmpRat(mLoNum, mLoDen, loNum, loDen) < 0 {
			loNum, loDen = mLoNum, mLoDen
		}
		if !mHasHi {
			haveUpper = false
		} else if haveUpper && cmpRat(mHiNum, mHiDen, hiNum, hiDen) > 0 {
			hiNum, hiDen = mHiNum, mHiDen
		}
	}

	if first {
		return polytope.Empty(1), nil
	}

	out := polytope.NewPolyhedron(1)
	var err error
	if haveLower {
		out, err = out.AddInequality(polytope.Row{new(big.Int).Neg(loNum), loDen})
		if err != nil {
			return nil, err
		}
	}
	if haveUpper {
		out, err = out.AddInequality(polytope.Row{hiNum, new(big.Int).Neg(hiDen)})
		if err != nil {
			return nil, err
		}
	}
	return out.Finalize(), nil
}

// fourierMotzkinPairHull handles the unbounded, dimension>=2 case by
// literal pairwise Fourier-Motzkin elimination over a Minkowski-sum
// encoding of the union (unboundedElimHull/convexHullPair), exactly as
// spec.md §4.10 and the original isl convex_hull_pair/
// uset_convex_hull_elim specify. Unlike a global bounded/free-subspace
// split, this handles members that disagree on which directions are
// free: each member's own rows are homogenized into its own block of
// the construction, so a direction bounded in one member but free in
// another is still faithfully represented.
func fourierMotzkinPairHull(s *polytope.Set) (*polytope.Polyhedron, error) {
	return unboundedElimHull(s)
}
