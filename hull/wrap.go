// SPDX-License-Identifier: MIT
package hull

import (
	"math/big"

	"github.com/katalvlaran/polyhull/intvec"
	"github.com/katalvlaran/polyhull/lp"
	"github.com/katalvlaran/polyhull/polytope"
)

// WrapFacet derives the unique facet of conv(S) adjacent to facet,
// across ridge, by a single LP. spec.md §4.6.
//
// Construction: rather than performing the literal coordinate change
// that sends facet to {x1=0,x1>=0} and ridge to {x1=0,x2=0,x2>=0}
// (spec.md's framing), this implementation evaluates facet and ridge
// directly as linear functionals over a per-member dilation cone — the
// transformed x1,x2 coordinates spec.md describes ARE facet(x) and
// ridge(x) by construction, so no explicit change of basis is needed.
// Each member P_j contributes a block of variables (a_j, x_j) with
// a_j >= 0 and P_j's own rows homogenized against a_j (a cone over P_j);
// blocks are tied together by the equality sum_j facet_j(a_j,x_j) = 1,
// and the LP minimizes sum_j ridge_j(a_j,x_j).
//
// On lp.Unbounded, the new facet is unbounded in the wrap direction; the
// documented response (spec.md §9 Open Questions) is to return facet
// unchanged. On lp.Ok with minimized value a=num/den, the new facet is
// -num*facet + den*ridge, gcd-normalized: the original's wrap_facet
// negates the minimized numerator before combining
// (isl_int_neg(num, num), then isl_seq_combine(facet, num, facet, den,
// ridge, dim) in original_source/isl_convex_hull.c) because the new
// facet is ridge tilted by -a against facet, not +a.
func WrapFacet(s *polytope.Set, facet, ridge polytope.Row) (polytope.Row, error) {
	members := nonEmptyMembers(s)
	if len(members) == 0 {
		return nil, ErrInternal
	}
	d := s.Dim()
	if facet.Dim() != d || ridge.Dim() != d {
		return nil, ErrDimensionMismatch
	}

	blockWidth := d + 1
	totalDim := blockWidth * len(members)

	evalBlock := func(row polytope.Row, blk int) []*big.Int {
		out := intvec.Zero(totalDim)
		base := blk * blockWidth
		out[base] = new(big.Int).Set(row.Const())
		for i, c := range row.Coeffs() {
			out[base+1+i] = new(big.Int).Set(c)
		}
		return out
	}

	cone := polytope.NewPolyhedron(totalDim)
	var err error
	for bi, p := range members {
		base := bi * blockWidth

		aRow := make(polytope.Row, totalDim+1)
		for i := range aRow {
			aRow[i] = new(big.Int)
		}
		aRow[1+base] = big.NewInt(1)
		cone, err = cone.AddInequality(aRow)
		if err != nil {
			return nil, err
		}

		for i := 0; i < p.NumEq(); i++ {
			full := make(polytope.Row, totalDim+1)
			full[0] = new(big.Int)
			copy(full[1:], evalBlock(p.Eq(i), bi))
			cone, err = cone.AddEquality(full)
			if err != nil {
				return nil, err
			}
		}
		for i := 0; i < p.NumIneq(); i++ {
			full := make(polytope.Row, totalDim+1)
			full[0] = new(big.Int)
			copy(full[1:], evalBlock(p.Ineq(i), bi))
			cone, err = cone.AddInequality(full)
			if err != nil {
				return nil, err
			}
		}
	}

	sumFacet := intvec.Zero(totalDim)
	sumRidge := intvec.Zero(totalDim)
	for bi := range members {
		fb := evalBlock(facet, bi)
		rb := evalBlock(ridge, bi)
		for i := 0; i < totalDim; i++ {
			sumFacet[i].Add(sumFacet[i], fb[i])
			sumRidge[i].Add(sumRidge[i], rb[i])
		}
	}

	tieRow := make(polytope.Row, totalDim+1)
	tieRow[0] = big.NewInt(-1)
	copy(tieRow[1:], sumFacet)
	cone, err = cone.AddEquality(tieRow)
	if err != nil {
		return nil, err
	}

	outcome, num, den := lp.Solve(cone, sumRidge, big.NewInt(1))
	switch outcome {
	case lp.Unbounded:
		return facet, nil
	case lp.Ok:
		negNum := new(big.Int).Neg(num)
		combined := intvec.Combine(negNum, facet, den, ridge)
		return polytope.Row(intvec.GCDNormalize(combined)), nil
	case lp.Empty:
		return nil, ErrInternal
	default:
		return nil, ErrLPFailure
	}
}
