// SPDX-License-Identifier: MIT
package hull

import (
	"math/big"

	"github.com/katalvlaran/polyhull/intmat"
	"github.com/katalvlaran/polyhull/intvec"
	"github.com/katalvlaran/polyhull/lp"
	"github.com/katalvlaran/polyhull/polytope"
)

// IsBound determines whether b·x is bounded below on S and, if so,
// returns the tightened bounding row: coefficients scaled by the
// tightest denominator encountered, with the constant set so the row is
// exactly 0 at the union's minimizer. spec.md §4.5.
//
// A union with no non-empty members is vacuously bounded: IsBound
// returns b with constant 0, gcd-normalized, as a valid (if unused)
// bounding row.
func IsBound(s *polytope.Set, b []*big.Int) (bool, polytope.Row, error) {
	dim := len(b)
	haveMin := false
	minNum, minDen := new(big.Int), big.NewInt(1)

	for i := 0; i < s.Len(); i++ {
		p := s.At(i)
		if p == nil || p.IsEmpty() {
			continue
		}
		if p.Dim() != dim {
			return false, nil, ErrDimensionMismatch
		}
		outcome, num, den := lp.Solve(p, b, big.NewInt(1))
		switch outcome {
		case lp.Unbounded:
			return false, nil, nil
		case lp.Empty:
			continue
		case lp.Ok:
			if !haveMin || cmpRat(num, den, minNum, minDen) < 0 {
				minNum, minDen, haveMin = num, den, true
			}
		default:
			return false, nil, ErrLPFailure
		}
	}

	row := make(polytope.Row, dim+1)
	if !haveMin {
		row[0] = new(big.Int)
		for i, c := range b {
			row[i+1] = new(big.Int).Set(c)
		}
		return true, polytope.Row(intvec.GCDNormalize(row)), nil
	}

	row[0] = new(big.Int).Neg(minNum)
	for i, c := range b {
		row[i+1] = new(big.Int).Mul(c, minDen)
	}
	return true, polytope.Row(intvec.GCDNormalize(row)), nil
}

// IndependentBounds finds a maximal set of linearly independent bounding
// directions of S, ordered by leading (pivot) column, tightened via
// IsBound. spec.md §4.4. The result has between 0 and s.Dim() rows.
func IndependentBounds(s *polytope.Set) (*intmat.Matrix, error) {
	d := s.Dim()
	var rows []polytope.Row
	var pivots []int

	tryAdd := func(coeffs []*big.Int) error {
		scratch := intvec.Clone(coeffs)
		for i, accepted := range rows {
			pc := pivots[i]
			if scratch[pc].Sign() == 0 {
				continue
			}
			scratch = intvec.GCDNormalize(intvec.EliminateAgainst(accepted.Coeffs(), scratch, pc))
		}
		if intvec.IsZero(scratch) {
			return nil
		}
		ok, row, err := IsBound(s, scratch)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		pivot := intvec.FirstNonZero(row.Coeffs())
		if pivot == -1 {
			return nil
		}
		idx := 0
		for idx < len(pivots) && pivots[idx] < pivot {
			idx++
		}
		rows = append(rows, nil)
		copy(rows[idx+1:], rows[idx:])
		rows[idx] = row

		pivots = append(pivots, 0)
		copy(pivots[idx+1:], pivots[idx:])
		pivots[idx] = pivot
		return nil
	}

	for m := 0; m < s.Len() && len(rows) < d; m++ {
		p := s.At(m)
		if p == nil || p.IsEmpty() {
			continue
		}
		for i := 0; i < p.NumEq() && len(rows) < d; i++ {
			if err := tryAdd(p.Eq(i).Coeffs()); err != nil {
				return nil, err
			}
		}
		for i := 0; i < p.NumIneq() && len(rows) < d; i++ {
			if err := tryAdd(p.Ineq(i).Coeffs()); err != nil {
				return nil, err
			}
		}
	}

	matRows := make([][]*big.Int, len(rows))
	for i, r := range rows {
		matRows[i] = r
	}
	return intmat.FromRows(matRows)
}
