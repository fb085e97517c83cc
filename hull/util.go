// SPDX-License-Identifier: MIT
package hull

import (
	"math/big"

	"github.com/katalvlaran/polyhull/intmat"
	"github.com/katalvlaran/polyhull/polytope"
)

// nonEmptyMembers returns the non-nil, non-empty members of s, in order.
func nonEmptyMembers(s *polytope.Set) []*polytope.Polyhedron {
	out := make([]*polytope.Polyhedron, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		m := s.At(i)
		if m != nil && !m.IsEmpty() {
			out = append(out, m)
		}
	}
	return out
}

// matrixToRows reinterprets each row of m as a polytope.Row.
func matrixToRows(m *intmat.Matrix) []polytope.Row {
	out := make([]polytope.Row, m.Rows())
	for i := range out {
		out[i] = polytope.Row(m.Row(i))
	}
	return out
}

// rowTimesMatrix computes the row vector row (length m.Rows()) times m,
// yielding a row of length m.Cols(): the coordinate-substitution
// companion to intmat.ApplyToRow, which instead treats row as a column.
func rowTimesMatrix(row []*big.Int, m *intmat.Matrix) []*big.Int {
	out := make([]*big.Int, m.Cols())
	tmp := new(big.Int)
	for j := 0; j < m.Cols(); j++ {
		sum := new(big.Int)
		for i := 0; i < m.Rows(); i++ {
			tmp.Mul(row[i], m.At(i, j))
			sum.Add(sum, tmp)
		}
		out[j] = sum
	}
	return out
}

// insertZeroDim returns a copy of r with a zero entry inserted at index pos.
func insertZeroDim(r polytope.Row, pos int) polytope.Row {
	out := make(polytope.Row, len(r)+1)
	copy(out[:pos], r[:pos])
	out[pos] = new(big.Int)
	copy(out[pos+1:], r[pos:])
	return out
}

// cmpRat compares n1/d1 to n2/d2 assuming d1,d2>0: negative, zero, or
// positive as n1/d1 is less than, equal to, or greater than n2/d2.
func cmpRat(n1, d1, n2, d2 *big.Int) int {
	lhs := new(big.Int).Mul(n1, d2)
	rhs := new(big.Int).Mul(n2, d1)
	return lhs.Cmp(rhs)
}
