// SPDX-License-Identifier: MIT
package intmat

import "math/big"

// IndependentRows returns a maximal linearly independent subset of rows
// (by coefficient part, ignoring nothing — callers pass whichever
// columns matter) preserving the rows' own values (not the echelon
// form), by running RowEchelon and reporting which original row indices
// ended up contributing a pivot. Used by the driver to collapse a
// Set's accumulated equality rows into the ones spanning the affine
// hull.
func IndependentRows(rows [][]*big.Int) (kept []int, rank int) {
	n := len(rows)
	if n == 0 {
		return nil, 0
	}
	used := make([]bool, n)
	var acc [][]*big.Int
	var idx []int
	for i, r := range rows {
		cand := append(acc, r)
		_, _, pivots := RowEchelon(cand)
		if len(pivots) > len(acc) {
			acc = cand
			idx = append(idx, i)
			used[i] = true
		}
	}
	return idx, len(idx)
}

// Rank returns the rank of rows over the rationals (equivalently over
// the integers, since RowEchelon uses exact unimodular operations).
func Rank(rows [][]*big.Int) int {
	_, _, pivots := RowEchelon(rows)
	return len(pivots)
}

// ApplyToRow left-multiplies the column vector row by m: returns m*row.
// row must have length m.cols.
func ApplyToRow(m *Matrix, row []*big.Int) []*big.Int {
	out := make([]*big.Int, m.rows)
	tmp := new(big.Int)
	for i := 0; i < m.rows; i++ {
		sum := new(big.Int)
		for j := 0; j < m.cols; j++ {
			tmp.Mul(m.data[i][j], row[j])
			sum.Add(sum, tmp)
		}
		out[i] = sum
	}
	return out
}
