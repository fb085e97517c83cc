// SPDX-License-Identifier: MIT
package intmat_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyhull/intmat"
)

func row(vals ...int64) []*big.Int {
	out := make([]*big.Int, len(vals))
	for i, v := range vals {
		out[i] = big.NewInt(v)
	}
	return out
}

func TestIdentityInverseIsItself(t *testing.T) {
	id := intmat.Identity(3)
	inv, err := intmat.Inverse(id)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := int64(0)
			if i == j {
				want = 1
			}
			require.Equal(t, want, inv.At(i, j).Int64())
		}
	}
}

func TestDeterminant(t *testing.T) {
	m, err := intmat.FromRows([][]*big.Int{row(2, 0), row(0, 3)})
	require.NoError(t, err)
	d, err := intmat.Determinant(m)
	require.NoError(t, err)
	require.Equal(t, int64(6), d.Int64())
}

func TestRank(t *testing.T) {
	rows := [][]*big.Int{row(1, 0, 0), row(0, 1, 0), row(1, 1, 0)}
	require.Equal(t, 2, intmat.Rank(rows))
}

func TestCompleteUnimodularBasis(t *testing.T) {
	basis, err := intmat.CompleteUnimodularBasis([][]*big.Int{row(1, 0)}, 2)
	require.NoError(t, err)
	require.Equal(t, 2, basis.Rows())
	d, err := intmat.Determinant(basis)
	require.NoError(t, err)
	require.Equal(t, int64(1), new(big.Int).Abs(d).Int64())
}

func TestDropRowsCols(t *testing.T) {
	m, err := intmat.FromRows([][]*big.Int{row(1, 2, 3), row(4, 5, 6), row(7, 8, 9)})
	require.NoError(t, err)
	dropped := m.DropRows(1)
	require.Equal(t, 2, dropped.Rows())
	require.Equal(t, int64(7), dropped.At(1, 0).Int64())

	droppedCols := m.DropCols(0)
	require.Equal(t, 2, droppedCols.Cols())
	require.Equal(t, int64(2), droppedCols.At(0, 0).Int64())
}
