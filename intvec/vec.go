// SPDX-License-Identifier: MIT
package intvec

import "math/big"

// Clone returns an independent copy of v.
func Clone(v []*big.Int) []*big.Int {
	out := make([]*big.Int, len(v))
	for i, x := range v {
		out[i] = new(big.Int).Set(x)
	}
	return out
}

// Zero returns a length-n vector of zero.
func Zero(n int) []*big.Int {
	out := make([]*big.Int, n)
	for i := range out {
		out[i] = new(big.Int)
	}
	return out
}

// Dot returns a . b. a and b must have equal length.
func Dot(a, b []*big.Int) *big.Int {
	sum := new(big.Int)
	tmp := new(big.Int)
	for i := range a {
		tmp.Mul(a[i], b[i])
		sum.Add(sum, tmp)
	}
	return sum
}

// Scale returns k*v, element-wise.
func Scale(v []*big.Int, k *big.Int) []*big.Int {
	out := make([]*big.Int, len(v))
	for i, x := range v {
		out[i] = new(big.Int).Mul(x, k)
	}
	return out
}

// Negate returns -v.
func Negate(v []*big.Int) []*big.Int {
	return Scale(v, big.NewInt(-1))
}

// Combine returns ca*a + cb*b, the integer linear combination used by
// wrap_facet's "num*F + den*R" facet assembly. a and b must have equal
// length.
func Combine(ca *big.Int, a []*big.Int, cb *big.Int, b []*big.Int) []*big.Int {
	out := make([]*big.Int, len(a))
	t1, t2 := new(big.Int), new(big.Int)
	for i := range a {
		t1.Mul(ca, a[i])
		t2.Mul(cb, b[i])
		out[i] = new(big.Int).Add(t1, t2)
	}
	return out
}

// FirstNonZero returns the index of the first non-zero entry of v, or
// -1 if v is the zero vector.
func FirstNonZero(v []*big.Int) int {
	for i, x := range v {
		if x.Sign() != 0 {
			return i
		}
	}
	return -1
}

// IsZero reports whether every entry of v is zero.
func IsZero(v []*big.Int) bool {
	return FirstNonZero(v) == -1
}

// EliminateAgainst returns row with column col eliminated using pivot,
// via exact cross-multiplication:
//
//	result = pivot[col]*row - row[col]*pivot
//
// so that result[col] == 0 without introducing a fraction. pivot[col]
// must be non-zero.
func EliminateAgainst(pivot, row []*big.Int, col int) []*big.Int {
	pc := pivot[col]
	rc := row[col]
	out := make([]*big.Int, len(row))
	t1, t2 := new(big.Int), new(big.Int)
	for i := range row {
		t1.Mul(pc, row[i])
		t2.Mul(rc, pivot[i])
		out[i] = new(big.Int).Sub(t1, t2)
	}
	return out
}

// GCDNormalize divides v by the gcd of its (non-zero) entries; an
// all-zero vector is returned unchanged. The sign of the result is
// chosen so the first non-zero entry stays the same sign as in v.
func GCDNormalize(v []*big.Int) []*big.Int {
	g := new(big.Int)
	for _, x := range v {
		if x.Sign() == 0 {
			continue
		}
		if g.Sign() == 0 {
			g.Abs(x)
		} else {
			g.GCD(nil, nil, g, new(big.Int).Abs(x))
		}
	}
	if g.Sign() == 0 || g.Cmp(big.NewInt(1)) == 0 {
		return Clone(v)
	}
	out := make([]*big.Int, len(v))
	for i, x := range v {
		out[i] = new(big.Int).Div(x, g)
	}
	return out
}

// SignAt returns the sign (-1, 0, +1) of v[i].
func SignAt(v []*big.Int, i int) int { return v[i].Sign() }

// Equal reports whether a and b are coefficient-wise identical.
func Equal(a, b []*big.Int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}
	return true
}
