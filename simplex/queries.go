// SPDX-License-Identifier: MIT
package simplex

import "math/big"

// DetectEqualities returns the indices (into t.src.Inequalities()) of
// rows that are implicit equalities: c >= 0 holds with equality at
// every point of the polyhedron, i.e. both min(c.x) and max(c.x) equal
// -c0. Used by ConvexHull1 to promote such rows to explicit equalities
// before the redundant-inequality pass.
func (t *Tableau) DetectEqualities() []int {
	var out []int
	p := t.src
	for i := 0; i < p.NumIneq(); i++ {
		row := p.Ineq(i)
		lo, loNum, loDen := t.Solve(coeffsOf(row), big.NewInt(1))
		if lo != Ok {
			continue
		}
		neg := negateAll(coeffsOf(row))
		hi, hiNum, hiDen := t.Solve(neg, big.NewInt(1))
		if hi != Ok {
			continue
		}
		c0 := row.Const()
		// lo = min(c.x); tight iff lo + c0 == 0.
		if !(loNum.Sign() == 0 || addEqualsZero(loNum, loDen, c0)) {
			continue
		}
		// hi represents min(-c.x) = -max(c.x); max(c.x)+c0 == 0 iff
		// -hi + c0 == 0 iff hi == c0 (as exact rationals, den=1 check).
		if hiDen.Cmp(big.NewInt(1)) != 0 {
			continue
		}
		if hiNum.Cmp(c0) != 0 {
			continue
		}
		out = append(out, i)
	}
	return out
}

func addEqualsZero(num, den, c0 *big.Int) bool {
	// num/den + c0 == 0  <=>  num + c0*den == 0
	t := new(big.Int).Mul(c0, den)
	t.Add(t, num)
	return t.Sign() == 0
}

func coeffsOf(r interface{ Coeffs() []*big.Int }) []*big.Int {
	return r.Coeffs()
}

func negateAll(v []*big.Int) []*big.Int {
	out := make([]*big.Int, len(v))
	for i, x := range v {
		out[i] = new(big.Int).Neg(x)
	}
	return out
}

// ConeIsBounded reports whether the tableau's source polyhedron,
// interpreted as a cone (typically via FromRecessionCone), contains no
// direction other than the origin: equivalently, minimizing +-e_j over
// the cone never reports Unbounded, for every coordinate j.
func (t *Tableau) ConeIsBounded() bool {
	if t.src.IsEmpty() {
		return true
	}
	for j := 0; j < t.dim; j++ {
		for _, sign := range []int64{1, -1} {
			obj := make([]*big.Int, t.dim)
			for k := range obj {
				obj[k] = new(big.Int)
			}
			obj[j] = big.NewInt(sign)
			outcome, _, _ := t.Solve(obj, big.NewInt(1))
			if outcome == Unbounded {
				return false
			}
			if outcome == Error {
				return false
			}
		}
	}
	return true
}
