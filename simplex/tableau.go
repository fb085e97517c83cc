// SPDX-License-Identifier: MIT
package simplex

import (
	"math/big"

	"github.com/katalvlaran/polyhull/polytope"
)

// Outcome is the four-way result of an LP solve, exactly the contract
// spec.md §4.1 specifies.
type Outcome int

const (
	// Ok means the LP attained a finite optimum (Num/Den valid, Den>0).
	Ok Outcome = iota
	// Empty means the polyhedron itself has no feasible point.
	Empty
	// Unbounded means the objective is unbounded below on the polyhedron.
	Unbounded
	// Error marks an internal invariant violation (spec.md §7: a
	// programming bug, not a caller input error).
	Error
)

// Tableau is a standard-form LP built from a Polyhedron (or its
// recession cone): every ambient variable x_j is split into
// xp_j - xn_j (xp_j, xn_j >= 0), every inequality row gets a
// non-negative slack, and every row an artificial variable for an
// easy phase-1 start.
type Tableau struct {
	dim      int
	ineqBase int // row index where inequality-derived rows start
	numEq    int
	numIneq  int
	src      *polytope.Polyhedron
}

// FromPolyhedron builds the standard-form tableau for p's own feasible
// region (constants included).
func FromPolyhedron(p *polytope.Polyhedron) *Tableau {
	return &Tableau{dim: p.Dim(), numEq: p.NumEq(), numIneq: p.NumIneq(), src: p}
}

// FromRecessionCone builds the standard-form tableau for p's recession
// cone: every row's constant term is treated as 0, so the feasible
// region is the cone of directions in which p is unbounded.
func FromRecessionCone(p *polytope.Polyhedron) *Tableau {
	cone := polytope.NewPolyhedron(p.Dim())
	for i := 0; i < p.NumEq(); i++ {
		r := p.Eq(i).Clone()
		r[0].SetInt64(0)
		var err error
		cone, err = cone.AddEquality(r)
		if err != nil {
			return &Tableau{dim: p.Dim(), src: polytope.Empty(p.Dim())}
		}
	}
	for i := 0; i < p.NumIneq(); i++ {
		r := p.Ineq(i).Clone()
		r[0].SetInt64(0)
		var err error
		cone, err = cone.AddInequality(r)
		if err != nil {
			return &Tableau{dim: p.Dim(), src: polytope.Empty(p.Dim())}
		}
	}
	return &Tableau{dim: p.Dim(), numEq: cone.NumEq(), numIneq: cone.NumIneq(), src: cone}
}

// standardForm holds the full-tableau simplex working state.
type standardForm struct {
	rows, vars int // vars excludes the RHS column and excludes artificials
	a          [][]*big.Rat
	b          []*big.Rat
	artCols    []int // column index of the artificial for each row
}

func ratOf(i *big.Int) *big.Rat { return new(big.Rat).SetInt(i) }

// build constructs A (rows x vars), b (rows), from t.src's rows, in the
// xp/xn/slack variable order: [xp_1..xp_d, xn_1..xn_d, s_1..s_numIneq].
func (t *Tableau) build() *standardForm {
	d := t.dim
	p := t.src
	vars := 2*d + p.NumIneq()
	rows := p.NumEq() + p.NumIneq()
	sf := &standardForm{rows: rows, vars: vars}
	sf.a = make([][]*big.Rat, rows)
	sf.b = make([]*big.Rat, rows)
	for i := range sf.a {
		sf.a[i] = make([]*big.Rat, vars)
		for j := range sf.a[i] {
			sf.a[i][j] = new(big.Rat)
		}
	}
	ri := 0
	fill := func(row polytope.Row, slackCol int) {
		for j := 0; j < d; j++ {
			cj := ratOf(row[j+1])
			sf.a[ri][j].Set(cj)
			sf.a[ri][d+j].Neg(cj)
		}
		if slackCol >= 0 {
			sf.a[ri][slackCol] = big.NewRat(-1, 1)
		}
		sf.b[ri] = new(big.Rat).Neg(ratOf(row[0]))
		if sf.b[ri].Sign() < 0 {
			for j := 0; j < vars; j++ {
				sf.a[ri][j].Neg(sf.a[ri][j])
			}
			sf.b[ri].Neg(sf.b[ri])
		}
		ri++
	}
	for i := 0; i < p.NumEq(); i++ {
		fill(p.Eq(i), -1)
	}
	t.ineqBase = ri
	for i := 0; i < p.NumIneq(); i++ {
		fill(p.Ineq(i), 2*d+i)
	}
	return sf
}

// solveStandard minimizes cost (length vars) over sf via two-phase
// Bland's-rule simplex, returning the optimal value and a flag.
func solveStandard(sf *standardForm, cost []*big.Rat) (val *big.Rat, feasible, unbounded bool, err error) {
	rows, vars := sf.rows, sf.vars
	if rows == 0 {
		return new(big.Rat), true, false, nil
	}
	totalCols := vars + rows // + artificials
	tab := make([][]*big.Rat, rows+1)
	for i := 0; i < rows; i++ {
		tab[i] = make([]*big.Rat, totalCols+1)
		for j := 0; j < vars; j++ {
			tab[i][j] = new(big.Rat).Set(sf.a[i][j])
		}
		for j := vars; j < totalCols; j++ {
			tab[i][j] = new(big.Rat)
		}
		tab[i][vars+i] = big.NewRat(1, 1)
		tab[i][totalCols] = new(big.Rat).Set(sf.b[i])
	}
	basis := make([]int, rows)
	for i := range basis {
		basis[i] = vars + i
	}
	// Phase 1: minimize sum of artificials.
	phase1Cost := make([]*big.Rat, totalCols)
	for j := 0; j < totalCols; j++ {
		if j >= vars {
			phase1Cost[j] = big.NewRat(1, 1)
		} else {
			phase1Cost[j] = new(big.Rat)
		}
	}
	objRow := make([]*big.Rat, totalCols+1)
	for j := range objRow {
		objRow[j] = new(big.Rat)
	}
	copy(objRow, phase1Cost)
	for i := 0; i < rows; i++ {
		subtractRowMultiple(objRow, tab[i], objRow[vars+i])
	}
	runSimplex(tab, objRow, basis, rows, totalCols)
	if objRow[totalCols].Sign() != 0 {
		return nil, false, false, nil // infeasible
	}
	// Drop artificials stuck in basis with value 0 by pivoting on any
	// non-artificial non-zero entry in their row; if none exists the
	// row is a dependency among the original constraints and is left
	// as-is (value 0, harmless for phase 2).
	for i := 0; i < rows; i++ {
		if basis[i] < vars {
			continue
		}
		for j := 0; j < vars; j++ {
			if tab[i][j].Sign() != 0 {
				pivot(tab, objRow, basis, rows, totalCols, i, j)
				break
			}
		}
	}
	// Phase 2: restrict to original vars + already-stuck artificial
	// columns (locked: excluded from entering-variable search).
	locked := make(map[int]bool)
	for i := 0; i < rows; i++ {
		if basis[i] >= vars {
			locked[basis[i]] = true
		}
	}
	for j := range objRow {
		objRow[j] = new(big.Rat)
	}
	for j := 0; j < vars; j++ {
		objRow[j].Set(cost[j])
	}
	for i := 0; i < rows; i++ {
		if basis[i] < len(cost) {
			subtractRowMultiple(objRow, tab[i], objRow[basis[i]])
		}
	}
	unb := runSimplexLocked(tab, objRow, basis, rows, totalCols, vars, locked)
	if unb {
		return nil, true, true, nil
	}
	v := new(big.Rat).Neg(objRow[totalCols])
	return v, true, false, nil
}

// subtractRowMultiple performs objRow -= k*row in place, where k is
// objRow's current coefficient at row's basic column (used to zero a
// basic column's entry in the objective row after a pivot/initial
// setup).
func subtractRowMultiple(objRow, row []*big.Rat, k *big.Rat) {
	if k.Sign() == 0 {
		return
	}
	k = new(big.Rat).Set(k)
	tmp := new(big.Rat)
	for j := range objRow {
		tmp.Mul(k, row[j])
		objRow[j].Sub(objRow[j], tmp)
	}
}

// runSimplex runs Bland's-rule simplex to optimality (no locked
// columns); used for phase 1, where every column is eligible.
func runSimplex(tab [][]*big.Rat, objRow []*big.Rat, basis []int, rows, totalCols int) {
	runSimplexLocked(tab, objRow, basis, rows, totalCols, totalCols, nil)
}

// runSimplexLocked runs Bland's-rule simplex to optimality, refusing to
// select any column >= colLimit or present in locked as an entering
// variable. Returns true if the LP is unbounded.
func runSimplexLocked(tab [][]*big.Rat, objRow []*big.Rat, basis []int, rows, totalCols, colLimit int, locked map[int]bool) bool {
	for {
		enter := -1
		for j := 0; j < colLimit; j++ {
			if locked[j] {
				continue
			}
			if objRow[j].Sign() < 0 {
				enter = j
				break
			}
		}
		if enter == -1 {
			return false
		}
		leave := -1
		best := new(big.Rat)
		for i := 0; i < rows; i++ {
			if tab[i][enter].Sign() <= 0 {
				continue
			}
			ratio := new(big.Rat).Quo(tab[i][totalCols], tab[i][enter])
			if leave == -1 || ratio.Cmp(best) < 0 || (ratio.Cmp(best) == 0 && basis[i] < basis[leave]) {
				leave = i
				best = ratio
			}
		}
		if leave == -1 {
			return true // unbounded
		}
		pivot(tab, objRow, basis, rows, totalCols, leave, enter)
	}
}

// pivot performs a full tableau pivot on (row, col): normalize the row
// so tab[row][col] == 1, then eliminate col from every other row
// (including the objective row).
func pivot(tab [][]*big.Rat, objRow []*big.Rat, basis []int, rows, totalCols, row, col int) {
	piv := new(big.Rat).Set(tab[row][col])
	for j := 0; j <= totalCols; j++ {
		tab[row][j].Quo(tab[row][j], piv)
	}
	for i := 0; i < rows; i++ {
		if i == row {
			continue
		}
		factor := new(big.Rat).Set(tab[i][col])
		if factor.Sign() == 0 {
			continue
		}
		for j := 0; j <= totalCols; j++ {
			tmp := new(big.Rat).Mul(factor, tab[row][j])
			tab[i][j].Sub(tab[i][j], tmp)
		}
	}
	factor := new(big.Rat).Set(objRow[col])
	if factor.Sign() != 0 {
		for j := 0; j <= totalCols; j++ {
			tmp := new(big.Rat).Mul(factor, tab[row][j])
			objRow[j].Sub(objRow[j], tmp)
		}
	}
	basis[row] = col
}

// Solve minimizes (objective . x) / denom over the tableau's source
// polyhedron, reporting spec.md §4.1's four-outcome contract.
func (t *Tableau) Solve(objective []*big.Int, denom *big.Int) (Outcome, *big.Int, *big.Int) {
	if len(objective) != t.dim {
		return Error, nil, nil
	}
	if t.src.IsEmpty() {
		return Empty, nil, nil
	}
	sf := t.build()
	cost := make([]*big.Rat, sf.vars)
	for j := 0; j < t.dim; j++ {
		cj := ratOf(objective[j])
		cost[j] = new(big.Rat).Set(cj)
		cost[t.dim+j] = new(big.Rat).Neg(cj)
	}
	for j := 2 * t.dim; j < sf.vars; j++ {
		cost[j] = new(big.Rat)
	}
	val, feasible, unbounded, err := solveStandard(sf, cost)
	if err != nil {
		return Error, nil, nil
	}
	if !feasible {
		return Empty, nil, nil
	}
	if unbounded {
		return Unbounded, nil, nil
	}
	// val is exact rational optimum of objective.x; scale by 1/denom.
	val.Quo(val, ratOf(denom))
	num := new(big.Int).Set(val.Num())
	den := new(big.Int).Set(val.Denom())
	if den.Sign() < 0 {
		den.Neg(den)
		num.Neg(num)
	}
	return Ok, num, den
}
