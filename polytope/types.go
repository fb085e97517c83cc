// SPDX-License-Identifier: MIT
package polytope

import (
	"fmt"
	"math/big"
	"strings"
)

// Flag is a bitmask of boolean properties tracked on a Polyhedron.
type Flag uint8

const (
	// FlagEmpty marks a Polyhedron as the empty set. Its eq/ineq rows
	// are meaningless once this flag is set.
	FlagEmpty Flag = 1 << iota

	// FlagRational marks a Polyhedron as having no integrality
	// constraint on its points (pure rational polyhedron). Hull output
	// clears this flag: hull coordinates are always taken over the
	// integers of the ambient space, per spec §4.11 step 7.
	FlagRational

	// FlagNoRedundant marks that the inequality list is already known
	// to contain no redundant row. ConvexHull1 short-circuits when set.
	FlagNoRedundant

	// FlagNoImplicit marks that no inequality is an implicit equality.
	FlagNoImplicit
)

// Has reports whether all bits of want are set in f.
func (f Flag) Has(want Flag) bool { return f&want == want }

// Row is an immutable coefficient vector of length dim+1: Row[0] is the
// constant term, Row[1:] are the variable coefficients. Rows are shared
// (copy-on-write) between Polyhedron values produced from one another;
// call Clone before mutating in place.
type Row []*big.Int

// NewRow builds a Row from plain int64 coefficients, constant first.
// Convenience constructor for tests and small fixed-size callers.
func NewRow(coeffs ...int64) Row {
	r := make(Row, len(coeffs))
	for i, c := range coeffs {
		r[i] = big.NewInt(c)
	}
	return r
}

// Clone returns a private, independently mutable copy of r.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for i, v := range r {
		out[i] = new(big.Int).Set(v)
	}
	return out
}

// Dim returns the number of ambient variables this row refers to
// (its length minus the constant column).
func (r Row) Dim() int { return len(r) - 1 }

// Const returns the constant term (index 0).
func (r Row) Const() *big.Int { return r[0] }

// Coeffs returns the variable-coefficient slice (index 1..dim), shared
// with r; callers must not mutate the result.
func (r Row) Coeffs() []*big.Int { return r[1:] }

// Equal reports whether r and o are identical coefficient-wise.
func (r Row) Equal(o Row) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if r[i].Cmp(o[i]) != 0 {
			return false
		}
	}
	return true
}

// IsZero reports whether every coefficient, including the constant, is 0.
func (r Row) IsZero() bool {
	for _, v := range r {
		if v.Sign() != 0 {
			return false
		}
	}
	return true
}

// String renders r as "c0 + c1*x1 + c2*x2 + ...", skipping zero terms.
func (r Row) String() string {
	if len(r) == 0 {
		return "<empty row>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s", r[0].String())
	for i, c := range r.Coeffs() {
		if c.Sign() == 0 {
			continue
		}
		fmt.Fprintf(&b, " + %s*x%d", c.String(), i+1)
	}
	return b.String()
}

// Polyhedron is a rational polyhedron over Dim ambient variables,
// described by a conjunction of equalities (Eq) and inequalities (Ineq).
type Polyhedron struct {
	dim   int
	eq    []Row
	ineq  []Row
	flags Flag
}

// Dim returns the ambient dimension.
func (p *Polyhedron) Dim() int { return p.dim }

// NumEq returns the number of equality rows.
func (p *Polyhedron) NumEq() int { return len(p.eq) }

// NumIneq returns the number of inequality rows.
func (p *Polyhedron) NumIneq() int { return len(p.ineq) }

// Eq returns the i-th equality row (shared; do not mutate).
func (p *Polyhedron) Eq(i int) Row { return p.eq[i] }

// Ineq returns the i-th inequality row (shared; do not mutate).
func (p *Polyhedron) Ineq(i int) Row { return p.ineq[i] }

// Equalities returns a shared view of all equality rows.
func (p *Polyhedron) Equalities() []Row { return p.eq }

// Inequalities returns a shared view of all inequality rows.
func (p *Polyhedron) Inequalities() []Row { return p.ineq }

// Flags returns the current flag bitmask.
func (p *Polyhedron) Flags() Flag { return p.flags }

// IsEmpty reports whether p is flagged empty.
func (p *Polyhedron) IsEmpty() bool { return p.flags.Has(FlagEmpty) }

// IsRational reports whether p carries no integrality constraint.
func (p *Polyhedron) IsRational() bool { return p.flags.Has(FlagRational) }

// String renders p as a human-readable conjunction, for debugging and
// test failure messages.
func (p *Polyhedron) String() string {
	if p == nil {
		return "<nil polyhedron>"
	}
	if p.IsEmpty() {
		return fmt.Sprintf("Polyhedron(dim=%d, EMPTY)", p.dim)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Polyhedron(dim=%d)", p.dim)
	for _, e := range p.eq {
		fmt.Fprintf(&b, "\n  %s = 0", e)
	}
	for _, ineq := range p.ineq {
		fmt.Fprintf(&b, "\n  %s >= 0", ineq)
	}
	return b.String()
}

// Set is an ordered union of polyhedra, all sharing Dim. Empty members
// may appear; they are logically ignored by every hull operation.
type Set struct {
	dim     int
	members []*Polyhedron
}

// Dim returns the ambient dimension shared by every member.
func (s *Set) Dim() int { return s.dim }

// Len returns the number of members (including empty ones).
func (s *Set) Len() int { return len(s.members) }

// At returns the i-th member.
func (s *Set) At(i int) *Polyhedron { return s.members[i] }

// Members returns a shared view of the member slice.
func (s *Set) Members() []*Polyhedron { return s.members }
