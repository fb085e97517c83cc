// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing constructors and
// read-only getters. No algorithms live here; the convex-hull machinery
// that consumes these types lives in package hull.

package polytope

import "math/big"

// Option configures a Polyhedron at construction time, in the style of
// core.GraphOption: a small set of functional setters rather than a
// config struct threaded through every call.
type Option func(*Polyhedron)

// WithRational marks a newly-constructed Polyhedron as carrying no
// integrality constraint (see FlagRational).
func WithRational() Option {
	return func(p *Polyhedron) { p.flags |= FlagRational }
}

// NewPolyhedron allocates an empty-of-constraints (i.e. universe)
// Polyhedron of the given ambient dimension. dim must be >= 0.
func NewPolyhedron(dim int, opts ...Option) *Polyhedron {
	p := &Polyhedron{dim: dim}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Universe returns the universal polyhedron of the given dimension
// (no constraints at all: every point is in it).
func Universe(dim int) *Polyhedron {
	return NewPolyhedron(dim)
}

// Empty returns the empty polyhedron of the given dimension.
func Empty(dim int) *Polyhedron {
	p := NewPolyhedron(dim)
	p.flags |= FlagEmpty
	return p
}

// AddEquality appends an equality row (cloned) to p, returning a new
// Polyhedron; p itself is left untouched (copy-on-write at the
// Polyhedron granularity: the row slices are reused, only the header
// and the appended row are fresh).
func (p *Polyhedron) AddEquality(r Row) (*Polyhedron, error) {
	if len(r) != p.dim+1 {
		return nil, ErrDimensionMismatch
	}
	out := p.shallowCopy()
	out.eq = append(append([]Row{}, p.eq...), r.Clone())
	out.flags &^= FlagNoImplicit
	return out, nil
}

// AddInequality appends an inequality row (cloned) to p, returning a
// new Polyhedron.
func (p *Polyhedron) AddInequality(r Row) (*Polyhedron, error) {
	if len(r) != p.dim+1 {
		return nil, ErrDimensionMismatch
	}
	out := p.shallowCopy()
	out.ineq = append(append([]Row{}, p.ineq...), r.Clone())
	out.flags &^= (FlagNoRedundant | FlagNoImplicit)
	return out, nil
}

// shallowCopy returns a new Polyhedron header sharing p's row slices;
// callers that append must first copy the slice header (not the rows).
func (p *Polyhedron) shallowCopy() *Polyhedron {
	return &Polyhedron{
		dim:   p.dim,
		eq:    p.eq,
		ineq:  p.ineq,
		flags: p.flags,
	}
}

// Clone returns a deep, independently mutable copy of p.
func (p *Polyhedron) Clone() *Polyhedron {
	out := &Polyhedron{dim: p.dim, flags: p.flags}
	out.eq = make([]Row, len(p.eq))
	for i, r := range p.eq {
		out.eq[i] = r.Clone()
	}
	out.ineq = make([]Row, len(p.ineq))
	for i, r := range p.ineq {
		out.ineq[i] = r.Clone()
	}
	return out
}

// SetRational returns a copy of p with FlagRational set or cleared.
func (p *Polyhedron) SetRational(rational bool) *Polyhedron {
	out := p.shallowCopy()
	if rational {
		out.flags |= FlagRational
	} else {
		out.flags &^= FlagRational
	}
	return out
}

// MarkNoRedundant returns a copy of p flagged NO_REDUNDANT/NO_IMPLICIT,
// for use once a caller (typically hull.ConvexHull1) has established the
// invariant externally.
func (p *Polyhedron) MarkNoRedundant() *Polyhedron {
	out := p.shallowCopy()
	out.flags |= FlagNoRedundant | FlagNoImplicit
	return out
}

// WithRows rebuilds p with an entirely new equality/inequality row set,
// clearing NO_REDUNDANT/NO_IMPLICIT (the caller is responsible for
// re-asserting them via MarkNoRedundant if still true).
func (p *Polyhedron) WithRows(eq, ineq []Row) *Polyhedron {
	return &Polyhedron{dim: p.dim, eq: eq, ineq: ineq, flags: p.flags &^ (FlagNoRedundant | FlagNoImplicit)}
}

// Finalize gcd-normalizes every row and drops exact duplicate rows
// (within Eq and within Ineq separately), per spec §4.8's "simplify and
// finalize" step.
func (p *Polyhedron) Finalize() *Polyhedron {
	out := p.shallowCopy()
	out.eq = normalizeRows(p.eq)
	out.ineq = normalizeRows(p.ineq)
	return out
}

func normalizeRows(rows []Row) []Row {
	seen := make([]Row, 0, len(rows))
	for _, r := range rows {
		n := gcdNormalize(r)
		dup := false
		for _, s := range seen {
			if n.Equal(s) {
				dup = true
				break
			}
		}
		if !dup {
			seen = append(seen, n)
		}
	}
	return seen
}

// gcdNormalize divides r by the gcd of its entries, preserving sign so
// that the leading non-zero coefficient (after the constant) keeps its
// sign; an all-zero row is returned unchanged.
func gcdNormalize(r Row) Row {
	g := new(big.Int)
	for _, v := range r {
		if v.Sign() == 0 {
			continue
		}
		if g.Sign() == 0 {
			g.Abs(v)
		} else {
			g.GCD(nil, nil, g, new(big.Int).Abs(v))
		}
	}
	if g.Sign() == 0 || g.Cmp(big.NewInt(1)) == 0 {
		return r.Clone()
	}
	out := make(Row, len(r))
	for i, v := range r {
		q := new(big.Int)
		q.Div(v, g)
		out[i] = q
	}
	return out
}

// NewSet builds a Set of the given dimension from members. All members
// must share dim, or ErrDimensionMismatch is returned.
func NewSet(dim int, members ...*Polyhedron) (*Set, error) {
	for _, m := range members {
		if m.dim != dim {
			return nil, ErrDimensionMismatch
		}
	}
	cp := make([]*Polyhedron, len(members))
	copy(cp, members)
	return &Set{dim: dim, members: cp}, nil
}

// Append returns a new Set with p appended.
func (s *Set) Append(p *Polyhedron) (*Set, error) {
	if p.dim != s.dim {
		return nil, ErrDimensionMismatch
	}
	out := &Set{dim: s.dim, members: append(append([]*Polyhedron{}, s.members...), p)}
	return out, nil
}

// Canonicalize returns a Set with logically-empty members dropped
// (spec §3: "empty members may appear; they are logically ignored").
func (s *Set) Canonicalize() *Set {
	out := make([]*Polyhedron, 0, len(s.members))
	for _, m := range s.members {
		if m != nil && !m.IsEmpty() {
			out = append(out, m)
		}
	}
	return &Set{dim: s.dim, members: out}
}

// IsEmpty reports whether every member is empty (or there are none).
func (s *Set) IsEmpty() bool {
	for _, m := range s.members {
		if m != nil && !m.IsEmpty() {
			return false
		}
	}
	return true
}
