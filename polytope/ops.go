// SPDX-License-Identifier: MIT
package polytope

import (
	"math/big"

	"github.com/katalvlaran/polyhull/intmat"
	"github.com/katalvlaran/polyhull/intvec"
)

// Intersect returns a Polyhedron whose constraints are the union of p's
// and q's rows. p and q must share Dim.
func (p *Polyhedron) Intersect(q *Polyhedron) (*Polyhedron, error) {
	if p.dim != q.dim {
		return nil, ErrDimensionMismatch
	}
	if p.IsEmpty() || q.IsEmpty() {
		return Empty(p.dim), nil
	}
	out := &Polyhedron{dim: p.dim}
	out.eq = append(append([]Row{}, p.eq...), q.eq...)
	out.ineq = append(append([]Row{}, p.ineq...), q.ineq...)
	return out, nil
}

// Preimage returns the Polyhedron obtained by substituting x = M*x'
// (M: dim x newDim, read as a homogeneous (dim+1)x(newDim+1) matrix
// whose first row/column are the identity on the constant term) into
// every row of p, yielding a polyhedron over newDim variables.
func (p *Polyhedron) Preimage(m *intmat.Matrix) (*Polyhedron, error) {
	if m.Rows() != p.dim+1 {
		return nil, ErrDimensionMismatch
	}
	newDim := m.Cols() - 1
	out := &Polyhedron{dim: newDim, flags: p.flags &^ (FlagNoRedundant | FlagNoImplicit)}
	for _, r := range p.eq {
		out.eq = append(out.eq, Row(rowThroughMatrix(m, r)))
	}
	for _, r := range p.ineq {
		out.ineq = append(out.ineq, Row(rowThroughMatrix(m, r)))
	}
	return out, nil
}

// rowThroughMatrix computes r (as a 1x(dim+1) row vector) times m,
// i.e. the transformed coefficient row r*m (r is a row vector acting on
// the left, matching "apply a change of coordinates x = M*x'" applied
// to a linear form r.(1,x) = r.M.(1,x')).
func rowThroughMatrix(m *intmat.Matrix, r Row) []*big.Int {
	out := make([]*big.Int, m.Cols())
	tmp := new(big.Int)
	for j := 0; j < m.Cols(); j++ {
		sum := new(big.Int)
		for i := 0; i < m.Rows(); i++ {
			tmp.Mul(r[i], m.At(i, j))
			sum.Add(sum, tmp)
		}
		out[j] = sum
	}
	return out
}

// RemoveDims drops the given (1-based, i.e. variable, not constant)
// coordinate indices from every row of p, returning a polyhedron over
// dim-len(idx) variables. Used after a facet-defining equality has been
// projected away.
func (p *Polyhedron) RemoveDims(idx ...int) *Polyhedron {
	drop := make(map[int]struct{}, len(idx))
	for _, i := range idx {
		drop[i] = struct{}{}
	}
	project := func(r Row) Row {
		out := make(Row, 0, len(r)-len(idx))
		out = append(out, r[0])
		for i := 1; i < len(r); i++ {
			if _, ok := drop[i]; ok {
				continue
			}
			out = append(out, r[i])
		}
		return out
	}
	out := &Polyhedron{dim: p.dim - len(idx), flags: p.flags}
	for _, r := range p.eq {
		out.eq = append(out.eq, project(r))
	}
	for _, r := range p.ineq {
		out.ineq = append(out.ineq, project(r))
	}
	return out
}

// RemoveEqualities computes the affine hull's equalities (a maximal
// independent subset of p.eq) and returns:
//   - reduced: p re-expressed with those equalities factored out, over
//     a smaller ambient dimension (the face dimension);
//   - T: the (dim+1)x(faceDim+1) embedding matrix (reduced-space point
//     -> ambient point);
//   - Tinv: a (faceDim+1)x(dim+1) matrix with Tinv*T == I, used to map
//     ambient directions back into the reduced space.
//
// This is the concrete implementation of the "equality-elimination
// helper giving T, T^-1" spec §4.11 step 4 treats as an external
// collaborator.
func (p *Polyhedron) RemoveEqualities() (reduced *Polyhedron, T, Tinv *intmat.Matrix, err error) {
	eqRows := make([][]*big.Int, len(p.eq))
	for i, r := range p.eq {
		eqRows[i] = r
	}
	idx, rank := intmat.IndependentRows(eqRows)
	if rank == 0 {
		id := intmat.Identity(p.dim + 1)
		return p.Clone(), id, id, nil
	}
	kept := make([][]*big.Int, len(idx)+1)
	kept[0] = make([]*big.Int, p.dim+1)
	kept[0][0] = big.NewInt(1)
	for i := 1; i <= p.dim; i++ {
		kept[0][i] = new(big.Int)
	}
	for i, j := range idx {
		kept[i+1] = eqRows[j]
	}
	u, cerr := intmat.CompleteUnimodularBasis(kept, p.dim+1)
	if cerr != nil {
		return nil, nil, nil, cerr
	}
	uinv, cerr := intmat.Inverse(u)
	if cerr != nil {
		return nil, nil, nil, cerr
	}
	// u maps ambient -> new coords with the first `rank` new
	// coordinates forced to the equalities' constants (here: forced to
	// zero, since eq rows are homogeneous in (1,x) and pass through
	// the origin of the transformed frame once embedded correctly).
	// Project away the first `rank` transformed coordinates (after the
	// constant column, which is index 0): drop indices 1..rank.
	dropIdx := make([]int, rank)
	for i := range dropIdx {
		dropIdx[i] = i + 1
	}
	transformed, perr := p.Preimage(uinv) // x = uinv * x' expresses old coords via new
	if perr != nil {
		return nil, nil, nil, perr
	}
	reduced = transformed.RemoveDims(dropIdx...)
	reduced = reduced.Finalize()
	Tinv = u.DropRows(dropIdx...)    // new(reduced) <- ambient:  faceDim+1 x dim+1
	T = uinv.DropCols(dropIdx...)    // ambient <- new(reduced):  dim+1 x faceDim+1
	return reduced, T, Tinv, nil
}

// Equal reports whether p and q have identical (already-normalized)
// equality/inequality row sets, order-insensitive.
func (p *Polyhedron) Equal(q *Polyhedron) bool {
	if p.dim != q.dim || p.IsEmpty() != q.IsEmpty() {
		return false
	}
	return rowSetEqual(p.eq, q.eq) && rowSetEqual(p.ineq, q.ineq)
}

func rowSetEqual(a, b []Row) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, ra := range a {
		found := false
		for j, rb := range b {
			if used[j] {
				continue
			}
			if intvec.Equal(ra, rb) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
