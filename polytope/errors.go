// SPDX-License-Identifier: MIT
// Package polytope: sentinel error set.
// All algorithms MUST return these sentinels (directly or %w-wrapped at
// the outer boundary) and tests MUST check them via errors.Is.

package polytope

import "errors"

var (
	// ErrDimensionMismatch indicates rows or members with incompatible
	// ambient dimension were combined (e.g. a Set whose members disagree
	// on dim, or a Row of the wrong length added to a Polyhedron).
	ErrDimensionMismatch = errors.New("polytope: dimension mismatch")

	// ErrEmptyRow names a zero-length or nil row, one without even the
	// constant column. No function in this package returns it.
	ErrEmptyRow = errors.New("polytope: row has no constant column")

	// ErrNilPolyhedron indicates a nil *Polyhedron receiver or argument.
	ErrNilPolyhedron = errors.New("polytope: nil polyhedron")

	// ErrNoMembers indicates an operation that requires at least one Set
	// member was given an empty Set.
	ErrNoMembers = errors.New("polytope: set has no members")

	// ErrBadRowCount signals a matrix or bound list had an unexpected
	// number of rows relative to the ambient dimension (a precondition
	// violation per spec §7, not a caller input error).
	ErrBadRowCount = errors.New("polytope: unexpected row count")
)
