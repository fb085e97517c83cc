// SPDX-License-Identifier: MIT
// Package polytope is the data model for integer-coefficient rational
// polyhedra: a single Polyhedron (a conjunction of equalities and
// inequalities over d ambient variables) and Set (a union of
// Polyhedron values).
//
// Every row of a Polyhedron is a vector of d+1 arbitrary-precision
// integers; index 0 is the constant term, indices 1..d are the
// variable coefficients. An equality row E means E·(1,x) = 0, an
// inequality row I means I·(1,x) >= 0.
//
// Ownership: every constructor and mutator here returns a fresh
// Polyhedron/Set; rows are copy-on-write (Row.Clone) so sharing a
// Polyhedron's rows across a derived copy is safe until one side
// mutates, at which point only the mutator pays for a private copy.
//
// This package is the facade: beyond bookkeeping (flags, row storage,
// gcd normalization) it holds only the coordinate changes the hull code
// needs (Preimage, RemoveDims, and RemoveEqualities, which completes a
// unimodular basis and inverts it via intmat). The convex-hull
// algorithms that consume it live in package hull.
package polytope
