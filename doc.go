// Package polyhull is an exact, integer/rational convex-hull library
// for polyhedra described as conjunctions of linear equalities and
// inequalities.
//
// Under the hood, everything is organized under six subpackages:
//
//	polytope/ — Row/Polyhedron/Set value types and copy-on-write ops
//	intvec/   — exact integer vector kernels (gcd-normalize, eliminate)
//	intmat/   — exact integer matrix kernels (inverse, unimodular basis)
//	simplex/  — two-phase exact simplex over math/big.Rat
//	lp/       — four-outcome (Ok/Empty/Unbounded/Error) LP facade
//	hull/     — the convex-hull algorithms themselves
//
// No floating point and no epsilon tolerances are used anywhere in this
// module: every comparison is either an exact big.Int equality or an
// exact cross-multiplied rational comparison.
package polyhull
