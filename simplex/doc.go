// SPDX-License-Identifier: MIT
// Package simplex implements an exact, two-phase rational simplex
// method (Dantzig tableau form, Bland's rule throughout to guarantee
// termination without heuristics) used as the black-box LP engine
// spec.md §4.1/§6 calls for: minimize an integer-coefficient linear
// form over a polytope.Polyhedron and report one of {Ok, Empty,
// Unbounded, Error}, plus the implicit-equality and recession-cone-
// boundedness queries the hull core needs.
//
// Every computation is carried out in math/big.Rat; no floating point
// ever appears, matching spec.md §4.1's "no epsilon tolerance"
// requirement. The phase-1/phase-2 bookkeeping (basis/non-basis index
// tracking, artificial variables for an initial feasible basis,
// Bland's-rule anti-cycling) follows the shape of the retrieval pack's
// float64 reference simplex, replumbed end-to-end onto big.Rat.
package simplex
