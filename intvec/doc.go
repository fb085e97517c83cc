// SPDX-License-Identifier: MIT
// Package intvec provides universal operations on big-integer
// coefficient vectors (polytope.Row's underlying representation):
// scaling, linear combination, first-non-zero-column lookup, exact
// elimination, and gcd normalization.
//
// Every kernel here is exact: no float64 ever appears. Elimination uses
// cross-multiplication rather than division so that integer inputs never
// produce a fractional intermediate.
package intvec
