// SPDX-License-Identifier: MIT
// Package intmat provides dense big-integer matrix storage and the
// linear-algebra kernels the hull driver needs to factor out affine
// hulls and change coordinates when slicing into a facet: Gaussian
// elimination, row-echelon-based unimodular basis completion
// (used to build the right-inverse change-of-coordinates matrices of
// spec §4.7/§4.9), matrix product, and row/column deletion.
//
// Every entry is an arbitrary-precision integer (math/big.Int); no
// floating point appears anywhere in this package.
package intmat
