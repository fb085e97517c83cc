// SPDX-License-Identifier: MIT
// Package lp exposes the exact LP contract spec.md §4.1 calls for:
// minimize an integer linear form over a polytope.Polyhedron and
// report one of {Ok, Empty, Unbounded, Error}. It is a thin facade over
// package simplex's tableau, kept separate so hull's algorithm files
// depend on a four-function surface instead of the tableau's internals
// (mirroring how lvlath's algorithm packages depend on core.Graph's
// read-only facade rather than its internal adjacency storage).
package lp
