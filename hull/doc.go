// SPDX-License-Identifier: MIT
// Package hull computes the exact rational convex hull of a union of
// integer-coefficient polyhedra (polytope.Set), plus a cheaper
// translate-only "simple hull" collaborator.
//
// The entry points are ConvexHull (the full driver, spec.md §4.11),
// ConvexHull1 (redundancy removal for a single polyhedron, spec.md
// §4.3), and SimpleHull (spec.md §4.12). Everything else in this
// package — IndependentBounds, IsBound, WrapFacet,
// InitialFacetConstraint, Extend, ComputeFacet, and the low-dimensional
// / unbounded paths — is an internal stage of that driver, exported
// because each is independently useful and independently tested
// (mirroring how lvlath's algorithm packages, e.g. flow, export their
// sub-stages such as BuildLevelGraph alongside the top-level Dinic).
//
// Dimensionality cascade (spec.md §2/§4.11):
//
//	ConvexHull
//	  -> 0-D: universe/empty
//	  -> 1-D: convexHull1D (running lower/upper bound merge)
//	  -> unbounded, dim>=2: fourierMotzkinPairHull
//	  -> bounded, dim>=2: IndependentBounds -> InitialFacetConstraint -> Extend
//	       Extend recurses into ComputeFacet for each discovered facet,
//	       which slices to facet dimension and recurses into this same
//	       cascade one dimension down.
package hull
