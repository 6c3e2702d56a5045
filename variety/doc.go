// SPDX-License-Identifier: MIT

// Package variety computes equivariant topological invariants of
// flag-variety-like homogeneous spaces G/P and of complete
// intersections cut out of equivariant vector bundles on them.
//
// The pipeline runs leaves-first:
//
//	Parabolic                – crossed-out Dynkin nodes, Levi datum,
//	                           weight multiplicities reindexed into G.
//	HomogeneousSpace         – dimension, tangent weights, tangent Chern
//	                           classes, and the localization integral.
//	EquivariantVectorBundle  – rank and Chern classes from a weight
//	                           multiset (irreducible and completely
//	                           reducible constructors).
//	Dual/DirectSum/Tensor…   – bundle algebra over a shared base.
//	CompleteIntersection     – adjunction classes and Gysin-pushforward
//	                           integration through the ambient space.
//	ChernNumber/EulerChar…   – scalar invariants on top.
//
// Integration is Atiyah–Bott localization, implemented twice:
//
//	– numeric mode samples one generic point at high precision and sums
//	  top(f)/Π(weights) over its Weyl orbit, dividing by |W(L)| for the
//	  stabilizer; cost O(|W(G)|·E) where E is one polynomial evaluation.
//	– symbolic mode sums exact rational functions over a transversal of
//	  W(P)\W(G); cost grows with |W(G)|/|W(L)| and the polynomial sizes,
//	  but the result is exact.
//
// The two modes must agree on every honest characteristic class; the
// cross-check is the package's main internal consistency test.
//
// Errors (sentinel):
//
//	– ErrNilParabolic / ErrNilSpace / ErrNilBundle on nil inputs.
//	– ErrInvalidNode       if a crossed-out node is out of range.
//	– ErrDimensionMismatch if the Levi rank or a coordinate ring does not fit.
//	– ErrInvalidWeight     if a weight has the wrong length or is not dominant.
//	– ErrBaseMismatch      if bundle operands live on different varieties.
//	– ErrInvalidOption     if the integration mode is unknown.
//	– ErrInvalidPower      if a symmetric or wedge power is negative.
//	– ErrDegenerateSample  if the numeric sample hits the singular locus (retry).
//	– ErrNonIntegerResult  if a localization sum does not round to an integer.
//
// Example usage:
//
//	// The projective space P⁴ = A4/P1 with Levi factor A3:
//	levi := cartan.MustNew(cartan.SeriesA, 3)
//	par, _ := variety.NewParabolic(cartan.MustNew(cartan.SeriesA, 4), &levi, []int{1})
//	space, _ := variety.NewHomogeneousSpace(par)
//
//	// χ(P⁴, O(3)) by Hirzebruch–Riemann–Roch:
//	line, _ := variety.NewIrreducibleBundle(space, []int{3, 0, 0, 0, 0})
//	chi, _ := variety.EulerCharacteristic(space, line) // 35
package variety
