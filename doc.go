// SPDX-License-Identifier: MIT

// Package flagchern computes topological invariants of flag-variety-like
// homogeneous spaces G/P and of complete intersections inside them:
// Chern classes, Chern numbers, Euler characteristics and the chi-y
// genus, all through Atiyah–Bott localization.
//
// Everything is organized under six subpackages, leaves first:
//
//	poly/    — sparse multivariate polynomials over big.Rat and graded
//	           cohomology classes
//	cartan/  — classical root systems (A/B/C/D), Weyl groups as exact
//	           rational matrices, Freudenthal weight multiplicities
//	chern/   — universal Chern-class calculus: character, Todd class,
//	           tensor and power formulas via Newton identities
//	symfn/   — partitions and the monomial-symmetric-to-Chern-class
//	           translator
//	variety/ — the engine: parabolic subgroups, homogeneous spaces, the
//	           two localization integrators, equivariant bundles and
//	           their algebra, complete intersections, scalar invariants
//	genus/   — the chi-y genus assembled on top of the engine
//
// All cohomological arithmetic is exact rational; floating point only
// appears inside the numeric integrator, whose result is cross-checked
// against the exact symbolic one.
package flagchern
