// SPDX-License-Identifier: MIT

// Package poly implements sparse multivariate polynomials over exact
// rationals (math/big.Rat) and the graded class lists built from them.
//
// What:
//
//   - Ring fixes an ordered variable set; every Poly belongs to a Ring.
//   - Poly: immutable sparse polynomial; Add/Sub/Mul/Pow/Scale, homogeneous
//     parts, degree truncation, linear substitution by a rational matrix,
//     exact rational evaluation, high-precision big.Float evaluation, and
//     polynomial-valued substitution of the variables.
//   - Graded: a cohomology-style class list indexed by degree 0..dim whose
//     entry i is homogeneous of total degree i; supports sum, truncated
//     convolution product, Total, and SplitByDegree.
//
// Why:
//
//   - Equivariant Chern-class computations need exact coefficients; floating
//     point enters only through EvalFloat inside the numeric localization.
//
// Complexity:
//
//   - Mul: O(|p|·|q|) term pairs; all other operations are linear in the
//     number of stored terms.
//
// Rings are compared structurally (same variable names in the same order).
// Mixing polynomials from incompatible rings is a programmer error and
// panics; no user-triggered condition in this package returns an error.
package poly
