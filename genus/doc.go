// SPDX-License-Identifier: MIT

// Package genus assembles the Hirzebruch chi-y genus from the
// localization engine.
//
// The chi-y genus interpolates the classical genera of a compact
// complex d-fold: y = 0 gives the Todd genus, y = −1 the Euler number,
// y = 1 the signature. It is the integral of
//
//	Π over Chern roots x of (1 − y·e^(−x)) · x/(1 − e^(−x)),
//
// whose degree-d part is expanded once per dimension into universal
// polynomials in the abstract Chern classes c1..c_d, one polynomial per
// power of y (ChiYClass). ChiY substitutes a concrete variety's tangent
// Chern classes and integrates each coefficient; entry p is the Euler
// characteristic χ(X, Ω^p).
//
// Example usage:
//
//	chi, err := genus.ChiY(space) // [1, 1, 1] for the projective plane
package genus
