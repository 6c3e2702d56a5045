// SPDX-License-Identifier: MIT

// Package chern is the universal Chern-class calculus: given the Chern
// classes of vector bundles it produces the Chern character, the Todd
// class, and the Chern classes of tensor products and symmetric and
// exterior powers.
//
// What:
//
//   - Std implements the calculus over poly.Graded class lists. The
//     universal polynomials are evaluated through Newton's identities
//     (power sums ↔ elementary symmetric functions of the Chern roots)
//     and the Adams-operation recurrences for λ-operations; no symbolic
//     algebra system is consulted.
//   - ToddSeries exposes the one-variable series x/(1−e^{−x}) used both
//     for the Todd class and by genus-level consumers.
//
// Why:
//
//   - Derived bundles (duals, sums, tensor products) lose their weight
//     descriptions; only their Chern classes travel. The calculus turns
//     class-level data back into class-level data without ever needing
//     the Chern roots themselves.
//
// All arithmetic is exact over the rationals. Ranks of symmetric and
// exterior powers come from binomial coefficients (gonum stat/combin).
package chern
