// SPDX-License-Identifier: MIT

// Package cartan supplies the root-system and Weyl-group data consumed
// by the localization engine: classical Cartan data, simple and positive
// roots, fundamental weights, Weyl groups, and weight multiplicities of
// irreducible highest-weight representations.
//
// What:
//
//   - Datum: a classical Cartan type (series A/B/C/D plus rank).
//   - Ambient realization in the standard Euclidean coordinates: AmbientDim,
//     SimpleRoots, PositiveRoots, FundamentalWeights, WeylVector.
//   - Weyl groups as exact rational orthogonal matrices: ReflectionMatrix,
//     Group (full enumeration by generator closure), Closure (subgroup
//     generated by a subset), Order (product formula).
//   - RootDifferenceMultiplicities: the weight multiset of the irreducible
//     representation with a given dominant highest weight, every weight
//     keyed by its simple-root difference coefficients (Freudenthal's
//     recursion, exact rational arithmetic throughout).
//
// Complexity:
//
//   - Group: O(|W|·rank²) matrix products; |W| grows factorially, so full
//     enumeration is intended for the small ranks flag-variety work uses.
//   - RootDifferenceMultiplicities: one Freudenthal evaluation per weight
//     of the representation.
//
// Errors:
//
//   - ErrUnknownSeries  - series outside A/B/C/D.
//   - ErrBadRank        - rank below the series minimum.
//   - ErrWeightLength   - weight vector length differs from the rank.
//   - ErrNotDominant    - a fundamental-weight coefficient is negative.
//   - ErrSingularSystem - inconsistent linear system (internal misuse).
package cartan
