// SPDX-License-Identifier: MIT

// Package symfn translates between integer partitions and symmetric
// functions of Chern roots.
//
// What:
//
//   - Partitions(n): all partitions of n, parts descending.
//   - MonomialInChernClasses(dim, part): the monomial symmetric function
//     of the Chern roots indexed by part, rewritten as a polynomial in
//     the abstract Chern classes c1..c_dim. Since the Chern classes are
//     the elementary symmetric functions of the roots, the rewrite is
//     the classical leading-term reduction against elementary symmetric
//     polynomials.
//   - ElementarySymmetric(r, k): e_k in an explicit variable ring.
//
// Why:
//
//   - Genus-level consumers expand products over Chern roots into
//     monomial symmetric functions and need each one as a Chern-class
//     polynomial before it can be integrated (one Chern number per
//     partition of the dimension).
//
// Errors:
//
//   - ErrBadPartition - part is not a partition of dim.
package symfn
