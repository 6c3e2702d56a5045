// SPDX-License-Identifier: MIT

package symfn

import (
	"errors"
	"fmt"
	"math/big"
	"sort"

	"github.com/equilocus/flagchern/poly"
)

// ErrBadPartition indicates that part does not partition dim.
var ErrBadPartition = errors.New("symfn: not a partition of the dimension")

// ChernRing returns the abstract Chern-class ring c1..c_dim shared by
// all translations of a given dimension.
func ChernRing(dim int) *poly.Ring {
	return poly.SymbolRing("c", 1, dim)
}

// ElementarySymmetric returns e_k over the variables of r (e_0 = 1).
func ElementarySymmetric(r *poly.Ring, k int) *poly.Poly {
	n := r.N()
	if k < 0 || k > n {
		return r.Zero()
	}
	out := r.Zero()
	idx := make([]int, k)
	var build func(pos, from int)
	build = func(pos, from int) {
		if pos == k {
			exps := make([]int, n)
			for _, i := range idx {
				exps[i] = 1
			}
			out = out.Add(r.Monomial(exps, big.NewRat(1, 1)))
			return
		}
		for i := from; i <= n-(k-pos); i++ {
			idx[pos] = i
			build(pos+1, i+1)
		}
	}
	if k == 0 {
		return r.One()
	}
	build(0, 0)
	return out
}

// monomialSymmetric returns m_part over the variables of r: the sum of
// all distinct monomials whose exponent multiset is part.
func monomialSymmetric(r *poly.Ring, part []int) *poly.Poly {
	n := r.N()
	out := r.Zero()
	exps := make([]int, n)
	used := make([]bool, n)
	// Place the parts largest-first into distinct slots; skipping equal
	// parts in equal positions would double count, so deduplicate by key.
	seen := map[string]struct{}{}
	var place func(i int)
	place = func(i int) {
		if i == len(part) {
			key := fmt.Sprint(exps)
			if _, ok := seen[key]; ok {
				return
			}
			seen[key] = struct{}{}
			out = out.Add(r.Monomial(exps, big.NewRat(1, 1)))
			return
		}
		for s := 0; s < n; s++ {
			if used[s] {
				continue
			}
			used[s] = true
			exps[s] = part[i]
			place(i + 1)
			exps[s] = 0
			used[s] = false
		}
	}
	place(0)
	return out
}

// MonomialInChernClasses rewrites the monomial symmetric function of
// the Chern roots indexed by part (a partition of dim) as a polynomial
// in the abstract Chern classes c1..c_dim.
func MonomialInChernClasses(dim int, part []int) (*poly.Poly, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("dimension %d: %w", dim, ErrBadPartition)
	}
	sum := 0
	sorted := append([]int(nil), part...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	for _, p := range sorted {
		if p <= 0 {
			return nil, fmt.Errorf("part %d: %w", p, ErrBadPartition)
		}
		sum += p
	}
	if sum != dim || len(sorted) > dim {
		return nil, fmt.Errorf("%v vs dimension %d: %w", part, dim, ErrBadPartition)
	}

	// Work with dim Chern roots; e_k(roots) = c_k for k ≤ dim.
	roots := poly.SymbolRing("t", 0, dim)
	cring := ChernRing(dim)
	elem := make([]*poly.Poly, dim+1)
	for k := 0; k <= dim; k++ {
		elem[k] = ElementarySymmetric(roots, k)
	}

	f := monomialSymmetric(roots, sorted)
	result := cring.Zero()
	for !f.IsZero() {
		lead, _ := f.LeadingKey()
		// For a symmetric polynomial the leading exponents are already
		// weakly decreasing; a1−a2 copies of e1, a2−a3 of e2, …
		coeff := f.Coefficient(lead)
		eProd := roots.One()
		cExps := make([]int, dim)
		for k := 1; k <= dim; k++ {
			next := 0
			if k < dim {
				next = lead[k]
			}
			reps := lead[k-1] - next
			if reps < 0 {
				panic("symfn: reduction leading term is not a partition")
			}
			if reps > 0 {
				eProd = eProd.Mul(elem[k].Pow(reps))
				cExps[k-1] = reps
			}
		}
		f = f.Sub(eProd.Scale(coeff))
		result = result.Add(cring.Monomial(cExps, coeff))
	}
	return result, nil
}
