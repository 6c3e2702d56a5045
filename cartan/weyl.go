// SPDX-License-Identifier: MIT

package cartan

import "math/big"

// ReflectionMatrix returns the orthogonal reflection in the hyperplane
// perpendicular to root: s(v) = v − 2(v·root)/(root·root)·root.
func ReflectionMatrix(root []*big.Rat) Matrix {
	n := len(root)
	norm := ratVecDot(root, root)
	if norm.Sign() == 0 {
		panic("cartan: reflection through the zero vector")
	}
	factor := new(big.Rat).Quo(big.NewRat(2, 1), norm)
	m := IdentityMatrix(n)
	tmp := new(big.Rat)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			tmp.Mul(root[i], root[j])
			tmp.Mul(tmp, factor)
			m[i][j].Sub(m[i][j], tmp)
		}
	}
	return m
}

// Closure enumerates the group generated by the given matrices: a
// frontier walk multiplying by generators until no new element appears.
// The identity is always included.
func Closure(gens []Matrix, dim int) []Matrix {
	id := IdentityMatrix(dim)
	seen := map[string]struct{}{id.Key(): {}}
	group := []Matrix{id}
	frontier := []Matrix{id}
	for len(frontier) > 0 {
		var next []Matrix
		for _, m := range frontier {
			for _, g := range gens {
				prod := m.Mul(g)
				key := prod.Key()
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				group = append(group, prod)
				next = append(next, prod)
			}
		}
		frontier = next
	}
	return group
}

// Group enumerates the full Weyl group of d as ambient-space matrices.
func Group(d Datum) []Matrix {
	simple := SimpleRoots(d)
	gens := make([]Matrix, len(simple))
	for i, r := range simple {
		gens[i] = ReflectionMatrix(r.Vec)
	}
	return Closure(gens, d.AmbientDim())
}

// Order returns |W(d)| by the product formula:
// A_r: (r+1)!, B_r and C_r: 2^r·r!, D_r: 2^{r−1}·r!.
func Order(d Datum) *big.Int {
	fact := new(big.Int).MulRange(1, int64(d.Rank))
	switch d.Series {
	case SeriesA:
		return new(big.Int).MulRange(1, int64(d.Rank)+1)
	case SeriesB, SeriesC:
		return fact.Lsh(fact, uint(d.Rank))
	default: // SeriesD
		return fact.Lsh(fact, uint(d.Rank-1))
	}
}
