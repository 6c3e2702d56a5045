// SPDX-License-Identifier: MIT

package variety

import (
	"math/big"
	"strings"
)

// WeightSet is an ordered multiset of ambient weight vectors. Entries
// keep the order of first insertion, so derived quantities (Chern
// classes, bundle ranks) are deterministic.
type WeightSet struct {
	keys []string
	vecs map[string][]*big.Rat
	mult map[string]int
}

// NewWeightSet returns an empty weight multiset.
func NewWeightSet() *WeightSet {
	return &WeightSet{
		vecs: map[string][]*big.Rat{},
		mult: map[string]int{},
	}
}

func weightKey(v []*big.Rat) string {
	var b strings.Builder
	for _, q := range v {
		b.WriteString(q.RatString())
		b.WriteByte(';')
	}
	return b.String()
}

// Add inserts vec with the given multiplicity, merging with an existing
// entry for the same vector. Non-positive multiplicities are ignored.
func (s *WeightSet) Add(vec []*big.Rat, mult int) {
	if mult <= 0 {
		return
	}
	k := weightKey(vec)
	if _, ok := s.mult[k]; !ok {
		s.keys = append(s.keys, k)
		cp := make([]*big.Rat, len(vec))
		for i, q := range vec {
			cp[i] = new(big.Rat).Set(q)
		}
		s.vecs[k] = cp
	}
	s.mult[k] += mult
}

// Merge adds every entry of o into s (multiset union).
func (s *WeightSet) Merge(o *WeightSet) {
	o.Each(func(vec []*big.Rat, mult int) {
		s.Add(vec, mult)
	})
}

// Len returns the number of distinct weights.
func (s *WeightSet) Len() int { return len(s.keys) }

// Rank returns the total multiplicity, the rank of the bundle the set
// describes.
func (s *WeightSet) Rank() int {
	total := 0
	for _, m := range s.mult {
		total += m
	}
	return total
}

// Each visits the entries in insertion order. The callback must not
// modify vec.
func (s *WeightSet) Each(fn func(vec []*big.Rat, mult int)) {
	for _, k := range s.keys {
		fn(s.vecs[k], s.mult[k])
	}
}
