// SPDX-License-Identifier: MIT

package variety

import (
	"errors"
	"fmt"
	"math/big"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/equilocus/flagchern/cartan"
)

// Parabolic describes a parabolic subgroup P of a reductive group G by
// the set of crossed-out Dynkin nodes, together with the Cartan datum
// of the Levi factor L (nil when every node is crossed out, i.e. P is a
// Borel). It is immutable once constructed.
type Parabolic struct {
	g       cartan.Datum
	l       *cartan.Datum
	crossed []int // sorted, 1-based

	simple [][]*big.Rat // simple roots of G
	fund   [][]*big.Rat // fundamental weights of G

	mults *lru.Cache[string, *WeightSet]
}

// NewParabolic constructs the parabolic subgroup of g crossing out the
// given Dynkin nodes (1-based). levi is the Cartan datum of the Levi
// factor, or nil when all nodes are crossed out; its rank must equal
// rank(g) minus the number of crossed nodes.
func NewParabolic(g cartan.Datum, levi *cartan.Datum, crossed []int) (*Parabolic, error) {
	nodes := append([]int(nil), crossed...)
	sort.Ints(nodes)
	for i, c := range nodes {
		if c < 1 || c > g.Rank {
			return nil, fmt.Errorf("node %d of %s: %w", c, g, ErrInvalidNode)
		}
		if i > 0 && nodes[i-1] == c {
			return nil, fmt.Errorf("node %d listed twice: %w", c, ErrInvalidNode)
		}
	}
	if levi == nil {
		if len(nodes) != g.Rank {
			return nil, fmt.Errorf("nil Levi needs all %d nodes crossed, got %d: %w",
				g.Rank, len(nodes), ErrDimensionMismatch)
		}
	} else if levi.Rank != g.Rank-len(nodes) {
		return nil, fmt.Errorf("Levi %s against %s with %d crossed nodes: %w",
			levi, g, len(nodes), ErrDimensionMismatch)
	}

	simple := cartan.SimpleRoots(g)
	vecs := make([][]*big.Rat, len(simple))
	for i, r := range simple {
		vecs[i] = r.Vec
	}
	cache, _ := lru.New[string, *WeightSet](64)
	return &Parabolic{
		g:       g,
		l:       levi,
		crossed: nodes,
		simple:  vecs,
		fund:    cartan.FundamentalWeights(g),
		mults:   cache,
	}, nil
}

// Group returns the Cartan datum of the ambient group G.
func (p *Parabolic) Group() cartan.Datum { return p.g }

// Levi returns the Cartan datum of the Levi factor, or nil for a Borel.
func (p *Parabolic) Levi() *cartan.Datum { return p.l }

// CrossedNodes returns the crossed-out nodes in increasing order.
func (p *Parabolic) CrossedNodes() []int {
	return append([]int(nil), p.crossed...)
}

// Roots returns the positive roots of G belonging to P: those with zero
// coefficient at every crossed-out simple root.
func (p *Parabolic) Roots() []cartan.Root {
	var out []cartan.Root
	for _, r := range cartan.PositiveRoots(p.g) {
		if p.inLevi(r) {
			out = append(out, r)
		}
	}
	return out
}

func (p *Parabolic) inLevi(r cartan.Root) bool {
	for _, c := range p.crossed {
		if r.Coeffs[c-1] != 0 {
			return false
		}
	}
	return true
}

// correctIndex maps a 1-based simple-root index of the Levi factor to
// the corresponding index of G, skipping crossed-out positions.
func (p *Parabolic) correctIndex(i int) int {
	j := i
	for _, c := range p.crossed {
		if j >= c {
			j++
		}
	}
	return j
}

// ambientWeight converts fundamental-weight coordinates over G into the
// ambient realization.
func (p *Parabolic) ambientWeight(weight []int) []*big.Rat {
	n := p.g.AmbientDim()
	v := make([]*big.Rat, n)
	for j := range v {
		v[j] = new(big.Rat)
	}
	for i, w := range weight {
		if w == 0 {
			continue
		}
		c := big.NewRat(int64(w), 1)
		for j := 0; j < n; j++ {
			v[j].Add(v[j], new(big.Rat).Mul(c, p.fund[i][j]))
		}
	}
	return v
}

// WeightMultiplicities returns the multiset of ambient G-weights of the
// L-irreducible representation with the given highest weight, expressed
// in fundamental-weight coordinates of G. The entries at crossed-out
// nodes fix the equivariant twist; the entries at uncrossed nodes form
// the dominant highest weight handed to the Levi factor.
//
// The weight may carry either rank(G) entries or AmbientDim(G) entries;
// in the latter case only the first rank(G) entries are read, so the
// A-series convention of padding with a trailing zero is accepted.
//
// The result is cached per weight and must not be modified.
func (p *Parabolic) WeightMultiplicities(weight []int) (*WeightSet, error) {
	switch len(weight) {
	case p.g.Rank:
	case p.g.AmbientDim():
		weight = weight[:p.g.Rank]
	default:
		return nil, fmt.Errorf("want length %d or %d, got %d: %w",
			p.g.Rank, p.g.AmbientDim(), len(weight), ErrInvalidWeight)
	}
	key := fmt.Sprint(weight)
	if ws, ok := p.mults.Get(key); ok {
		return ws, nil
	}

	top := p.ambientWeight(weight)
	out := NewWeightSet()
	if p.l == nil {
		out.Add(top, 1)
		p.mults.Add(key, out)
		return out, nil
	}

	// Highest weight of the Levi irreducible: the entries at uncrossed
	// nodes, in increasing node order.
	sub := make([]int, 0, p.l.Rank)
	crossed := map[int]bool{}
	for _, c := range p.crossed {
		crossed[c] = true
	}
	for node := 1; node <= p.g.Rank; node++ {
		if !crossed[node] {
			sub = append(sub, weight[node-1])
		}
	}

	wm, err := cartan.RootDifferenceMultiplicities(*p.l, sub)
	if err != nil {
		if errors.Is(err, cartan.ErrNotDominant) || errors.Is(err, cartan.ErrWeightLength) {
			return nil, fmt.Errorf("%v: %w", err, ErrInvalidWeight)
		}
		return nil, err
	}

	n := p.g.AmbientDim()
	for _, entry := range wm {
		v := make([]*big.Rat, n)
		for j := range v {
			v[j] = new(big.Rat).Set(top[j])
		}
		for i, k := range entry.Coeffs {
			if k == 0 {
				continue
			}
			gi := p.correctIndex(i + 1)
			c := big.NewRat(int64(k), 1)
			root := p.simple[gi-1]
			for j := 0; j < n; j++ {
				v[j].Add(v[j], new(big.Rat).Mul(c, root[j]))
			}
		}
		out.Add(v, entry.Mult)
	}
	p.mults.Add(key, out)
	return out, nil
}
