// SPDX-License-Identifier: MIT

package variety

import (
	"fmt"
	"math/big"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/equilocus/flagchern/cartan"
	"github.com/equilocus/flagchern/chern"
	"github.com/equilocus/flagchern/poly"
)

// HomogeneousSpace is the flag variety G/P of a parabolic subgroup. It
// owns the ambient coordinate ring and the list of tangent weights (the
// positive roots of G outside P, as linear forms), and provides the two
// localization integrators.
type HomogeneousSpace struct {
	par   *Parabolic
	ring  *poly.Ring
	dim   int
	calc  chern.Std
	forms []*poly.Poly // tangent weights as linear forms
	tang  *WeightSet
	total *poly.Poly // Π (1 + w) over tangent weights
	cls   *poly.Graded

	groupOnce sync.Once
	group     []cartan.Matrix

	subOnce sync.Once
	sub     []cartan.Matrix

	integrals *lru.Cache[string, *big.Int]
}

// NewHomogeneousSpace builds G/P from a parabolic subgroup. The
// coordinate ring has one variable per ambient dimension of G, named
// x0, x1, ...
func NewHomogeneousSpace(p *Parabolic) (*HomogeneousSpace, error) {
	if p == nil {
		return nil, ErrNilParabolic
	}
	ring := poly.SymbolRing("x", 0, p.g.AmbientDim())

	tang := NewWeightSet()
	for _, r := range cartan.PositiveRoots(p.g) {
		if !p.inLevi(r) {
			tang.Add(r.Vec, 1)
		}
	}

	h := &HomogeneousSpace{
		par:  p,
		ring: ring,
		dim:  tang.Rank(),
		tang: tang,
	}
	h.total = ring.One()
	tang.Each(func(vec []*big.Rat, mult int) {
		form := ring.Linear(vec)
		for i := 0; i < mult; i++ {
			h.forms = append(h.forms, form)
			h.total = h.total.Mul(ring.One().Add(form))
		}
	})
	h.cls = poly.SplitByDegree(h.total, h.dim)
	h.integrals, _ = lru.New[string, *big.Int](256)
	return h, nil
}

// Parabolic returns the parabolic subgroup the space was built from.
func (h *HomogeneousSpace) Parabolic() *Parabolic { return h.par }

// Dimension returns the number of tangent weights, the complex
// dimension of G/P.
func (h *HomogeneousSpace) Dimension() int { return h.dim }

// Ring returns the ambient coordinate ring.
func (h *HomogeneousSpace) Ring() *poly.Ring { return h.ring }

// Calculus returns the Chern-class calculus shared by bundles on G/P.
func (h *HomogeneousSpace) Calculus() Calculus { return h.calc }

// TangentWeights returns the tangent weight multiset. The result must
// not be modified.
func (h *HomogeneousSpace) TangentWeights() *WeightSet { return h.tang }

// ChernClasses returns the Chern classes of the tangent bundle: the
// degree split of Π (1 + w) over the tangent weights.
func (h *HomogeneousSpace) ChernClasses() *poly.Graded { return h.cls }

// ToddClasses returns the Todd classes of the tangent bundle.
func (h *HomogeneousSpace) ToddClasses() *poly.Graded {
	return h.calc.Todd(h.cls)
}

// TangentBundle wraps the tangent weights as an equivariant bundle.
func (h *HomogeneousSpace) TangentBundle() *EquivariantVectorBundle {
	return newBundleFromWeights(h, h.tang)
}

// CotangentBundle returns the dual of the tangent bundle, realized by
// negating every tangent weight.
func (h *HomogeneousSpace) CotangentBundle() *EquivariantVectorBundle {
	neg := NewWeightSet()
	h.tang.Each(func(vec []*big.Rat, mult int) {
		nv := make([]*big.Rat, len(vec))
		for i, q := range vec {
			nv[i] = new(big.Rat).Neg(q)
		}
		neg.Add(nv, mult)
	})
	return newBundleFromWeights(h, neg)
}

// weylGroup enumerates the full Weyl group of G once per space.
func (h *HomogeneousSpace) weylGroup() []cartan.Matrix {
	h.groupOnce.Do(func() {
		h.group = cartan.Group(h.par.g)
	})
	return h.group
}

// leviReflectionGroup enumerates the subgroup generated by the simple
// reflections at the uncrossed nodes. For a Borel it is trivial.
func (h *HomogeneousSpace) leviReflectionGroup() []cartan.Matrix {
	h.subOnce.Do(func() {
		crossed := map[int]bool{}
		for _, c := range h.par.crossed {
			crossed[c] = true
		}
		var gens []cartan.Matrix
		for node := 1; node <= h.par.g.Rank; node++ {
			if !crossed[node] {
				gens = append(gens, cartan.ReflectionMatrix(h.par.simple[node-1]))
			}
		}
		h.sub = cartan.Closure(gens, h.par.g.AmbientDim())
	})
	return h.sub
}

// Integrate evaluates the integral of the top-degree part of f over
// G/P by Atiyah–Bott localization. The default numeric mode samples a
// generic high-precision point and sums over its Weyl orbit; symbolic
// mode sums exact rational functions over a coset transversal. Both
// modes return the same integer on valid input.
func (h *HomogeneousSpace) Integrate(f *poly.Graded, opts ...IntegrateOption) (*big.Int, error) {
	if f == nil || !f.Ring().Compatible(h.ring) {
		return nil, fmt.Errorf("graded class over a foreign ring: %w", ErrDimensionMismatch)
	}
	o, err := newIntegrateOptions(opts)
	if err != nil {
		return nil, err
	}
	top := f.Class(h.dim)
	if top.IsZero() {
		return big.NewInt(0), nil
	}

	key := string(o.mode) + "|" + top.String()
	if v, ok := h.integrals.Get(key); ok {
		return new(big.Int).Set(v), nil
	}

	var result *big.Int
	switch o.mode {
	case ModeNumeric:
		result, err = h.integrateNumeric(top, o)
	case ModeSymbolic:
		result, err = h.integrateSymbolic(top)
	}
	if err != nil {
		return nil, err
	}
	h.integrals.Add(key, new(big.Int).Set(result))
	return result, nil
}
