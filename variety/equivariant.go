// SPDX-License-Identifier: MIT

package variety

import (
	"fmt"
	"math/big"

	"github.com/equilocus/flagchern/poly"
)

// EquivariantVectorBundle is a homogeneous vector bundle on G/P given
// by a weight multiset: the Chern roots are the weights as linear
// forms, so the Chern classes follow from the weight bookkeeping alone.
type EquivariantVectorBundle struct {
	base    *HomogeneousSpace
	weights *WeightSet
	rank    int
	classes *poly.Graded
}

// newBundleFromWeights is the internal constructor; weights are assumed
// to live in the ambient ring of base.
func newBundleFromWeights(base *HomogeneousSpace, weights *WeightSet) *EquivariantVectorBundle {
	ring := base.ring
	total := ring.One()
	weights.Each(func(vec []*big.Rat, mult int) {
		factor := ring.One().Add(ring.Linear(vec))
		for i := 0; i < mult; i++ {
			total = total.Mul(factor).Truncate(base.dim)
		}
	})
	return &EquivariantVectorBundle{
		base:    base,
		weights: weights,
		rank:    weights.Rank(),
		classes: poly.SplitByDegree(total, base.dim),
	}
}

// NewEquivariantVectorBundle builds a bundle directly from an ambient
// weight multiset. Each weight vector must have the ambient dimension
// of the base.
func NewEquivariantVectorBundle(base *HomogeneousSpace, weights *WeightSet) (*EquivariantVectorBundle, error) {
	if base == nil {
		return nil, ErrNilSpace
	}
	if weights == nil {
		return nil, ErrNilBundle
	}
	n := base.par.g.AmbientDim()
	var bad error
	weights.Each(func(vec []*big.Rat, mult int) {
		if len(vec) != n && bad == nil {
			bad = fmt.Errorf("weight of length %d in ambient dimension %d: %w",
				len(vec), n, ErrInvalidWeight)
		}
	})
	if bad != nil {
		return nil, bad
	}
	return newBundleFromWeights(base, weights), nil
}

// NewIrreducibleBundle builds the homogeneous bundle induced by the
// L-irreducible representation with the given highest weight, in
// fundamental-weight coordinates of G.
func NewIrreducibleBundle(base *HomogeneousSpace, highest []int) (*EquivariantVectorBundle, error) {
	if base == nil {
		return nil, ErrNilSpace
	}
	ws, err := base.par.WeightMultiplicities(highest)
	if err != nil {
		return nil, err
	}
	return newBundleFromWeights(base, ws), nil
}

// NewCompletelyReducibleBundle builds the direct sum of the irreducible
// bundles with the given highest weights, by multiset union of their
// weight multiplicities.
func NewCompletelyReducibleBundle(base *HomogeneousSpace, highest ...[]int) (*EquivariantVectorBundle, error) {
	if base == nil {
		return nil, ErrNilSpace
	}
	merged := NewWeightSet()
	for _, hw := range highest {
		ws, err := base.par.WeightMultiplicities(hw)
		if err != nil {
			return nil, err
		}
		merged.Merge(ws)
	}
	return newBundleFromWeights(base, merged), nil
}

// Base returns the homogeneous space the bundle lives on.
func (e *EquivariantVectorBundle) Base() Variety { return e.base }

// Rank returns the total weight multiplicity.
func (e *EquivariantVectorBundle) Rank() int { return e.rank }

// ChernClasses returns the degree split of Π (1 + w)^mult over the
// weights, truncated to the base dimension.
func (e *EquivariantVectorBundle) ChernClasses() *poly.Graded { return e.classes }

// Weights returns the weight multiset. The result must not be modified.
func (e *EquivariantVectorBundle) Weights() *WeightSet { return e.weights }
