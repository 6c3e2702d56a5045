// SPDX-License-Identifier: MIT

package variety_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equilocus/flagchern/cartan"
	"github.com/equilocus/flagchern/variety"
)

func projectiveParabolic(t *testing.T) *variety.Parabolic {
	t.Helper()
	levi := cartan.MustNew(cartan.SeriesA, 3)
	par, err := variety.NewParabolic(cartan.MustNew(cartan.SeriesA, 4), &levi, []int{1})
	require.NoError(t, err)
	return par
}

func TestNewParabolic_Validation(t *testing.T) {
	a4 := cartan.MustNew(cartan.SeriesA, 4)
	a3 := cartan.MustNew(cartan.SeriesA, 3)
	a2 := cartan.MustNew(cartan.SeriesA, 2)

	_, err := variety.NewParabolic(a4, &a3, []int{0})
	assert.ErrorIs(t, err, variety.ErrInvalidNode)

	_, err = variety.NewParabolic(a4, &a3, []int{5})
	assert.ErrorIs(t, err, variety.ErrInvalidNode)

	_, err = variety.NewParabolic(a4, &a3, []int{2, 2})
	assert.ErrorIs(t, err, variety.ErrInvalidNode)

	// Levi rank must be rank(G) minus the crossed count.
	_, err = variety.NewParabolic(a4, &a2, []int{1})
	assert.ErrorIs(t, err, variety.ErrDimensionMismatch)

	// nil Levi needs every node crossed out.
	_, err = variety.NewParabolic(a4, nil, []int{1, 2})
	assert.ErrorIs(t, err, variety.ErrDimensionMismatch)

	_, err = variety.NewParabolic(a2, nil, []int{1, 2})
	assert.NoError(t, err)
}

func TestParabolic_Roots(t *testing.T) {
	par := projectiveParabolic(t)
	// The Levi A3 keeps the 6 positive roots not supported on node 1.
	roots := par.Roots()
	assert.Len(t, roots, 6)
	for _, r := range roots {
		assert.Zero(t, r.Coeffs[0])
	}
}

func TestWeightMultiplicities_Singleton(t *testing.T) {
	par := projectiveParabolic(t)
	// Trivial Levi weight: a line bundle, one weight 2Λ1 = 2e_0.
	ws, err := par.WeightMultiplicities([]int{2, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, ws.Len())
	assert.Equal(t, 1, ws.Rank())
	ws.Each(func(vec []*big.Rat, mult int) {
		assert.Equal(t, 1, mult)
		assert.Equal(t, "2", vec[0].RatString())
		for _, q := range vec[1:] {
			assert.Zero(t, q.Sign())
		}
	})
}

func TestWeightMultiplicities_StandardLeviRep(t *testing.T) {
	par := projectiveParabolic(t)
	// Λ2 induces the standard 4-dimensional A3 representation. Its
	// weights are e_0+e_j for j = 1..4.
	ws, err := par.WeightMultiplicities([]int{0, 1, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 4, ws.Rank())

	seen := map[int]bool{}
	ws.Each(func(vec []*big.Rat, mult int) {
		assert.Equal(t, 1, mult)
		assert.Equal(t, "1", vec[0].RatString())
		for j := 1; j < 5; j++ {
			if vec[j].Sign() != 0 {
				assert.Equal(t, "1", vec[j].RatString())
				seen[j] = true
			}
		}
	})
	assert.Len(t, seen, 4)
}

func TestWeightMultiplicities_NegativeTwist(t *testing.T) {
	par := projectiveParabolic(t)
	// Negative entries at crossed nodes are twists, not dominance
	// violations: this is the dual tautological line bundle.
	ws, err := par.WeightMultiplicities([]int{-1, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, ws.Rank())
}

func TestWeightMultiplicities_WeightLengthConventions(t *testing.T) {
	par := projectiveParabolic(t)
	// Rank-length and ambient-length coordinates name the same weight;
	// the trailing A-series entry is padding.
	short, err := par.WeightMultiplicities([]int{0, 1, 0, 0})
	require.NoError(t, err)
	long, err := par.WeightMultiplicities([]int{0, 1, 0, 0, 0})
	require.NoError(t, err)

	assert.Equal(t, short.Len(), long.Len())
	assert.Equal(t, short.Rank(), long.Rank())
}

func TestWeightMultiplicities_Errors(t *testing.T) {
	par := projectiveParabolic(t)

	_, err := par.WeightMultiplicities([]int{1, 0})
	assert.ErrorIs(t, err, variety.ErrInvalidWeight)

	_, err = par.WeightMultiplicities([]int{1, 0, 0, 0, 0, 0})
	assert.ErrorIs(t, err, variety.ErrInvalidWeight)

	// Negative entry at an uncrossed node is not dominant for the Levi.
	_, err = par.WeightMultiplicities([]int{0, -1, 0, 0, 0})
	assert.ErrorIs(t, err, variety.ErrInvalidWeight)
}

func TestWeightMultiplicities_Borel(t *testing.T) {
	a2 := cartan.MustNew(cartan.SeriesA, 2)
	par, err := variety.NewParabolic(a2, nil, []int{1, 2})
	require.NoError(t, err)

	ws, err := par.WeightMultiplicities([]int{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 1, ws.Rank())
}

func TestWeightSet_MergeAndOrder(t *testing.T) {
	s := variety.NewWeightSet()
	v1 := []*big.Rat{big.NewRat(1, 1), big.NewRat(0, 1)}
	v2 := []*big.Rat{big.NewRat(0, 1), big.NewRat(1, 1)}
	s.Add(v1, 1)
	s.Add(v2, 2)
	s.Add(v1, 1) // merges with the first entry

	o := variety.NewWeightSet()
	o.Add(v2, 1)
	s.Merge(o)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 5, s.Rank())

	var mults []int
	s.Each(func(_ []*big.Rat, mult int) {
		mults = append(mults, mult)
	})
	assert.Equal(t, []int{2, 3}, mults)
}
