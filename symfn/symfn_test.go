// SPDX-License-Identifier: MIT

package symfn_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equilocus/flagchern/poly"
	"github.com/equilocus/flagchern/symfn"
)

func rat(a, b int64) *big.Rat { return big.NewRat(a, b) }

func TestPartitions(t *testing.T) {
	assert.Equal(t, [][]int{{}}, symfn.Partitions(0))
	assert.Equal(t, [][]int{{1}}, symfn.Partitions(1))
	assert.Equal(t, [][]int{{3}, {2, 1}, {1, 1, 1}}, symfn.Partitions(3))
	assert.Len(t, symfn.Partitions(7), 15)
}

func TestElementarySymmetric(t *testing.T) {
	r := poly.SymbolRing("t", 0, 3)
	e2 := symfn.ElementarySymmetric(r, 2)
	want := r.Var(0).Mul(r.Var(1)).
		Add(r.Var(0).Mul(r.Var(2))).
		Add(r.Var(1).Mul(r.Var(2)))
	assert.True(t, e2.Equal(want))
	assert.True(t, symfn.ElementarySymmetric(r, 0).Equal(r.One()))
	assert.True(t, symfn.ElementarySymmetric(r, 4).IsZero())
}

func TestMonomialInChernClasses_Known(t *testing.T) {
	// m_{2,1} = c1·c2 − 3·c3 in dimension 3.
	got, err := symfn.MonomialInChernClasses(3, []int{2, 1})
	require.NoError(t, err)
	c := symfn.ChernRing(3)
	want := c.Var(0).Mul(c.Var(1)).Sub(c.Var(2).Scale(rat(3, 1)))
	assert.True(t, got.Equal(want))

	// m_{1,1} = c2 in dimension 2; m_{2} = c1² − 2c2.
	got, err = symfn.MonomialInChernClasses(2, []int{1, 1})
	require.NoError(t, err)
	c2ring := symfn.ChernRing(2)
	assert.True(t, got.Equal(c2ring.Var(1)))

	got, err = symfn.MonomialInChernClasses(2, []int{2})
	require.NoError(t, err)
	want = c2ring.Var(0).Pow(2).Sub(c2ring.Var(1).Scale(rat(2, 1)))
	assert.True(t, got.Equal(want))
}

func TestMonomialInChernClasses_PowerSumDim5(t *testing.T) {
	// m_{5} = c1^5 − 5c1³c2 + 5c1c2² + 5c1²c3 − 5c2c3 − 5c1c4 + 5c5.
	got, err := symfn.MonomialInChernClasses(5, []int{5})
	require.NoError(t, err)
	c := symfn.ChernRing(5)
	c1, c2, c3, c4, c5 := c.Var(0), c.Var(1), c.Var(2), c.Var(3), c.Var(4)
	want := c1.Pow(5).
		Sub(c1.Pow(3).Mul(c2).Scale(rat(5, 1))).
		Add(c1.Mul(c2.Pow(2)).Scale(rat(5, 1))).
		Add(c1.Pow(2).Mul(c3).Scale(rat(5, 1))).
		Sub(c2.Mul(c3).Scale(rat(5, 1))).
		Sub(c1.Mul(c4).Scale(rat(5, 1))).
		Add(c5.Scale(rat(5, 1)))
	assert.True(t, got.Equal(want))
}

func TestMonomialInChernClasses_SumOverPartitionsIsTotalDegreePart(t *testing.T) {
	// Σ_part m_part(roots) = complete homogeneous symmetric restricted to
	// monomials, i.e. substituting e_k(roots) back must reproduce the
	// degree-n part of Π over the same roots. Spot-check via evaluation.
	dim := 3
	// e1, e2, e3 at the roots 1, 2, 5.
	e := []*big.Rat{rat(8, 1), rat(17, 1), rat(10, 1)}
	total := new(big.Rat)
	for _, part := range symfn.Partitions(dim) {
		p, err := symfn.MonomialInChernClasses(dim, part)
		require.NoError(t, err)
		total.Add(total, p.EvalRat(e))
	}
	// Direct m_part sums at the roots: h-like sum of all degree-3 monomials
	// with distinct exponent multisets.
	want := new(big.Rat)
	add := func(q *big.Rat) { want.Add(want, q) }
	// m_{3} = 1+8+125
	add(rat(134, 1))
	// m_{2,1}: Σ x_i²x_j (i≠j) = (Σx²)(Σx) − Σx³ = 30·8 − 134 = 106
	add(rat(106, 1))
	// m_{1,1,1} = 10
	add(rat(10, 1))
	assert.Equal(t, 0, total.Cmp(want))
}

func TestMonomialInChernClasses_Errors(t *testing.T) {
	_, err := symfn.MonomialInChernClasses(3, []int{2, 2})
	assert.ErrorIs(t, err, symfn.ErrBadPartition)
	_, err = symfn.MonomialInChernClasses(3, []int{0, 3})
	assert.ErrorIs(t, err, symfn.ErrBadPartition)
	_, err = symfn.MonomialInChernClasses(0, nil)
	assert.ErrorIs(t, err, symfn.ErrBadPartition)
}
