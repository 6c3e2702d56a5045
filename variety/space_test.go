// SPDX-License-Identifier: MIT

package variety_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equilocus/flagchern/cartan"
	"github.com/equilocus/flagchern/poly"
	"github.com/equilocus/flagchern/variety"
)

// projectiveFour is P⁴ = A4/P1 with Levi factor A3.
func projectiveFour(t *testing.T) *variety.HomogeneousSpace {
	t.Helper()
	h, err := variety.NewHomogeneousSpace(projectiveParabolic(t))
	require.NoError(t, err)
	return h
}

// fullFlagA2 is the full flag threefold of A2 (Borel case, nil Levi).
func fullFlagA2(t *testing.T) *variety.HomogeneousSpace {
	t.Helper()
	par, err := variety.NewParabolic(cartan.MustNew(cartan.SeriesA, 2), nil, []int{1, 2})
	require.NoError(t, err)
	h, err := variety.NewHomogeneousSpace(par)
	require.NoError(t, err)
	return h
}

// integrateBoth runs both localization strategies and requires them to
// agree before returning the common value.
func integrateBoth(t *testing.T, v variety.Variety, f *poly.Graded) *big.Int {
	t.Helper()
	num, err := v.Integrate(f, variety.WithSeed(7))
	require.NoError(t, err)
	sym, err := v.Integrate(f, variety.WithMode(variety.ModeSymbolic))
	require.NoError(t, err)
	require.Zero(t, num.Cmp(sym), "numeric %s vs symbolic %s", num, sym)
	return num
}

func TestHomogeneousSpace_NilParabolic(t *testing.T) {
	_, err := variety.NewHomogeneousSpace(nil)
	assert.ErrorIs(t, err, variety.ErrNilParabolic)
}

func TestHomogeneousSpace_ProjectiveFour(t *testing.T) {
	h := projectiveFour(t)
	assert.Equal(t, 4, h.Dimension())
	assert.Equal(t, 5, h.Ring().N())

	c := h.ChernClasses()
	assert.True(t, c.Class(0).Equal(h.Ring().One()))

	// c1 is the sum of the tangent weights x0−xj.
	want := h.Ring().Linear([]*big.Rat{
		big.NewRat(4, 1), big.NewRat(-1, 1), big.NewRat(-1, 1),
		big.NewRat(-1, 1), big.NewRat(-1, 1),
	})
	assert.True(t, c.Class(1).Equal(want))
}

func TestHomogeneousSpace_TangentAndCotangent(t *testing.T) {
	h := projectiveFour(t)
	tan := h.TangentBundle()
	cot := h.CotangentBundle()
	assert.Equal(t, 4, tan.Rank())
	assert.Equal(t, 4, cot.Rank())
	assert.True(t, tan.ChernClasses().Class(1).Equal(cot.ChernClasses().Class(1).Neg()))
	assert.True(t, tan.ChernClasses().Equal(h.ChernClasses()))
}

func TestIntegrate_PointClass(t *testing.T) {
	h := projectiveFour(t)
	// ∫ x0⁴ over P⁴ is 1 (the class of a point).
	f := poly.SplitByDegree(h.Ring().Var(0).Pow(4), 4)
	assert.Zero(t, integrateBoth(t, h, f).Cmp(big.NewInt(1)))
}

func TestIntegrate_ZeroTopDegree(t *testing.T) {
	h := projectiveFour(t)
	f := poly.SplitByDegree(h.Ring().Var(0).Pow(2), 4)
	got, err := h.Integrate(f)
	require.NoError(t, err)
	assert.Zero(t, got.Sign())
}

func TestIntegrate_UnknownMode(t *testing.T) {
	h := projectiveFour(t)
	f := poly.SplitByDegree(h.Ring().Var(0).Pow(4), 4)
	_, err := h.Integrate(f, variety.WithMode("montecarlo"))
	assert.ErrorIs(t, err, variety.ErrInvalidOption)
}

func TestIntegrate_ForeignRing(t *testing.T) {
	h := projectiveFour(t)
	other := poly.SymbolRing("y", 0, 5)
	f := poly.SplitByDegree(other.Var(0).Pow(4), 4)
	_, err := h.Integrate(f)
	assert.ErrorIs(t, err, variety.ErrDimensionMismatch)
}

func TestIntegrate_Workers(t *testing.T) {
	h := projectiveFour(t)
	f := poly.SplitByDegree(h.Ring().Var(0).Pow(4), 4)
	got, err := h.Integrate(f, variety.WithWorkers(4), variety.WithSeed(11))
	require.NoError(t, err)
	assert.Zero(t, got.Cmp(big.NewInt(1)))
}

func TestChernNumbers_ProjectiveFour(t *testing.T) {
	h := projectiveFour(t)
	cases := []struct {
		degrees []int
		want    int64
	}{
		{[]int{4}, 5},            // Euler number of P⁴
		{[]int{1, 1, 1, 1}, 625}, // c1⁴ = (5h)⁴
		{[]int{2, 2}, 100},       // c2² = (10h²)²
		{[]int{1, 3}, 50},        // c1·c3 = 5h·10h³
	}
	for _, tc := range cases {
		num, err := variety.ChernNumber(h, tc.degrees, variety.WithSeed(3))
		require.NoError(t, err)
		sym, err := variety.ChernNumber(h, tc.degrees, variety.WithMode(variety.ModeSymbolic))
		require.NoError(t, err)
		assert.Zero(t, num.Cmp(big.NewInt(tc.want)), "degrees %v", tc.degrees)
		assert.Zero(t, sym.Cmp(big.NewInt(tc.want)), "degrees %v", tc.degrees)
	}
}

func TestFullFlag_Borel(t *testing.T) {
	h := fullFlagA2(t)
	assert.Equal(t, 3, h.Dimension())

	// Euler number equals the Weyl group order, c1·c2 = 24·(Todd genus 1).
	euler, err := variety.ChernNumber(h, []int{3}, variety.WithSeed(5))
	require.NoError(t, err)
	assert.Zero(t, euler.Cmp(big.NewInt(6)))

	f := poly.SplitByDegree(h.ChernClasses().Class(1).Mul(h.ChernClasses().Class(2)), 3)
	assert.Zero(t, integrateBoth(t, h, f).Cmp(big.NewInt(24)))
}

func TestZeroDimensionalSpace(t *testing.T) {
	a1 := cartan.MustNew(cartan.SeriesA, 1)
	par, err := variety.NewParabolic(a1, &a1, nil)
	require.NoError(t, err)
	h, err := variety.NewHomogeneousSpace(par)
	require.NoError(t, err)
	assert.Equal(t, 0, h.Dimension())

	// The empty-partition Chern number of a point is 1.
	got, err := variety.ChernNumber(h, nil)
	require.NoError(t, err)
	assert.Zero(t, got.Cmp(big.NewInt(1)))

	f := poly.SplitByDegree(h.Ring().One(), 0)
	assert.Zero(t, integrateBoth(t, h, f).Cmp(big.NewInt(1)))
}

func TestGradedClass_SplitIdempotence(t *testing.T) {
	h := projectiveFour(t)
	c := h.ChernClasses()
	again := poly.SplitByDegree(c.Total(), c.Dim())
	assert.True(t, c.Equal(again))
}
