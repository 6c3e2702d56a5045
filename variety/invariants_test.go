// SPDX-License-Identifier: MIT

package variety_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equilocus/flagchern/variety"
)

func TestEulerCharacteristic_LineBundlesOnP4(t *testing.T) {
	h := projectiveFour(t)
	cases := []struct {
		twist int
		want  int64 // χ(P⁴, O(d)) = C(d+4, 4)
	}{
		{3, 35},
		{1, 5},
		{0, 1},
		{-1, 0},
	}
	for _, tc := range cases {
		e := lineBundle(t, h, tc.twist)
		chi, err := variety.EulerCharacteristic(h, e, variety.WithSeed(23))
		require.NoError(t, err)
		assert.Zero(t, chi.Cmp(big.NewInt(tc.want)), "twist %d", tc.twist)

		sym, err := variety.EulerCharacteristic(h, e, variety.WithMode(variety.ModeSymbolic))
		require.NoError(t, err)
		assert.Zero(t, sym.Cmp(big.NewInt(tc.want)), "twist %d symbolic", tc.twist)
	}
}

func TestEulerCharacteristic_StructureSheafOfFlag(t *testing.T) {
	h := fullFlagA2(t)
	triv, err := variety.NewIrreducibleBundle(h, []int{0, 0})
	require.NoError(t, err)
	chi, err := variety.EulerCharacteristic(h, triv, variety.WithSeed(29))
	require.NoError(t, err)
	assert.Zero(t, chi.Cmp(big.NewInt(1)))
}

func TestChernCharacter_LineBundle(t *testing.T) {
	h := projectiveFour(t)
	e := lineBundle(t, h, 3)
	ch := variety.ChernCharacter(e)

	// ch(O(3)) = e^{3x0}: ch_k = (3x0)^k / k!.
	x0 := h.Ring().Var(0)
	assert.True(t, ch.Class(0).Equal(h.Ring().One()))
	assert.True(t, ch.Class(1).Equal(x0.Scale(big.NewRat(3, 1))))
	assert.True(t, ch.Class(2).Equal(x0.Pow(2).Scale(big.NewRat(9, 2))))
	assert.True(t, ch.Class(3).Equal(x0.Pow(3).Scale(big.NewRat(9, 2))))
}

func TestToddClasses_LeadingTerms(t *testing.T) {
	h := projectiveFour(t)
	td := variety.ToddClasses(h)
	c := h.ChernClasses()

	assert.True(t, td.Class(0).Equal(h.Ring().One()))
	assert.True(t, td.Class(1).Equal(c.Class(1).Scale(big.NewRat(1, 2))))
	want2 := c.Class(1).Pow(2).Add(c.Class(2)).Scale(big.NewRat(1, 12))
	assert.True(t, td.Class(2).Equal(want2))
}

func TestChernNumber_DegreeMismatch(t *testing.T) {
	h := projectiveFour(t)
	for _, degrees := range [][]int{{1}, {2, 1}, {1, 1, 1, 1, 1}, nil} {
		got, err := variety.ChernNumber(h, degrees)
		require.NoError(t, err)
		assert.Zero(t, got.Sign(), "degrees %v", degrees)
	}
}

func TestInvariants_NilArguments(t *testing.T) {
	h := projectiveFour(t)

	_, err := variety.ChernNumber(nil, []int{4})
	assert.ErrorIs(t, err, variety.ErrNilSpace)

	_, err = variety.EulerCharacteristic(nil, lineBundle(t, h, 1))
	assert.ErrorIs(t, err, variety.ErrNilSpace)

	_, err = variety.EulerCharacteristic(h, nil)
	assert.ErrorIs(t, err, variety.ErrNilBundle)
}
