// SPDX-License-Identifier: MIT

package variety_test

import (
	"fmt"

	"github.com/equilocus/flagchern/cartan"
	"github.com/equilocus/flagchern/variety"
)

// The quintic threefold: the zero locus of a section of O(5) on P⁴.
// Its top Chern number is the famous Euler characteristic −200.
func Example_quinticThreefold() {
	levi := cartan.MustNew(cartan.SeriesA, 3)
	par, _ := variety.NewParabolic(cartan.MustNew(cartan.SeriesA, 4), &levi, []int{1})
	space, _ := variety.NewHomogeneousSpace(par)

	quintic, _ := variety.NewIrreducibleBundle(space, []int{5, 0, 0, 0, 0})
	x, _ := variety.NewCompleteIntersection(space, quintic)

	euler, _ := variety.ChernNumber(x, []int{3}, variety.WithMode(variety.ModeSymbolic))
	fmt.Println(x.Dimension(), euler)
	// Output: 3 -200
}

// Hirzebruch–Riemann–Roch on P⁴: χ(P⁴, O(3)) counts the degree-3
// monomials in five variables.
func ExampleEulerCharacteristic() {
	levi := cartan.MustNew(cartan.SeriesA, 3)
	par, _ := variety.NewParabolic(cartan.MustNew(cartan.SeriesA, 4), &levi, []int{1})
	space, _ := variety.NewHomogeneousSpace(par)

	cubic, _ := variety.NewIrreducibleBundle(space, []int{3, 0, 0, 0, 0})
	chi, _ := variety.EulerCharacteristic(space, cubic, variety.WithMode(variety.ModeSymbolic))
	fmt.Println(chi)
	// Output: 35
}
