// SPDX-License-Identifier: MIT

package variety

import (
	"math/big"

	"github.com/equilocus/flagchern/poly"
)

// ChernNumber integrates the product of the tangent Chern classes
// picked out by degrees over v. It is 0 whenever the degrees do not sum
// to the dimension, including the empty product on a 0-dimensional
// variety, which integrates the unit class.
func ChernNumber(v Variety, degrees []int, opts ...IntegrateOption) (*big.Int, error) {
	if v == nil {
		return nil, ErrNilSpace
	}
	sum := 0
	for _, d := range degrees {
		sum += d
	}
	if sum != v.Dimension() {
		return big.NewInt(0), nil
	}
	c := v.ChernClasses()
	p := v.Ring().One()
	for _, d := range degrees {
		p = p.Mul(c.Class(d))
	}
	return v.Integrate(poly.SplitByDegree(p, v.Dimension()), opts...)
}

// ChernCharacter returns the Chern character of e through the base's
// calculus. Entry 0 is the rank; entry k is p_k/k! in the Chern roots.
func ChernCharacter(e VectorBundle) *poly.Graded {
	return e.Base().Calculus().Character(e.ChernClasses(), e.Rank())
}

// ToddClasses returns the Todd classes of the tangent bundle of v.
func ToddClasses(v Variety) *poly.Graded {
	return v.Calculus().Todd(v.ChernClasses())
}

// EulerCharacteristic computes χ(v, e) by Hirzebruch–Riemann–Roch:
// the integral of ch(e)·td(v) in degree dim(v).
func EulerCharacteristic(v Variety, e VectorBundle, opts ...IntegrateOption) (*big.Int, error) {
	if v == nil {
		return nil, ErrNilSpace
	}
	if e == nil {
		return nil, ErrNilBundle
	}
	dim := v.Dimension()
	if dim < 0 {
		return big.NewInt(0), nil
	}
	ch := ChernCharacter(e)
	td := ToddClasses(v)
	p := v.Ring().Zero()
	for i := 0; i <= dim; i++ {
		p = p.Add(ch.Class(i).Mul(td.Class(dim - i)))
	}
	return v.Integrate(poly.SplitByDegree(p, dim), opts...)
}
