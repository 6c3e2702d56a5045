// SPDX-License-Identifier: MIT

package genus

import (
	"errors"
	"math/big"

	"github.com/equilocus/flagchern/chern"
	"github.com/equilocus/flagchern/poly"
	"github.com/equilocus/flagchern/symfn"
	"github.com/equilocus/flagchern/variety"
)

// ErrBadDimension indicates a negative dimension passed to ChiYClass.
var ErrBadDimension = errors.New("genus: dimension must be non-negative")

// ymul multiplies two coefficient vectors of polynomials in y.
func ymul(a, b []*big.Rat) []*big.Rat {
	out := make([]*big.Rat, len(a)+len(b)-1)
	for i := range out {
		out[i] = new(big.Rat)
	}
	tmp := new(big.Rat)
	for i, ai := range a {
		for j, bj := range b {
			tmp.Mul(ai, bj)
			out[i+j].Add(out[i+j], tmp)
		}
	}
	return out
}

// ChiYClass returns the universal chi-y polynomials of dimension dim:
// entry p is the coefficient of y^p, a polynomial in the abstract Chern
// classes c1..c_dim of symfn.ChernRing(dim).
//
// The per-root factor (1 − y·e^(−x))·x/(1 − e^(−x)) contributes
// t_k − y·u_k in degree k, with t the Todd series and u its convolution
// with e^(−x); the degree-dim part of the product over dim roots is the
// sum over partitions λ of Π_j (t_λj − y·u_λj) · (1−y)^(dim−len(λ))
// times the monomial symmetric function m_λ of the roots.
func ChiYClass(dim int) ([]*poly.Poly, error) {
	if dim < 0 {
		return nil, ErrBadDimension
	}
	if dim == 0 {
		// A point has no Chern classes; the constant 1 lives in the
		// smallest representable ring.
		return []*poly.Poly{symfn.ChernRing(1).One()}, nil
	}
	cring := symfn.ChernRing(dim)

	t := chern.ToddSeries(dim)
	e := chern.ExpSeries(-1, dim)
	u := make([]*big.Rat, dim+1)
	for k := 0; k <= dim; k++ {
		u[k] = new(big.Rat)
		for i := 0; i <= k; i++ {
			u[k].Add(u[k], new(big.Rat).Mul(e[i], t[k-i]))
		}
	}

	one := big.NewRat(1, 1)
	oneMinusY := []*big.Rat{one, big.NewRat(-1, 1)}

	out := make([]*poly.Poly, dim+1)
	for p := range out {
		out[p] = cring.Zero()
	}
	for _, part := range symfn.Partitions(dim) {
		m, err := symfn.MonomialInChernClasses(dim, part)
		if err != nil {
			return nil, err
		}
		yc := []*big.Rat{one}
		for _, k := range part {
			yc = ymul(yc, []*big.Rat{t[k], new(big.Rat).Neg(u[k])})
		}
		// The remaining dim−len(part) roots contribute their constant
		// term 1 − y each.
		for i := len(part); i < dim; i++ {
			yc = ymul(yc, oneMinusY)
		}
		for p, c := range yc {
			out[p] = out[p].Add(m.Scale(c))
		}
	}
	return out, nil
}

// ChiY computes the chi-y genus of v: entry p is χ(v, Ω^p), obtained by
// substituting the tangent Chern classes into ChiYClass and integrating
// each power of y.
func ChiY(v variety.Variety, opts ...variety.IntegrateOption) ([]*big.Int, error) {
	if v == nil {
		return nil, variety.ErrNilSpace
	}
	dim := v.Dimension()
	if dim < 0 {
		return []*big.Int{}, nil
	}
	classes, err := ChiYClass(dim)
	if err != nil {
		return nil, err
	}
	c := v.ChernClasses()
	nvars := dim
	if nvars == 0 {
		nvars = 1 // the dim-0 constant carries one unused variable
	}
	vals := make([]*poly.Poly, nvars)
	for k := 1; k <= nvars; k++ {
		vals[k-1] = c.Class(k)
	}
	out := make([]*big.Int, len(classes))
	for p, cls := range classes {
		f := cls.SubstitutePoly(v.Ring(), vals)
		out[p], err = v.Integrate(poly.SplitByDegree(f, dim), opts...)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
