// SPDX-License-Identifier: MIT

package variety

import (
	"math/big"

	"github.com/equilocus/flagchern/poly"
)

// derivedBundle carries the precomputed rank and Chern classes of a
// bundle produced by an algebra operation. It shares its operands' base
// instance.
type derivedBundle struct {
	base    Variety
	rank    int
	classes *poly.Graded
}

func (b *derivedBundle) Base() Variety              { return b.base }
func (b *derivedBundle) Rank() int                  { return b.rank }
func (b *derivedBundle) ChernClasses() *poly.Graded { return b.classes }

func checkOperands(e1, e2 VectorBundle) error {
	if e1 == nil || e2 == nil {
		return ErrNilBundle
	}
	if e1.Base() != e2.Base() {
		return ErrBaseMismatch
	}
	return nil
}

// Dual returns the dual bundle: same rank, Chern classes with
// alternating signs.
func Dual(e VectorBundle) (VectorBundle, error) {
	if e == nil {
		return nil, ErrNilBundle
	}
	c := e.ChernClasses()
	dim := c.Dim()
	out := poly.NewGraded(c.Ring(), dim)
	sign := big.NewRat(1, 1)
	for i := 0; i <= dim; i++ {
		out.SetClass(i, c.Class(i).Scale(sign))
		sign = new(big.Rat).Neg(sign)
	}
	return &derivedBundle{base: e.Base(), rank: e.Rank(), classes: out}, nil
}

// DirectSum returns E1 ⊕ E2: ranks add, total Chern classes multiply.
func DirectSum(e1, e2 VectorBundle) (VectorBundle, error) {
	if err := checkOperands(e1, e2); err != nil {
		return nil, err
	}
	dim := e1.Base().Dimension()
	total := e1.ChernClasses().Total().Mul(e2.ChernClasses().Total()).Truncate(dim)
	return &derivedBundle{
		base:    e1.Base(),
		rank:    e1.Rank() + e2.Rank(),
		classes: poly.SplitByDegree(total, dim),
	}, nil
}

// TensorProduct returns E1 ⊗ E2 through the universal Chern-class
// product formula of the base's calculus.
func TensorProduct(e1, e2 VectorBundle) (VectorBundle, error) {
	if err := checkOperands(e1, e2); err != nil {
		return nil, err
	}
	rank, classes := e1.Base().Calculus().Product(
		e1.Rank(), e1.ChernClasses(), e2.Rank(), e2.ChernClasses())
	return &derivedBundle{base: e1.Base(), rank: rank, classes: classes}, nil
}

// SymmetricPower returns Sym^k E. k must be non-negative.
func SymmetricPower(e VectorBundle, k int) (VectorBundle, error) {
	if e == nil {
		return nil, ErrNilBundle
	}
	if k < 0 {
		return nil, ErrInvalidPower
	}
	rank, classes := e.Base().Calculus().SymmetricPower(k, e.Rank(), e.ChernClasses())
	return &derivedBundle{base: e.Base(), rank: rank, classes: classes}, nil
}

// WedgePower returns Λ^k E. k must be non-negative; for k > rank the
// bundle vanishes (rank zero, total class 1).
func WedgePower(e VectorBundle, k int) (VectorBundle, error) {
	if e == nil {
		return nil, ErrNilBundle
	}
	if k < 0 {
		return nil, ErrInvalidPower
	}
	rank, classes := e.Base().Calculus().WedgePower(k, e.Rank(), e.ChernClasses())
	return &derivedBundle{base: e.Base(), rank: rank, classes: classes}, nil
}
