// SPDX-License-Identifier: MIT

package variety

import (
	"fmt"
	"math/big"

	"github.com/equilocus/flagchern/poly"
)

// CompleteIntersection is the zero locus of a generic section of a
// bundle on a homogeneous space. It is never constructed as a variety
// of its own: dimension and Chern classes come from the adjunction
// formula, and integration pushes forward through the ambient space by
// multiplying with the bundle's top Chern class.
type CompleteIntersection struct {
	ambient *HomogeneousSpace
	bundle  VectorBundle
	dim     int
	classes *poly.Graded
}

// NewCompleteIntersection cuts the zero locus of a section of bundle
// out of ambient. The bundle must live on ambient itself.
func NewCompleteIntersection(ambient *HomogeneousSpace, bundle VectorBundle) (*CompleteIntersection, error) {
	if ambient == nil {
		return nil, ErrNilSpace
	}
	if bundle == nil {
		return nil, ErrNilBundle
	}
	if bundle.Base() != Variety(ambient) {
		return nil, ErrBaseMismatch
	}
	c := &CompleteIntersection{
		ambient: ambient,
		bundle:  bundle,
		dim:     ambient.Dimension() - bundle.Rank(),
	}
	c.classes = c.tangentClasses()
	return c, nil
}

// tangentClasses applies adjunction: c(T_X) = c(T_ambient)·c(N)⁻¹ with
// the normal bundle's inverse expanded as a truncated geometric series.
func (c *CompleteIntersection) tangentClasses() *poly.Graded {
	ring := c.ambient.Ring()
	if c.dim < 0 {
		empty := poly.NewGraded(ring, 0)
		empty.SetClass(0, ring.One())
		return empty
	}
	s := c.bundle.ChernClasses().Total().Sub(ring.One())
	inv := ring.One()
	pow := ring.One()
	neg := s.Neg()
	for i := 1; i <= c.dim; i++ {
		pow = pow.Mul(neg).Truncate(c.dim)
		inv = inv.Add(pow)
	}
	total := c.ambient.ChernClasses().Total().Mul(inv).Truncate(c.dim)
	return poly.SplitByDegree(total, c.dim)
}

// Ambient returns the homogeneous space the intersection sits in.
func (c *CompleteIntersection) Ambient() *HomogeneousSpace { return c.ambient }

// DefiningBundle returns the bundle whose section cuts out the locus.
func (c *CompleteIntersection) DefiningBundle() VectorBundle { return c.bundle }

// Dimension returns ambient dimension minus bundle rank; negative when
// the locus is empty.
func (c *CompleteIntersection) Dimension() int { return c.dim }

// Ring returns the ambient coordinate ring.
func (c *CompleteIntersection) Ring() *poly.Ring { return c.ambient.Ring() }

// Calculus returns the ambient space's Chern-class calculus.
func (c *CompleteIntersection) Calculus() Calculus { return c.ambient.Calculus() }

// ChernClasses returns the tangent Chern classes from adjunction.
func (c *CompleteIntersection) ChernClasses() *poly.Graded { return c.classes }

// Integrate pushes the integral forward: the top-degree part of f is
// multiplied by the top Chern class of the defining bundle and
// integrated over the ambient space. An empty locus integrates to 0.
func (c *CompleteIntersection) Integrate(f *poly.Graded, opts ...IntegrateOption) (*big.Int, error) {
	if f == nil || !f.Ring().Compatible(c.ambient.Ring()) {
		return nil, fmt.Errorf("graded class over a foreign ring: %w", ErrDimensionMismatch)
	}
	if c.dim < 0 {
		return big.NewInt(0), nil
	}
	top := f.Class(c.dim)
	euler := c.bundle.ChernClasses().Class(c.bundle.Rank())
	pushed := poly.NewGraded(c.ambient.Ring(), c.ambient.Dimension())
	pushed.SetClass(c.ambient.Dimension(), top.Mul(euler))
	return c.ambient.Integrate(pushed, opts...)
}
