// SPDX-License-Identifier: MIT

package variety

import (
	"math/big"

	"github.com/equilocus/flagchern/poly"
)

// Variety is the capability set shared by HomogeneousSpace and
// CompleteIntersection: a dimension, a coordinate ring, tangent Chern
// classes, and a localization integral.
type Variety interface {
	// Dimension returns the complex dimension. It is negative for a
	// complete intersection cut out by a bundle of rank larger than the
	// ambient dimension.
	Dimension() int

	// Ring returns the ambient coordinate ring all classes live in.
	Ring() *poly.Ring

	// ChernClasses returns the Chern classes of the tangent bundle,
	// graded by cohomological degree from 0 to Dimension.
	ChernClasses() *poly.Graded

	// Integrate evaluates the definite integral of the top-degree part
	// of f over the variety.
	Integrate(f *poly.Graded, opts ...IntegrateOption) (*big.Int, error)

	// Calculus returns the Chern-class calculus used for universal
	// polynomial substitutions (Chern character, Todd class, tensor and
	// power formulas).
	Calculus() Calculus
}

// VectorBundle is the capability set shared by equivariant bundles and
// the derived bundles produced by the algebra operations.
type VectorBundle interface {
	// Base returns the variety the bundle lives on. Derived bundles
	// share their operands' base instance.
	Base() Variety

	// Rank returns the rank of the bundle.
	Rank() int

	// ChernClasses returns the Chern classes graded by degree from 0 to
	// the base dimension.
	ChernClasses() *poly.Graded
}

// Calculus is the universal Chern-class identity engine. Given formal
// ranks and graded Chern classes it returns the classes of derived
// bundles; it never inspects the underlying variety.
type Calculus interface {
	Character(c *poly.Graded, rank int) *poly.Graded
	Todd(c *poly.Graded) *poly.Graded
	Product(rank1 int, c1 *poly.Graded, rank2 int, c2 *poly.Graded) (int, *poly.Graded)
	SymmetricPower(k, rank int, c *poly.Graded) (int, *poly.Graded)
	WedgePower(k, rank int, c *poly.Graded) (int, *poly.Graded)
}
