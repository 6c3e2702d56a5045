// SPDX-License-Identifier: MIT

package variety

import "fmt"

// Mode selects the localization strategy used by Integrate.
type Mode string

const (
	// ModeNumeric samples one generic high-precision point and sums its
	// Weyl-orbit contributions in floating point. Fast, but subject to
	// rounding; the default.
	ModeNumeric Mode = "numeric"

	// ModeSymbolic sums exact rational functions over a coset
	// transversal of the Weyl group. Exact, but its cost grows with
	// |W(G)| / |W(L)|.
	ModeSymbolic Mode = "symbolic"
)

const (
	// DefaultPrecision is the mantissa size, in bits, of the numeric
	// integrator's sample point and arithmetic.
	DefaultPrecision uint = 1000

	// DefaultTolerance is how far the rounded localization sum may sit
	// from the nearest integer before the numeric integrator reports
	// ErrNonIntegerResult.
	DefaultTolerance = 1e-8
)

type integrateOptions struct {
	mode      Mode
	precision uint
	tolerance float64
	workers   int
	seed      int64
	hasSeed   bool
}

// IntegrateOption configures a single Integrate call.
type IntegrateOption func(*integrateOptions)

func newIntegrateOptions(opts []IntegrateOption) (*integrateOptions, error) {
	o := &integrateOptions{
		mode:      ModeNumeric,
		precision: DefaultPrecision,
		tolerance: DefaultTolerance,
		workers:   1,
	}
	for _, fn := range opts {
		fn(o)
	}
	if o.mode != ModeNumeric && o.mode != ModeSymbolic {
		return nil, fmt.Errorf("%q: %w", o.mode, ErrInvalidOption)
	}
	return o, nil
}

// WithMode selects the localization strategy. An unrecognized mode is
// reported as ErrInvalidOption by Integrate.
func WithMode(m Mode) IntegrateOption {
	return func(o *integrateOptions) {
		o.mode = m
	}
}

// WithPrecision sets the mantissa size of the numeric integrator.
// Must be at least 64 bits.
func WithPrecision(bits uint) IntegrateOption {
	if bits < 64 {
		panic("variety: precision below 64 bits")
	}
	return func(o *integrateOptions) {
		o.precision = bits
	}
}

// WithTolerance sets the integer-rounding tolerance of the numeric
// integrator. Must be positive.
func WithTolerance(tol float64) IntegrateOption {
	if tol <= 0 {
		panic("variety: tolerance must be positive")
	}
	return func(o *integrateOptions) {
		o.tolerance = tol
	}
}

// WithWorkers sets the number of goroutines evaluating orbit points in
// the numeric integrator. Must be positive; the default is 1.
func WithWorkers(n int) IntegrateOption {
	if n <= 0 {
		panic("variety: worker count must be positive")
	}
	return func(o *integrateOptions) {
		o.workers = n
	}
}

// WithSeed pins the numeric integrator's sample to a fixed random seed.
// Without it every call draws a fresh sample.
func WithSeed(seed int64) IntegrateOption {
	return func(o *integrateOptions) {
		o.seed = seed
		o.hasSeed = true
	}
}
