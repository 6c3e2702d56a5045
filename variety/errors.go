// SPDX-License-Identifier: MIT

package variety

import "errors"

// Sentinel errors returned by the variety package.
var (
	// ErrNilParabolic indicates that a nil *Parabolic was passed to
	// NewHomogeneousSpace.
	ErrNilParabolic = errors.New("variety: parabolic subgroup is nil")

	// ErrNilSpace indicates that a nil homogeneous space (or ambient
	// variety) was passed to a constructor that requires one.
	ErrNilSpace = errors.New("variety: homogeneous space is nil")

	// ErrNilBundle indicates that a nil vector bundle was passed to a
	// bundle operation.
	ErrNilBundle = errors.New("variety: vector bundle is nil")

	// ErrInvalidNode indicates a crossed-out Dynkin node outside 1..rank
	// or listed twice.
	ErrInvalidNode = errors.New("variety: crossed-out node out of range")

	// ErrDimensionMismatch indicates that the Levi rank does not match
	// rank(G) minus the number of crossed-out nodes, or that a graded
	// class lives in a different coordinate ring than the variety.
	ErrDimensionMismatch = errors.New("variety: rank or ring dimension mismatch")

	// ErrInvalidWeight indicates a weight vector of the wrong length, or
	// one that is not dominant for the Levi factor.
	ErrInvalidWeight = errors.New("variety: invalid weight")

	// ErrBaseMismatch indicates that two bundles involved in an algebra
	// operation do not share the identical base variety instance.
	ErrBaseMismatch = errors.New("variety: bundles have different base varieties")

	// ErrInvalidOption indicates an unrecognized integration mode.
	ErrInvalidOption = errors.New("variety: unknown integration mode")

	// ErrInvalidPower indicates a negative symmetric or wedge power.
	ErrInvalidPower = errors.New("variety: power must be non-negative")

	// ErrDegenerateSample indicates that the numeric integrator's random
	// sample landed on the vanishing locus of the localization
	// denominator. Callers are expected to retry with a fresh sample.
	ErrDegenerateSample = errors.New("variety: sample point annihilates the localization denominator")

	// ErrNonIntegerResult indicates that a localization sum did not
	// reduce to an integer within tolerance. It signals either
	// insufficient precision or an input that is not an honest
	// characteristic class; the partial value is never returned.
	ErrNonIntegerResult = errors.New("variety: localization sum is not an integer")
)
