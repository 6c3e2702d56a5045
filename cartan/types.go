// SPDX-License-Identifier: MIT

package cartan

import (
	"errors"
	"fmt"
)

// Sentinel errors for Cartan-data operations.
var (
	// ErrUnknownSeries indicates a series letter outside A, B, C, D.
	ErrUnknownSeries = errors.New("cartan: unknown series")

	// ErrBadRank indicates a rank below the minimum for the series.
	ErrBadRank = errors.New("cartan: rank out of range for series")

	// ErrWeightLength indicates a weight vector whose length is not the rank.
	ErrWeightLength = errors.New("cartan: weight length does not match rank")

	// ErrNotDominant indicates a highest weight with a negative coefficient.
	ErrNotDominant = errors.New("cartan: weight is not dominant")

	// ErrSingularSystem indicates an inconsistent linear system; it signals
	// internal misuse rather than a user-level condition.
	ErrSingularSystem = errors.New("cartan: singular or inconsistent linear system")
)

// Series is a classical Dynkin series letter.
type Series byte

// The supported classical series.
const (
	SeriesA Series = 'A'
	SeriesB Series = 'B'
	SeriesC Series = 'C'
	SeriesD Series = 'D'
)

// Datum is a classical Cartan type: a series together with its rank.
type Datum struct {
	Series Series
	Rank   int
}

// New validates and builds a Datum. Minimum ranks follow the usual
// non-redundant ranges: A≥1, B≥2, C≥2, D≥3.
func New(s Series, rank int) (Datum, error) {
	min := 0
	switch s {
	case SeriesA:
		min = 1
	case SeriesB, SeriesC:
		min = 2
	case SeriesD:
		min = 3
	default:
		return Datum{}, fmt.Errorf("%q: %w", string(s), ErrUnknownSeries)
	}
	if rank < min {
		return Datum{}, fmt.Errorf("%s%d: %w", string(s), rank, ErrBadRank)
	}
	return Datum{Series: s, Rank: rank}, nil
}

// MustNew is New that panics on invalid input; for fixed literals.
func MustNew(s Series, rank int) Datum {
	d, err := New(s, rank)
	if err != nil {
		panic(err)
	}
	return d
}

// String renders the usual label, e.g. "A4".
func (d Datum) String() string {
	return fmt.Sprintf("%s%d", string(d.Series), d.Rank)
}

// AmbientDim is the dimension of the ambient weight space in the
// standard realization: rank+1 for series A, rank otherwise.
func (d Datum) AmbientDim() int {
	if d.Series == SeriesA {
		return d.Rank + 1
	}
	return d.Rank
}
