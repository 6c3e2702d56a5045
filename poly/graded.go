// SPDX-License-Identifier: MIT

package poly

import (
	"math/big"
	"strings"
)

// Graded is a degree-indexed list of homogeneous polynomials: entry i
// is the degree-i part of a cohomology class, for i = 0..Dim.
type Graded struct {
	ring    *Ring
	classes []*Poly
}

// NewGraded returns the zero graded class of the given dimension.
func NewGraded(r *Ring, dim int) *Graded {
	if dim < 0 {
		panic("poly: graded dimension must be non-negative")
	}
	classes := make([]*Poly, dim+1)
	for i := range classes {
		classes[i] = r.Zero()
	}
	return &Graded{ring: r, classes: classes}
}

// SplitByDegree splits p into homogeneous parts, dropping every term of
// degree greater than dim. Splitting is idempotent: re-splitting the
// Total of the result reproduces it.
func SplitByDegree(p *Poly, dim int) *Graded {
	g := NewGraded(p.Ring(), dim)
	for i := 0; i <= dim; i++ {
		g.classes[i] = p.HomogeneousPart(i)
	}
	return g
}

// Ring returns the underlying coordinate ring.
func (g *Graded) Ring() *Ring { return g.ring }

// Dim returns the top degree carried by g.
func (g *Graded) Dim() int { return len(g.classes) - 1 }

// Class returns the degree-i entry; indices above Dim yield zero.
func (g *Graded) Class(i int) *Poly {
	if i < 0 {
		panic("poly: negative class degree")
	}
	if i >= len(g.classes) {
		return g.ring.Zero()
	}
	return g.classes[i]
}

// SetClass replaces the degree-i entry. The value must be homogeneous of
// degree i; anything else is a programmer error.
func (g *Graded) SetClass(i int, p *Poly) {
	if i < 0 || i >= len(g.classes) {
		panic("poly: class degree out of range")
	}
	if !g.ring.Compatible(p.Ring()) {
		panic("poly: class belongs to an incompatible ring")
	}
	if !p.IsHomogeneous(i) {
		panic("poly: class entry is not homogeneous of its degree")
	}
	g.classes[i] = p
}

// Total sums all entries into a single inhomogeneous polynomial.
func (g *Graded) Total() *Poly {
	out := g.ring.Zero()
	for _, c := range g.classes {
		out = out.Add(c)
	}
	return out
}

// Add returns the degree-wise sum; the result carries the larger Dim.
func (g *Graded) Add(h *Graded) *Graded {
	if !g.ring.Compatible(h.ring) {
		panic("poly: graded operands belong to incompatible rings")
	}
	dim := g.Dim()
	if h.Dim() > dim {
		dim = h.Dim()
	}
	out := NewGraded(g.ring, dim)
	for i := 0; i <= dim; i++ {
		out.classes[i] = g.Class(i).Add(h.Class(i))
	}
	return out
}

// Mul returns the convolution product truncated to the given dimension.
func (g *Graded) Mul(h *Graded, dim int) *Graded {
	if !g.ring.Compatible(h.ring) {
		panic("poly: graded operands belong to incompatible rings")
	}
	out := NewGraded(g.ring, dim)
	for i := 0; i <= dim && i <= g.Dim(); i++ {
		if g.classes[i].IsZero() {
			continue
		}
		for j := 0; i+j <= dim && j <= h.Dim(); j++ {
			if h.classes[j].IsZero() {
				continue
			}
			out.classes[i+j] = out.classes[i+j].Add(g.classes[i].Mul(h.classes[j]))
		}
	}
	return out
}

// Scale multiplies every entry by q.
func (g *Graded) Scale(q *big.Rat) *Graded {
	out := NewGraded(g.ring, g.Dim())
	for i, c := range g.classes {
		out.classes[i] = c.Scale(q)
	}
	return out
}

// Truncate returns a copy carrying only degrees 0..dim.
func (g *Graded) Truncate(dim int) *Graded {
	out := NewGraded(g.ring, dim)
	for i := 0; i <= dim; i++ {
		out.classes[i] = g.Class(i).Clone()
	}
	return out
}

// Equal reports degree-wise equality up to the larger Dim.
func (g *Graded) Equal(h *Graded) bool {
	if !g.ring.Compatible(h.ring) {
		panic("poly: graded operands belong to incompatible rings")
	}
	dim := g.Dim()
	if h.Dim() > dim {
		dim = h.Dim()
	}
	for i := 0; i <= dim; i++ {
		if !g.Class(i).Equal(h.Class(i)) {
			return false
		}
	}
	return true
}

// String renders the entries per degree; canonical like Poly.String.
func (g *Graded) String() string {
	var sb strings.Builder
	for i, c := range g.classes {
		if i > 0 {
			sb.WriteString(" | ")
		}
		sb.WriteString(itoa(i))
		sb.WriteByte(':')
		sb.WriteString(c.String())
	}
	return sb.String()
}
