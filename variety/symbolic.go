// SPDX-License-Identifier: MIT

package variety

import (
	"math/big"

	"github.com/equilocus/flagchern/cartan"
	"github.com/equilocus/flagchern/poly"
)

// integrateSymbolic implements the exact localization: enumerate a
// transversal of the cosets W(P)\W(G), substitute each representative
// into top(f) and the tangent-weight product, and sum the rational
// functions. The sum collapses to a constant for an honest
// characteristic class.
func (h *HomogeneousSpace) integrateSymbolic(top *poly.Poly) (*big.Int, error) {
	group := h.weylGroup()
	sub := h.leviReflectionGroup()

	// Pop-and-remove coset enumeration: pick the first remaining
	// element, strike out its whole coset, repeat.
	remaining := make(map[string]struct{}, len(group))
	for _, m := range group {
		remaining[m.Key()] = struct{}{}
	}
	var reps []cartan.Matrix
	for _, m := range group {
		if _, ok := remaining[m.Key()]; !ok {
			continue
		}
		reps = append(reps, m)
		for _, s := range sub {
			delete(remaining, s.Mul(m).Key())
		}
	}
	if len(reps)*len(sub) != len(group) {
		panic("variety: coset enumeration did not partition the Weyl group")
	}

	denBase := h.ring.One()
	for _, form := range h.forms {
		denBase = denBase.Mul(form)
	}

	// Each representative substitutes x ↦ w·x into numerator and
	// denominator. The term only depends on the coset W(P)·w because an
	// honest class and the tangent-weight product are both invariant
	// under the Levi reflections acting on the left.
	num := h.ring.Zero()
	den := h.ring.One()
	for _, w := range reps {
		m := [][]*big.Rat(w)
		t := top.SubstituteLinear(m)
		d := denBase.SubstituteLinear(m)
		num = num.Mul(d).Add(t.Mul(den))
		den = den.Mul(d)
	}
	if num.IsZero() {
		return big.NewInt(0), nil
	}

	lead, _ := den.LeadingKey()
	dc := den.Coefficient(lead)
	nc := num.Coefficient(lead)
	c := new(big.Rat).Quo(nc, dc)
	if !num.Equal(den.Scale(c)) {
		return nil, ErrNonIntegerResult
	}
	if !c.IsInt() {
		return nil, ErrNonIntegerResult
	}
	return new(big.Int).Set(c.Num()), nil
}
