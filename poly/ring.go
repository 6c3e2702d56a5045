// SPDX-License-Identifier: MIT

package poly

import (
	"math/big"
	"strconv"
)

// Ring is an ordered set of variable names over the rationals.
// A Ring is immutable after construction.
type Ring struct {
	names []string
}

// NewRing builds a ring with the given variable names.
// Panics on an empty or duplicated name set (programmer error).
func NewRing(names ...string) *Ring {
	if len(names) == 0 {
		panic("poly: ring requires at least one variable")
	}
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n == "" {
			panic("poly: empty variable name")
		}
		if _, dup := seen[n]; dup {
			panic("poly: duplicate variable name " + n)
		}
		seen[n] = struct{}{}
	}
	return &Ring{names: append([]string(nil), names...)}
}

// SymbolRing builds a ring of count variables named prefix+start,
// prefix+start+1, … (e.g. SymbolRing("x", 0, 5) → x0..x4).
func SymbolRing(prefix string, start, count int) *Ring {
	if count <= 0 {
		panic("poly: ring requires at least one variable")
	}
	names := make([]string, count)
	for i := 0; i < count; i++ {
		names[i] = prefix + strconv.Itoa(start+i)
	}
	return NewRing(names...)
}

// N reports the number of variables.
func (r *Ring) N() int { return len(r.names) }

// Name returns the name of variable i.
func (r *Ring) Name(i int) string { return r.names[i] }

// Compatible reports whether two rings carry the same ordered variable set.
// Polynomials from compatible rings may be combined freely.
func (r *Ring) Compatible(s *Ring) bool {
	if r == s {
		return true
	}
	if s == nil || len(r.names) != len(s.names) {
		return false
	}
	for i, n := range r.names {
		if s.names[i] != n {
			return false
		}
	}
	return true
}

// Zero returns the zero polynomial of r.
func (r *Ring) Zero() *Poly {
	return &Poly{ring: r, terms: map[string]*big.Rat{}}
}

// One returns the unit polynomial of r.
func (r *Ring) One() *Poly { return r.Int(1) }

// Int returns the constant polynomial n.
func (r *Ring) Int(n int64) *Poly {
	return r.Constant(big.NewRat(n, 1))
}

// Constant returns the constant polynomial q.
func (r *Ring) Constant(q *big.Rat) *Poly {
	p := r.Zero()
	if q.Sign() != 0 {
		p.terms[string(make([]byte, r.N()))] = new(big.Rat).Set(q)
	}
	return p
}

// Var returns the degree-one monomial for variable i.
func (r *Ring) Var(i int) *Poly {
	if i < 0 || i >= r.N() {
		panic("poly: variable index out of range")
	}
	exps := make([]int, r.N())
	exps[i] = 1
	return r.Monomial(exps, big.NewRat(1, 1))
}

// Monomial returns coeff·x^exps.
func (r *Ring) Monomial(exps []int, coeff *big.Rat) *Poly {
	if len(exps) != r.N() {
		panic("poly: exponent vector length mismatch")
	}
	p := r.Zero()
	if coeff.Sign() == 0 {
		return p
	}
	p.terms[encodeExps(exps)] = new(big.Rat).Set(coeff)
	return p
}

// Linear returns the linear form Σ coeffs[i]·x_i.
func (r *Ring) Linear(coeffs []*big.Rat) *Poly {
	if len(coeffs) != r.N() {
		panic("poly: coefficient vector length mismatch")
	}
	p := r.Zero()
	for i, c := range coeffs {
		if c.Sign() == 0 {
			continue
		}
		exps := make([]byte, r.N())
		exps[i] = 1
		p.terms[string(exps)] = new(big.Rat).Set(c)
	}
	return p
}

func encodeExps(exps []int) string {
	b := make([]byte, len(exps))
	for i, e := range exps {
		if e < 0 || e > 255 {
			panic("poly: exponent out of the supported range [0,255]")
		}
		b[i] = byte(e)
	}
	return string(b)
}

func decodeExps(key string) []int {
	exps := make([]int, len(key))
	for i := 0; i < len(key); i++ {
		exps[i] = int(key[i])
	}
	return exps
}

func keyDegree(key string) int {
	d := 0
	for i := 0; i < len(key); i++ {
		d += int(key[i])
	}
	return d
}

func addKeys(a, b string) string {
	out := make([]byte, len(a))
	for i := 0; i < len(a); i++ {
		s := int(a[i]) + int(b[i])
		if s > 255 {
			panic("poly: exponent out of the supported range [0,255]")
		}
		out[i] = byte(s)
	}
	return string(out)
}
