// SPDX-License-Identifier: MIT

package poly

import (
	"math/big"
	"sort"
	"strings"
)

// Poly is an immutable sparse polynomial with rational coefficients.
// Terms map a packed exponent key to a non-zero coefficient.
type Poly struct {
	ring  *Ring
	terms map[string]*big.Rat
}

// Ring returns the ring p belongs to.
func (p *Poly) Ring() *Ring { return p.ring }

func (p *Poly) check(q *Poly) {
	if !p.ring.Compatible(q.ring) {
		panic("poly: operands belong to incompatible rings")
	}
}

// IsZero reports whether p has no terms.
func (p *Poly) IsZero() bool { return len(p.terms) == 0 }

// NumTerms reports the number of stored monomials.
func (p *Poly) NumTerms() int { return len(p.terms) }

// Constant returns the degree-zero coefficient of p.
func (p *Poly) Constant() *big.Rat {
	c, ok := p.terms[string(make([]byte, p.ring.N()))]
	if !ok {
		return new(big.Rat)
	}
	return new(big.Rat).Set(c)
}

// Coefficient returns the coefficient of the monomial x^exps.
func (p *Poly) Coefficient(exps []int) *big.Rat {
	if len(exps) != p.ring.N() {
		panic("poly: exponent vector length mismatch")
	}
	c, ok := p.terms[encodeExps(exps)]
	if !ok {
		return new(big.Rat)
	}
	return new(big.Rat).Set(c)
}

// Each calls fn for every stored term in an unspecified order.
func (p *Poly) Each(fn func(exps []int, coeff *big.Rat)) {
	for k, c := range p.terms {
		fn(decodeExps(k), new(big.Rat).Set(c))
	}
}

// Clone returns an independent copy of p.
func (p *Poly) Clone() *Poly {
	out := p.ring.Zero()
	for k, c := range p.terms {
		out.terms[k] = new(big.Rat).Set(c)
	}
	return out
}

func (p *Poly) addScaledInPlace(q *Poly, scale *big.Rat) {
	for k, c := range q.terms {
		delta := new(big.Rat).Mul(c, scale)
		if cur, ok := p.terms[k]; ok {
			cur.Add(cur, delta)
			if cur.Sign() == 0 {
				delete(p.terms, k)
			}
		} else if delta.Sign() != 0 {
			p.terms[k] = delta
		}
	}
}

// Add returns p + q.
func (p *Poly) Add(q *Poly) *Poly {
	p.check(q)
	out := p.Clone()
	out.addScaledInPlace(q, big.NewRat(1, 1))
	return out
}

// Sub returns p − q.
func (p *Poly) Sub(q *Poly) *Poly {
	p.check(q)
	out := p.Clone()
	out.addScaledInPlace(q, big.NewRat(-1, 1))
	return out
}

// Neg returns −p.
func (p *Poly) Neg() *Poly { return p.Scale(big.NewRat(-1, 1)) }

// Scale returns q·p.
func (p *Poly) Scale(q *big.Rat) *Poly {
	out := p.ring.Zero()
	if q.Sign() == 0 {
		return out
	}
	for k, c := range p.terms {
		out.terms[k] = new(big.Rat).Mul(c, q)
	}
	return out
}

// Mul returns p·q.
func (p *Poly) Mul(q *Poly) *Poly {
	p.check(q)
	out := p.ring.Zero()
	for ka, ca := range p.terms {
		for kb, cb := range q.terms {
			k := addKeys(ka, kb)
			prod := new(big.Rat).Mul(ca, cb)
			if cur, ok := out.terms[k]; ok {
				cur.Add(cur, prod)
				if cur.Sign() == 0 {
					delete(out.terms, k)
				}
			} else if prod.Sign() != 0 {
				out.terms[k] = prod
			}
		}
	}
	return out
}

// Pow returns p^k for k ≥ 0.
func (p *Poly) Pow(k int) *Poly {
	if k < 0 {
		panic("poly: negative exponent")
	}
	out := p.ring.One()
	base := p
	for k > 0 {
		if k&1 == 1 {
			out = out.Mul(base)
		}
		k >>= 1
		if k > 0 {
			base = base.Mul(base)
		}
	}
	return out
}

// MaxDegree returns the largest total degree of a stored term, or 0 for
// the zero polynomial.
func (p *Poly) MaxDegree() int {
	d := 0
	for k := range p.terms {
		if kd := keyDegree(k); kd > d {
			d = kd
		}
	}
	return d
}

// HomogeneousPart returns the sum of terms whose total degree equals d.
func (p *Poly) HomogeneousPart(d int) *Poly {
	out := p.ring.Zero()
	for k, c := range p.terms {
		if keyDegree(k) == d {
			out.terms[k] = new(big.Rat).Set(c)
		}
	}
	return out
}

// IsHomogeneous reports whether every term of p has total degree d.
// The zero polynomial is homogeneous of every degree.
func (p *Poly) IsHomogeneous(d int) bool {
	for k := range p.terms {
		if keyDegree(k) != d {
			return false
		}
	}
	return true
}

// Truncate drops every term of total degree greater than d.
func (p *Poly) Truncate(d int) *Poly {
	out := p.ring.Zero()
	for k, c := range p.terms {
		if keyDegree(k) <= d {
			out.terms[k] = new(big.Rat).Set(c)
		}
	}
	return out
}

// Equal reports whether p and q store the same terms.
func (p *Poly) Equal(q *Poly) bool {
	p.check(q)
	if len(p.terms) != len(q.terms) {
		return false
	}
	for k, c := range p.terms {
		d, ok := q.terms[k]
		if !ok || c.Cmp(d) != 0 {
			return false
		}
	}
	return true
}

// SubstituteLinear applies the linear change of variables
// x_i ↦ Σ_j m[i][j]·x_j and returns the resulting polynomial.
func (p *Poly) SubstituteLinear(m [][]*big.Rat) *Poly {
	n := p.ring.N()
	if len(m) != n {
		panic("poly: substitution matrix has wrong shape")
	}
	forms := make([]*Poly, n)
	for i := 0; i < n; i++ {
		if len(m[i]) != n {
			panic("poly: substitution matrix has wrong shape")
		}
		forms[i] = p.ring.Linear(m[i])
	}
	// powers[i][e] caches forms[i]^e.
	powers := make([]map[int]*Poly, n)
	for i := range powers {
		powers[i] = map[int]*Poly{0: p.ring.One(), 1: forms[i]}
	}
	var pow func(i, e int) *Poly
	pow = func(i, e int) *Poly {
		if q, ok := powers[i][e]; ok {
			return q
		}
		q := pow(i, e-1).Mul(forms[i])
		powers[i][e] = q
		return q
	}
	out := p.ring.Zero()
	for k, c := range p.terms {
		term := p.ring.Constant(c)
		exps := decodeExps(k)
		for i, e := range exps {
			if e > 0 {
				term = term.Mul(pow(i, e))
			}
		}
		out.addScaledInPlace(term, big.NewRat(1, 1))
	}
	return out
}

// SubstitutePoly replaces variable i of p by vals[i] (all in the target
// ring) and returns the resulting polynomial over target.
func (p *Poly) SubstitutePoly(target *Ring, vals []*Poly) *Poly {
	if len(vals) != p.ring.N() {
		panic("poly: substitution values length mismatch")
	}
	for _, v := range vals {
		if !v.ring.Compatible(target) {
			panic("poly: substitution value belongs to a different ring")
		}
	}
	out := target.Zero()
	for k, c := range p.terms {
		term := target.Constant(c)
		exps := decodeExps(k)
		for i, e := range exps {
			if e > 0 {
				term = term.Mul(vals[i].Pow(e))
			}
		}
		out.addScaledInPlace(term, big.NewRat(1, 1))
	}
	return out
}

// EvalRat evaluates p at the given rational point.
func (p *Poly) EvalRat(vals []*big.Rat) *big.Rat {
	if len(vals) != p.ring.N() {
		panic("poly: evaluation point length mismatch")
	}
	sum := new(big.Rat)
	for k, c := range p.terms {
		term := new(big.Rat).Set(c)
		exps := decodeExps(k)
		for i, e := range exps {
			for j := 0; j < e; j++ {
				term.Mul(term, vals[i])
			}
		}
		sum.Add(sum, term)
	}
	return sum
}

// EvalFloat evaluates p at the given floating point with prec bits of
// working precision. Only the numeric localization path uses it.
func (p *Poly) EvalFloat(vals []*big.Float, prec uint) *big.Float {
	if len(vals) != p.ring.N() {
		panic("poly: evaluation point length mismatch")
	}
	sum := new(big.Float).SetPrec(prec)
	term := new(big.Float).SetPrec(prec)
	for k, c := range p.terms {
		term.SetRat(c)
		exps := decodeExps(k)
		for i, e := range exps {
			for j := 0; j < e; j++ {
				term.Mul(term, vals[i])
			}
		}
		sum.Add(sum, term)
	}
	return sum
}

// sortedKeys returns the term keys ordered by (total degree, packed
// exponents); the order is canonical and stable across runs.
func (p *Poly) sortedKeys() []string {
	keys := make([]string, 0, len(p.terms))
	for k := range p.terms {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		di, dj := keyDegree(keys[i]), keyDegree(keys[j])
		if di != dj {
			return di < dj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// LeadingKey returns the exponent vector of the canonical leading term
// (highest total degree, then lexicographically greatest packed
// exponents) and false for the zero polynomial.
func (p *Poly) LeadingKey() ([]int, bool) {
	if p.IsZero() {
		return nil, false
	}
	keys := p.sortedKeys()
	return decodeExps(keys[len(keys)-1]), true
}

// String renders p canonically; equal polynomials render identically,
// which makes the result usable as a memoization key.
func (p *Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	for idx, k := range p.sortedKeys() {
		if idx > 0 {
			sb.WriteString(" + ")
		}
		c := p.terms[k]
		sb.WriteString(c.RatString())
		for i := 0; i < len(k); i++ {
			e := int(k[i])
			if e == 0 {
				continue
			}
			sb.WriteByte('*')
			sb.WriteString(p.ring.Name(i))
			if e > 1 {
				sb.WriteByte('^')
				sb.WriteString(itoa(e))
			}
		}
	}
	return sb.String()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var b [8]byte
	i := len(b)
	for n > 0 {
		i--
		b[i] = byte('0' + n%10)
		n /= 10
	}
	return string(b[i:])
}
