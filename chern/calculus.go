// SPDX-License-Identifier: MIT

package chern

import (
	"math/big"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/equilocus/flagchern/poly"
)

// Std is the standard Chern-class calculus. It is stateless; the zero
// value is ready to use.
type Std struct{}

// powerSums converts Chern classes into Newton power sums of the Chern
// roots: p_k = Σ_{i<k} (−1)^{i−1}·c_i·p_{k−i} + (−1)^{k−1}·k·c_k.
func powerSums(c *poly.Graded, upTo int) []*poly.Poly {
	r := c.Ring()
	p := make([]*poly.Poly, upTo+1)
	p[0] = r.Zero() // unused; power sums start at k = 1
	for k := 1; k <= upTo; k++ {
		sum := r.Zero()
		sign := big.NewRat(1, 1)
		for i := 1; i < k; i++ {
			sum = sum.Add(c.Class(i).Mul(p[k-i]).Scale(sign))
			sign = new(big.Rat).Neg(sign)
		}
		sum = sum.Add(c.Class(k).Scale(new(big.Rat).Mul(sign, big.NewRat(int64(k), 1))))
		p[k] = sum
	}
	return p
}

// classesFromPowerSums inverts Newton's identities:
// k·c_k = Σ_{i=1..k} (−1)^{i−1}·c_{k−i}·p_i, with c_0 = 1.
func classesFromPowerSums(r *poly.Ring, p []*poly.Poly, dim int) *poly.Graded {
	out := poly.NewGraded(r, dim)
	out.SetClass(0, r.One())
	for k := 1; k <= dim; k++ {
		sum := r.Zero()
		sign := big.NewRat(1, 1)
		for i := 1; i <= k; i++ {
			sum = sum.Add(out.Class(k - i).Mul(p[i]).Scale(sign))
			sign = new(big.Rat).Neg(sign)
		}
		out.SetClass(k, sum.Scale(big.NewRat(1, int64(k))))
	}
	return out
}

// Character returns the Chern character of a rank-rank bundle with
// Chern classes c: ch_0 = rank, ch_k = p_k/k!.
func (Std) Character(c *poly.Graded, rank int) *poly.Graded {
	dim := c.Dim()
	r := c.Ring()
	p := powerSums(c, dim)
	fact := factorials(dim)
	out := poly.NewGraded(r, dim)
	out.SetClass(0, r.Int(int64(rank)))
	for k := 1; k <= dim; k++ {
		out.SetClass(k, p[k].Scale(new(big.Rat).Inv(fact[k])))
	}
	return out
}

// classesFromCharacter reverses Character, ignoring the rank entry.
func classesFromCharacter(ch *poly.Graded) *poly.Graded {
	dim := ch.Dim()
	fact := factorials(dim)
	p := make([]*poly.Poly, dim+1)
	p[0] = ch.Ring().Zero()
	for k := 1; k <= dim; k++ {
		p[k] = ch.Class(k).Scale(fact[k])
	}
	return classesFromPowerSums(ch.Ring(), p, dim)
}

// Todd returns the Todd class of a bundle with Chern classes c:
// td = exp(Σ_k a_k·p_k) with Σ a_k x^k = log(x/(1−e^{−x})).
func (Std) Todd(c *poly.Graded) *poly.Graded {
	dim := c.Dim()
	r := c.Ring()
	p := powerSums(c, dim)
	a := toddLogSeries(dim)
	u := poly.NewGraded(r, dim)
	for k := 1; k <= dim; k++ {
		u.SetClass(k, p[k].Scale(a[k]))
	}
	return gradedExp(u)
}

// gradedExp exponentiates a graded class with zero constant term.
func gradedExp(u *poly.Graded) *poly.Graded {
	dim := u.Dim()
	r := u.Ring()
	if !u.Class(0).IsZero() {
		panic("chern: exponential needs zero constant term")
	}
	out := poly.NewGraded(r, dim)
	out.SetClass(0, r.One())
	pow := out
	fact := factorials(dim)
	for m := 1; m <= dim; m++ {
		pow = pow.Mul(u, dim)
		out = out.Add(pow.Scale(new(big.Rat).Inv(fact[m])))
	}
	return out.Truncate(dim)
}

// adams applies the Adams operation ψ^j at character level:
// ch_k(ψ^j E) = j^k·ch_k(E).
func adams(j int, ch *poly.Graded) *poly.Graded {
	dim := ch.Dim()
	out := poly.NewGraded(ch.Ring(), dim)
	s := big.NewRat(1, 1)
	jr := big.NewRat(int64(j), 1)
	for k := 0; k <= dim; k++ {
		out.SetClass(k, ch.Class(k).Scale(s))
		s = new(big.Rat).Mul(s, jr)
	}
	return out
}

// Product returns the rank and Chern classes of E1⊗E2 from the ranks
// and Chern classes of the factors, via ch(E1⊗E2) = ch(E1)·ch(E2).
func (s Std) Product(rank1 int, c1 *poly.Graded, rank2 int, c2 *poly.Graded) (int, *poly.Graded) {
	dim := c1.Dim()
	ch := s.Character(c1, rank1).Mul(s.Character(c2, rank2), dim)
	return rank1 * rank2, classesFromCharacter(ch)
}

// SymmetricPower returns rank and Chern classes of Sym^k E through the
// Newton-type recurrence m·ch(S^m) = Σ_{j=1..m} ch(ψ^j E)·ch(S^{m−j}).
func (s Std) SymmetricPower(k, rank int, c *poly.Graded) (int, *poly.Graded) {
	if k < 0 {
		panic("chern: negative symmetric power")
	}
	dim := c.Dim()
	r := c.Ring()
	chE := s.Character(c, rank)
	unitCh := poly.NewGraded(r, dim)
	unitCh.SetClass(0, r.One())
	if k == 0 || rank == 0 {
		rk := 1
		if rank == 0 && k > 0 {
			rk = 0
		}
		return rk, classesFromCharacter(unitCh)
	}
	ch := make([]*poly.Graded, k+1)
	ch[0] = unitCh
	for m := 1; m <= k; m++ {
		acc := poly.NewGraded(r, dim)
		for j := 1; j <= m; j++ {
			acc = acc.Add(adams(j, chE).Mul(ch[m-j], dim))
		}
		ch[m] = acc.Scale(big.NewRat(1, int64(m)))
	}
	return combin.Binomial(rank+k-1, k), classesFromCharacter(ch[k])
}

// WedgePower returns rank and Chern classes of Λ^k E through
// m·ch(Λ^m) = Σ_{j=1..m} (−1)^{j−1}·ch(ψ^j E)·ch(Λ^{m−j}).
func (s Std) WedgePower(k, rank int, c *poly.Graded) (int, *poly.Graded) {
	if k < 0 {
		panic("chern: negative exterior power")
	}
	dim := c.Dim()
	r := c.Ring()
	chE := s.Character(c, rank)
	unitCh := poly.NewGraded(r, dim)
	unitCh.SetClass(0, r.One())
	if k == 0 {
		return 1, classesFromCharacter(unitCh)
	}
	if k > rank {
		// Λ^k vanishes: rank zero, total class 1.
		zero := poly.NewGraded(r, dim)
		zero.SetClass(0, r.One())
		return 0, zero
	}
	ch := make([]*poly.Graded, k+1)
	ch[0] = unitCh
	for m := 1; m <= k; m++ {
		acc := poly.NewGraded(r, dim)
		sign := big.NewRat(1, 1)
		for j := 1; j <= m; j++ {
			acc = acc.Add(adams(j, chE).Mul(ch[m-j], dim).Scale(sign))
			sign = new(big.Rat).Neg(sign)
		}
		ch[m] = acc.Scale(big.NewRat(1, int64(m)))
	}
	return combin.Binomial(rank, k), classesFromCharacter(ch[k])
}
