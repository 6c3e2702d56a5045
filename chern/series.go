// SPDX-License-Identifier: MIT

package chern

import "math/big"

// One-variable rational power series, truncated: index = degree.

func seriesMul(a, b []*big.Rat, n int) []*big.Rat {
	out := make([]*big.Rat, n+1)
	for i := range out {
		out[i] = new(big.Rat)
	}
	tmp := new(big.Rat)
	for i := 0; i <= n && i < len(a); i++ {
		if a[i].Sign() == 0 {
			continue
		}
		for j := 0; i+j <= n && j < len(b); j++ {
			out[i+j].Add(out[i+j], tmp.Mul(a[i], b[j]))
		}
	}
	return out
}

// seriesInv inverts a series with a[0] ≠ 0.
func seriesInv(a []*big.Rat, n int) []*big.Rat {
	if a[0].Sign() == 0 {
		panic("chern: series has no inverse")
	}
	out := make([]*big.Rat, n+1)
	out[0] = new(big.Rat).Inv(a[0])
	tmp := new(big.Rat)
	for k := 1; k <= n; k++ {
		sum := new(big.Rat)
		for j := 1; j <= k && j < len(a); j++ {
			sum.Add(sum, tmp.Mul(a[j], out[k-j]))
		}
		out[k] = sum.Neg(sum).Mul(sum, out[0])
	}
	return out
}

// seriesLog returns log(a) for a series with a[0] = 1.
func seriesLog(a []*big.Rat, n int) []*big.Rat {
	if a[0].Cmp(big.NewRat(1, 1)) != 0 {
		panic("chern: log needs constant term 1")
	}
	u := make([]*big.Rat, n+1)
	u[0] = new(big.Rat)
	for i := 1; i <= n; i++ {
		if i < len(a) {
			u[i] = new(big.Rat).Set(a[i])
		} else {
			u[i] = new(big.Rat)
		}
	}
	out := make([]*big.Rat, n+1)
	for i := range out {
		out[i] = new(big.Rat)
	}
	pow := append([]*big.Rat(nil), u...)
	sign := big.NewRat(1, 1)
	tmp := new(big.Rat)
	for m := 1; m <= n; m++ {
		inv := big.NewRat(1, int64(m))
		for i := 0; i <= n; i++ {
			tmp.Mul(pow[i], inv)
			tmp.Mul(tmp, sign)
			out[i].Add(out[i], tmp)
		}
		pow = seriesMul(pow, u, n)
		sign.Neg(sign)
	}
	return out
}

// factorials returns 0!..n! as rationals.
func factorials(n int) []*big.Rat {
	f := make([]*big.Rat, n+1)
	f[0] = big.NewRat(1, 1)
	for i := 1; i <= n; i++ {
		f[i] = new(big.Rat).Mul(f[i-1], big.NewRat(int64(i), 1))
	}
	return f
}

// ExpSeries returns the coefficients of e^{s·x} up to degree n.
func ExpSeries(s int64, n int) []*big.Rat {
	fact := factorials(n)
	out := make([]*big.Rat, n+1)
	p := big.NewRat(1, 1)
	for i := 0; i <= n; i++ {
		out[i] = new(big.Rat).Quo(p, fact[i])
		p = new(big.Rat).Mul(p, big.NewRat(s, 1))
	}
	return out
}

// ToddSeries returns the coefficients of x/(1−e^{−x}) up to degree n:
// 1 + x/2 + x²/12 − x⁴/720 + …
func ToddSeries(n int) []*big.Rat {
	// (1 − e^{−x})/x = Σ_{m≥0} (−1)^m x^m/(m+1)!.
	fact := factorials(n + 1)
	s := make([]*big.Rat, n+1)
	sign := big.NewRat(1, 1)
	for m := 0; m <= n; m++ {
		s[m] = new(big.Rat).Quo(sign, fact[m+1])
		sign = new(big.Rat).Neg(sign)
	}
	return seriesInv(s, n)
}

// toddLogSeries returns log(x/(1−e^{−x})) up to degree n.
func toddLogSeries(n int) []*big.Rat {
	return seriesLog(ToddSeries(n), n)
}
