// SPDX-License-Identifier: MIT

package variety

import (
	"math/big"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/equilocus/flagchern/cartan"
	"github.com/equilocus/flagchern/poly"
)

// integrateNumeric implements the sampling localization: draw one
// generic point p, sum top(f)(q)/Π w(q) over the Weyl orbit q of p,
// round to the nearest integer, and divide by |W(L)| to account for the
// stabilizer of P.
func (h *HomogeneousSpace) integrateNumeric(top *poly.Poly, o *integrateOptions) (*big.Int, error) {
	seed := o.seed
	if !o.hasSeed {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	n := h.par.g.AmbientDim()
	pt := make([]*big.Float, n)
	for j := range pt {
		pt[j] = randomUnitFloat(rng, o.precision)
	}

	group := h.weylGroup()
	workers := o.workers
	if workers > len(group) {
		workers = len(group)
	}
	partial := make([]*big.Float, workers)
	var eg errgroup.Group
	chunk := (len(group) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		w := w
		lo, hi := w*chunk, (w+1)*chunk
		if hi > len(group) {
			hi = len(group)
		}
		eg.Go(func() error {
			sum := new(big.Float).SetPrec(o.precision)
			for _, m := range group[lo:hi] {
				term, err := h.orbitTerm(m, pt, top, o.precision)
				if err != nil {
					return err
				}
				sum.Add(sum, term)
			}
			partial[w] = sum
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sum := new(big.Float).SetPrec(o.precision)
	for _, p := range partial {
		sum.Add(sum, p)
	}
	rounded, diff := roundNearest(sum)
	if diff.Cmp(big.NewFloat(o.tolerance)) > 0 {
		return nil, ErrNonIntegerResult
	}

	order := big.NewInt(1)
	if h.par.l != nil {
		order = cartan.Order(*h.par.l)
	}
	quo, rem := new(big.Int).QuoRem(rounded, order, new(big.Int))
	if rem.Sign() != 0 {
		return nil, ErrNonIntegerResult
	}
	return quo, nil
}

// orbitTerm evaluates one orbit point: q = w⁻¹·p (inverse = transpose
// for an orthogonal reflection product), then top(q)/Π w(q).
func (h *HomogeneousSpace) orbitTerm(m cartan.Matrix, pt []*big.Float, top *poly.Poly, prec uint) (*big.Float, error) {
	n := len(pt)
	q := make([]*big.Float, n)
	tmp := new(big.Float).SetPrec(prec)
	for j := 0; j < n; j++ {
		s := new(big.Float).SetPrec(prec)
		for i := 0; i < n; i++ {
			if m[i][j].Sign() == 0 {
				continue
			}
			tmp.SetRat(m[i][j])
			s.Add(s, new(big.Float).SetPrec(prec).Mul(tmp, pt[i]))
		}
		q[j] = s
	}

	den := new(big.Float).SetPrec(prec).SetInt64(1)
	for _, form := range h.forms {
		den.Mul(den, form.EvalFloat(q, prec))
	}
	tiny := new(big.Float).SetMantExp(big.NewFloat(1), -int(prec/2))
	if new(big.Float).Abs(den).Cmp(tiny) < 0 {
		return nil, ErrDegenerateSample
	}
	num := top.EvalFloat(q, prec)
	return num.Quo(num, den), nil
}

// randomUnitFloat draws a uniform value in (0, 1) carrying prec random
// mantissa bits.
func randomUnitFloat(rng *rand.Rand, prec uint) *big.Float {
	words := (int(prec) + 63) / 64
	z := new(big.Int)
	for i := 0; i < words; i++ {
		z.Lsh(z, 64)
		z.Or(z, new(big.Int).SetUint64(rng.Uint64()))
	}
	f := new(big.Float).SetPrec(prec).SetInt(z)
	scale := new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(1), words*64)
	return f.Quo(f, scale)
}

// roundNearest returns the nearest integer to x and |x − nearest|.
func roundNearest(x *big.Float) (*big.Int, *big.Float) {
	y := new(big.Float).Copy(x)
	half := big.NewFloat(0.5)
	if x.Sign() >= 0 {
		y.Add(y, half)
	} else {
		y.Sub(y, half)
	}
	z, _ := y.Int(nil)
	diff := new(big.Float).Sub(x, new(big.Float).SetPrec(x.Prec()).SetInt(z))
	return z, diff.Abs(diff)
}
