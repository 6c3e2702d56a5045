// SPDX-License-Identifier: MIT

package cartan

import (
	"fmt"
	"math/big"
	"sort"
)

// WeightMultiplicity is one weight of an irreducible representation,
// expressed as the highest weight plus Σ Coeffs[i]·α_i (the entries are
// therefore non-positive), together with its multiplicity.
type WeightMultiplicity struct {
	Coeffs []int
	Mult   int
}

// RootDifferenceMultiplicities returns the weight multiset of the
// irreducible representation of d with the given dominant highest
// weight (coefficients over the fundamental weights). Multiplicities
// come from Freudenthal's recursion, run level by level over the
// simple-root differences from the highest weight:
//
//	(|λ+ρ|² − |μ+ρ|²)·m(μ) = 2·Σ_{α>0} Σ_{k≥1} (μ+kα, α)·m(μ+kα)
//
// Entries are sorted by level, then by coefficient vector, so the
// result is deterministic.
func RootDifferenceMultiplicities(d Datum, weight []int) ([]WeightMultiplicity, error) {
	if len(weight) != d.Rank {
		return nil, fmt.Errorf("%s, got %d entries: %w", d, len(weight), ErrWeightLength)
	}
	for _, w := range weight {
		if w < 0 {
			return nil, fmt.Errorf("%s%v: %w", d, weight, ErrNotDominant)
		}
	}

	simple := SimpleRoots(d)
	positive := PositiveRoots(d)
	rho := WeylVector(d)
	fw := FundamentalWeights(d)

	lambda := ratVecZero(d.AmbientDim())
	for i, w := range weight {
		lambda = ratVecAddScaled(lambda, big.NewRat(int64(w), 1), fw[i])
	}
	lambdaRho := ratVecAdd(lambda, rho)
	lambdaNorm := ratVecDot(lambdaRho, lambdaRho)

	ambient := func(descent []int) []*big.Rat {
		v := ratVecClone(lambda)
		for i, n := range descent {
			if n != 0 {
				v = ratVecAddScaled(v, big.NewRat(int64(-n), 1), simple[i].Vec)
			}
		}
		return v
	}
	key := func(descent []int) string {
		b := make([]byte, 0, 2*len(descent))
		for _, n := range descent {
			b = append(b, byte(n), ',')
		}
		return string(b)
	}

	// multiplicity of λ − Σ descent[i]·α_i, keyed by the descent vector.
	mult := map[string]int{key(make([]int, d.Rank)): 1}
	type entry struct {
		descent []int
		m       int
	}
	entries := []entry{{descent: make([]int, d.Rank), m: 1}}
	level := [][]int{make([]int, d.Rank)}

	for len(level) > 0 {
		// Candidates one simple-root step below the current level.
		candidates := map[string][]int{}
		for _, descent := range level {
			for i := 0; i < d.Rank; i++ {
				next := append([]int(nil), descent...)
				next[i]++
				candidates[key(next)] = next
			}
		}
		keys := make([]string, 0, len(candidates))
		for k := range candidates {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var nextLevel [][]int
		for _, k := range keys {
			descent := candidates[k]
			mu := ambient(descent)
			muRho := ratVecAdd(mu, rho)
			denom := new(big.Rat).Sub(lambdaNorm, ratVecDot(muRho, muRho))
			if denom.Sign() == 0 {
				continue // on the shifted Weyl orbit of λ: not a weight
			}
			num := new(big.Rat)
			shifted := make([]int, d.Rank)
			for _, alpha := range positive {
				for k := 1; ; k++ {
					inCone := true
					for i := range shifted {
						shifted[i] = descent[i] - k*alpha.Coeffs[i]
						if shifted[i] < 0 {
							inCone = false
							break
						}
					}
					if !inCone {
						break
					}
					m := mult[key(shifted)]
					if m == 0 {
						continue
					}
					up := ratVecAddScaled(mu, big.NewRat(int64(k), 1), alpha.Vec)
					contrib := ratVecDot(up, alpha.Vec)
					contrib.Mul(contrib, big.NewRat(int64(m), 1))
					num.Add(num, contrib)
				}
			}
			num.Mul(num, big.NewRat(2, 1))
			m := new(big.Rat).Quo(num, denom)
			if m.Sign() == 0 {
				continue
			}
			if !m.IsInt() {
				panic("cartan: Freudenthal recursion produced a non-integer multiplicity")
			}
			mv := int(m.Num().Int64())
			mult[k] = mv
			entries = append(entries, entry{descent: descent, m: mv})
			nextLevel = append(nextLevel, descent)
		}
		level = nextLevel
	}

	out := make([]WeightMultiplicity, len(entries))
	for i, e := range entries {
		coeffs := make([]int, len(e.descent))
		for j, n := range e.descent {
			coeffs[j] = -n
		}
		out[i] = WeightMultiplicity{Coeffs: coeffs, Mult: e.m}
	}
	return out, nil
}

// Dimension returns the dimension of the irreducible representation of
// d with the given dominant highest weight (the sum of multiplicities;
// convenient for cross-checking against the Weyl dimension formula).
func Dimension(d Datum, weight []int) (int, error) {
	ws, err := RootDifferenceMultiplicities(d, weight)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, w := range ws {
		total += w.Mult
	}
	return total, nil
}
