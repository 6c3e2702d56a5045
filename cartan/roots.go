// SPDX-License-Identifier: MIT

package cartan

import "math/big"

// Root is a root in the ambient realization together with its
// coordinates in the simple-root basis.
type Root struct {
	Vec    []*big.Rat
	Coeffs []int
}

func unit(n, i int) []*big.Rat {
	v := ratVecZero(n)
	v[i].SetInt64(1)
	return v
}

// SimpleRoots returns the simple roots of d in the standard ambient
// realization (the Bourbaki/Sage coordinates):
//
//	A_r: e_i − e_{i+1}            (ambient dimension r+1)
//	B_r: e_i − e_{i+1}, e_r
//	C_r: e_i − e_{i+1}, 2e_r
//	D_r: e_i − e_{i+1}, e_{r−1} + e_r
func SimpleRoots(d Datum) []Root {
	n := d.AmbientDim()
	roots := make([]Root, d.Rank)
	for i := 0; i < d.Rank; i++ {
		coeffs := make([]int, d.Rank)
		coeffs[i] = 1
		var v []*big.Rat
		switch {
		case d.Series == SeriesA || i < d.Rank-1:
			v = ratVecSub(unit(n, i), unit(n, i+1))
		case d.Series == SeriesB:
			v = unit(n, d.Rank-1)
		case d.Series == SeriesC:
			v = ratVecScale(unit(n, d.Rank-1), big.NewRat(2, 1))
		default: // SeriesD
			v = ratVecAdd(unit(n, d.Rank-2), unit(n, d.Rank-1))
		}
		roots[i] = Root{Vec: v, Coeffs: coeffs}
	}
	return roots
}

// PositiveRoots returns the positive roots of d, each carrying its
// simple-root coordinates.
func PositiveRoots(d Datum) []Root {
	n := d.AmbientDim()
	var vecs [][]*big.Rat
	switch d.Series {
	case SeriesA:
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				vecs = append(vecs, ratVecSub(unit(n, i), unit(n, j)))
			}
		}
	case SeriesB:
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				vecs = append(vecs, ratVecSub(unit(n, i), unit(n, j)))
				vecs = append(vecs, ratVecAdd(unit(n, i), unit(n, j)))
			}
			vecs = append(vecs, unit(n, i))
		}
	case SeriesC:
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				vecs = append(vecs, ratVecSub(unit(n, i), unit(n, j)))
				vecs = append(vecs, ratVecAdd(unit(n, i), unit(n, j)))
			}
			vecs = append(vecs, ratVecScale(unit(n, i), big.NewRat(2, 1)))
		}
	case SeriesD:
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				vecs = append(vecs, ratVecSub(unit(n, i), unit(n, j)))
				vecs = append(vecs, ratVecAdd(unit(n, i), unit(n, j)))
			}
		}
	}

	simple := SimpleRoots(d)
	// Columns of the coefficient system are the simple roots.
	sys := make(Matrix, n)
	for row := 0; row < n; row++ {
		sys[row] = make([]*big.Rat, d.Rank)
		for col := 0; col < d.Rank; col++ {
			sys[row][col] = new(big.Rat).Set(simple[col].Vec[row])
		}
	}
	roots := make([]Root, len(vecs))
	for k, v := range vecs {
		x, err := solveRight(sys, v, d.Rank)
		if err != nil {
			panic(err) // ambient tables and solver disagree
		}
		coeffs := make([]int, d.Rank)
		for i, q := range x {
			if !q.IsInt() {
				panic(ErrSingularSystem)
			}
			coeffs[i] = int(q.Num().Int64())
		}
		roots[k] = Root{Vec: v, Coeffs: coeffs}
	}
	return roots
}

// FundamentalWeights returns the fundamental weights Λ_1..Λ_rank in the
// ambient realization, matching the simple-root order of SimpleRoots.
func FundamentalWeights(d Datum) [][]*big.Rat {
	n := d.AmbientDim()
	half := big.NewRat(1, 2)
	prefix := func(k int) []*big.Rat {
		v := ratVecZero(n)
		for i := 0; i < k; i++ {
			v[i].SetInt64(1)
		}
		return v
	}
	fw := make([][]*big.Rat, d.Rank)
	for k := 1; k <= d.Rank; k++ {
		switch {
		case d.Series == SeriesA || d.Series == SeriesC:
			fw[k-1] = prefix(k)
		case d.Series == SeriesB:
			if k < d.Rank {
				fw[k-1] = prefix(k)
			} else {
				fw[k-1] = ratVecScale(prefix(d.Rank), half)
			}
		default: // SeriesD
			switch {
			case k <= d.Rank-2:
				fw[k-1] = prefix(k)
			case k == d.Rank-1:
				v := prefix(d.Rank)
				v[d.Rank-1].SetInt64(-1)
				fw[k-1] = ratVecScale(v, half)
			default:
				fw[k-1] = ratVecScale(prefix(d.Rank), half)
			}
		}
	}
	return fw
}

// WeylVector returns ρ, the half-sum of the positive roots.
func WeylVector(d Datum) []*big.Rat {
	sum := ratVecZero(d.AmbientDim())
	for _, r := range PositiveRoots(d) {
		sum = ratVecAdd(sum, r.Vec)
	}
	return ratVecScale(sum, big.NewRat(1, 2))
}
