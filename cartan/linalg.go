// SPDX-License-Identifier: MIT

// Exact rational vector and matrix kernels used across the package.
// Strict shape validation, fresh result allocation, no operand mutation.

package cartan

import (
	"math/big"
	"strings"
)

func ratVecZero(n int) []*big.Rat {
	v := make([]*big.Rat, n)
	for i := range v {
		v[i] = new(big.Rat)
	}
	return v
}

func ratVecClone(v []*big.Rat) []*big.Rat {
	out := make([]*big.Rat, len(v))
	for i, x := range v {
		out[i] = new(big.Rat).Set(x)
	}
	return out
}

func ratVecAdd(a, b []*big.Rat) []*big.Rat {
	if len(a) != len(b) {
		panic("cartan: vector length mismatch")
	}
	out := make([]*big.Rat, len(a))
	for i := range a {
		out[i] = new(big.Rat).Add(a[i], b[i])
	}
	return out
}

func ratVecSub(a, b []*big.Rat) []*big.Rat {
	if len(a) != len(b) {
		panic("cartan: vector length mismatch")
	}
	out := make([]*big.Rat, len(a))
	for i := range a {
		out[i] = new(big.Rat).Sub(a[i], b[i])
	}
	return out
}

func ratVecScale(v []*big.Rat, q *big.Rat) []*big.Rat {
	out := make([]*big.Rat, len(v))
	for i, x := range v {
		out[i] = new(big.Rat).Mul(x, q)
	}
	return out
}

func ratVecAddScaled(a []*big.Rat, q *big.Rat, b []*big.Rat) []*big.Rat {
	return ratVecAdd(a, ratVecScale(b, q))
}

func ratVecDot(a, b []*big.Rat) *big.Rat {
	if len(a) != len(b) {
		panic("cartan: vector length mismatch")
	}
	sum := new(big.Rat)
	tmp := new(big.Rat)
	for i := range a {
		sum.Add(sum, tmp.Mul(a[i], b[i]))
	}
	return sum
}

func ratVecKey(v []*big.Rat) string {
	var sb strings.Builder
	for i, x := range v {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(x.RatString())
	}
	return sb.String()
}

// Matrix is a dense rational matrix, row major.
type Matrix [][]*big.Rat

// IdentityMatrix returns the n×n identity.
func IdentityMatrix(n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = ratVecZero(n)
		m[i][i].SetInt64(1)
	}
	return m
}

// Mul returns m·o.
func (m Matrix) Mul(o Matrix) Matrix {
	rows, inner := len(m), len(o)
	if inner == 0 || len(m[0]) != inner {
		panic("cartan: matrix shape mismatch")
	}
	cols := len(o[0])
	out := make(Matrix, rows)
	tmp := new(big.Rat)
	for i := 0; i < rows; i++ {
		out[i] = ratVecZero(cols)
		for k := 0; k < inner; k++ {
			if m[i][k].Sign() == 0 {
				continue
			}
			for j := 0; j < cols; j++ {
				out[i][j].Add(out[i][j], tmp.Mul(m[i][k], o[k][j]))
			}
		}
	}
	return out
}

// Transpose returns the transpose of m. For the orthogonal Weyl-group
// matrices this package produces, the transpose is the inverse.
func (m Matrix) Transpose() Matrix {
	if len(m) == 0 {
		return m
	}
	rows, cols := len(m), len(m[0])
	out := make(Matrix, cols)
	for j := 0; j < cols; j++ {
		out[j] = make([]*big.Rat, rows)
		for i := 0; i < rows; i++ {
			out[j][i] = new(big.Rat).Set(m[i][j])
		}
	}
	return out
}

// Apply returns m·v.
func (m Matrix) Apply(v []*big.Rat) []*big.Rat {
	out := make([]*big.Rat, len(m))
	for i, row := range m {
		out[i] = ratVecDot(row, v)
	}
	return out
}

// Key returns a canonical string form of m, usable for deduplication.
func (m Matrix) Key() string {
	var sb strings.Builder
	for i, row := range m {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(ratVecKey(row))
	}
	return sb.String()
}

// solveRight solves A·x = b for x by Gaussian elimination, where A has
// len(b) rows and width columns. The system may be overdetermined but
// must be consistent; ErrSingularSystem reports anything else.
func solveRight(a Matrix, b []*big.Rat, width int) ([]*big.Rat, error) {
	rows := len(a)
	if rows != len(b) {
		panic("cartan: system shape mismatch")
	}
	// Augmented working copy.
	aug := make(Matrix, rows)
	for i := range aug {
		aug[i] = make([]*big.Rat, width+1)
		for j := 0; j < width; j++ {
			aug[i][j] = new(big.Rat).Set(a[i][j])
		}
		aug[i][width] = new(big.Rat).Set(b[i])
	}
	pivotRow := make([]int, 0, width)
	row := 0
	for col := 0; col < width && row < rows; col++ {
		// Find a pivot.
		p := -1
		for r := row; r < rows; r++ {
			if aug[r][col].Sign() != 0 {
				p = r
				break
			}
		}
		if p < 0 {
			pivotRow = append(pivotRow, -1)
			continue
		}
		aug[row], aug[p] = aug[p], aug[row]
		inv := new(big.Rat).Inv(aug[row][col])
		for j := col; j <= width; j++ {
			aug[row][j].Mul(aug[row][j], inv)
		}
		for r := 0; r < rows; r++ {
			if r == row || aug[r][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Set(aug[r][col])
			tmp := new(big.Rat)
			for j := col; j <= width; j++ {
				aug[r][j].Sub(aug[r][j], tmp.Mul(factor, aug[row][j]))
			}
		}
		pivotRow = append(pivotRow, row)
		row++
	}
	for len(pivotRow) < width {
		pivotRow = append(pivotRow, -1)
	}
	// Consistency: all remaining rows must be zero.
	for r := row; r < rows; r++ {
		if aug[r][width].Sign() != 0 {
			return nil, ErrSingularSystem
		}
	}
	x := ratVecZero(width)
	for col, r := range pivotRow {
		if r >= 0 {
			x[col].Set(aug[r][width])
		}
	}
	return x, nil
}
