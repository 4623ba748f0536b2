// SPDX-License-Identifier: MIT

// Package matrix: exact linear algebra kernels.
//
// Every kernel here works over Z (or Q for Inverse); nothing is rounded.
// Kernels validate their inputs through validators.go and wrap failures with
// an operation tag so that errors read "Mul: ValidateMulCompatible: ...".
package matrix

import (
	"fmt"
	"math/big"
)

// Operation tags.
const (
	opMul        = "Mul"
	opMulMod     = "MulMod"
	opMulVec     = "MulVec"
	opVecMul     = "VecMul"
	opTranspose  = "Transpose"
	opReduceMod  = "ReduceMod"
	opDet        = "Det"
	opInverse    = "Inverse"
	opSameLattic = "SameLattice"
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// RatMatrix is a dense row-major matrix over Q, produced by Inverse.
type RatMatrix [][]*big.Rat

// Mul returns the product a·b.
//
// Implementation:
//   - Stage 1: validate a.Cols == b.Rows.
//   - Stage 2: i-k-j loop, skipping zero a[i][k] (bases are sparse).
//
// Complexity:
//   - Time O(n·m·p) big-integer multiplications, Space O(n·p).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	tmp := new(big.Int)
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			av := a.cell(i, k)
			if av.Sign() == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				bv := b.cell(k, j)
				if bv.Sign() == 0 {
					continue
				}
				tmp.Mul(av, bv)
				res.cell(i, j).Add(res.cell(i, j), tmp)
			}
		}
	}

	return res, nil
}

// MulMod returns a·b with every entry reduced into [0, m).
func MulMod(a, b *Dense, m *big.Int) (*Dense, error) {
	if err := ValidateModulus(m); err != nil {
		return nil, matrixErrorf(opMulMod, err)
	}
	res, err := Mul(a, b)
	if err != nil {
		return nil, matrixErrorf(opMulMod, err)
	}
	res.reduce(m)

	return res, nil
}

// ReduceMod reduces every entry of a into [0, m) in place.
func ReduceMod(a *Dense, m *big.Int) error {
	if err := ValidateNotNil(a); err != nil {
		return matrixErrorf(opReduceMod, err)
	}
	if err := ValidateModulus(m); err != nil {
		return matrixErrorf(opReduceMod, err)
	}
	a.reduce(m)

	return nil
}

func (m *Dense) reduce(mod *big.Int) {
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			v := m.cell(i, j)
			v.Mod(v, mod)
		}
	}
}

// MulVec returns a·x for a column vector x.
func MulVec(a *Dense, x []*big.Int) ([]*big.Int, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(x, a.c); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	out := make([]*big.Int, a.r)
	tmp := new(big.Int)
	for i := 0; i < a.r; i++ {
		acc := new(big.Int)
		for j := 0; j < a.c; j++ {
			acc.Add(acc, tmp.Mul(a.cell(i, j), x[j]))
		}
		out[i] = acc
	}

	return out, nil
}

// VecMul returns the row vector xᵗ·a.
func VecMul(x []*big.Int, a *Dense) ([]*big.Int, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}
	if err := ValidateVecLen(x, a.r); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}
	out := make([]*big.Int, a.c)
	for j := range out {
		out[j] = new(big.Int)
	}
	tmp := new(big.Int)
	for i := 0; i < a.r; i++ {
		if x[i].Sign() == 0 {
			continue
		}
		for j := 0; j < a.c; j++ {
			out[j].Add(out[j], tmp.Mul(x[i], a.cell(i, j)))
		}
	}

	return out, nil
}

// Transpose returns aᵗ as a new compact matrix.
func Transpose(a *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(a.c, a.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			res.cell(j, i).Set(a.cell(i, j))
		}
	}

	return res, nil
}

// Det returns the exact determinant of a square matrix.
//
// Implementation:
//   - Fraction-free Bareiss elimination: every intermediate division is
//     exact, so entries stay integral and bounded by Hadamard's bound.
//   - Row swaps on zero pivots flip the sign.
//   - Triangular inputs short-circuit to the product of the diagonal.
//
// Complexity:
//   - Time O(n³) big-integer operations, Space O(n²).
func Det(a *Dense) (*big.Int, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opDet, err)
	}
	n := a.r
	if IsUpperTriangular(a) || IsLowerTriangular(a) {
		det := big.NewInt(1)
		for i := 0; i < n; i++ {
			det.Mul(det, a.cell(i, i))
		}

		return det, nil
	}

	w := a.Clone()
	sign := 1
	prev := big.NewInt(1)
	t1, t2 := new(big.Int), new(big.Int)
	for k := 0; k < n-1; k++ {
		if w.cell(k, k).Sign() == 0 {
			swap := -1
			for i := k + 1; i < n; i++ {
				if w.cell(i, k).Sign() != 0 {
					swap = i
					break
				}
			}
			if swap < 0 {
				return new(big.Int), nil
			}
			w.swapRows(k, swap)
			sign = -sign
		}
		pivot := w.cell(k, k)
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				t1.Mul(w.cell(i, j), pivot)
				t2.Mul(w.cell(i, k), w.cell(k, j))
				t1.Sub(t1, t2)
				w.cell(i, j).Quo(t1, prev) // exact by Sylvester's identity
			}
		}
		prev.Set(pivot)
	}
	det := new(big.Int).Set(w.cell(n-1, n-1))
	if sign < 0 {
		det.Neg(det)
	}

	return det, nil
}

func (m *Dense) swapRows(i, k int) {
	for j := 0; j < m.c; j++ {
		oi, ok := i*m.stride+j, k*m.stride+j
		m.data[oi], m.data[ok] = m.data[ok], m.data[oi]
	}
}

// Inverse returns a⁻¹ over Q by Gauss-Jordan elimination on [a | I].
//
// Errors:
//   - ErrNonSquare / ErrNilMatrix from validation.
//   - ErrSingular when a has no inverse.
//
// Complexity:
//   - Time O(n³) rational operations, Space O(n²).
//
// Notes:
//   - Exact; never use a floating inverse for lattice duals.
func Inverse(a *Dense) (RatMatrix, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := a.r
	aug := make(RatMatrix, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]*big.Rat, 2*n)
		for j := 0; j < n; j++ {
			aug[i][j] = new(big.Rat).SetInt(a.cell(i, j))
			aug[i][n+j] = new(big.Rat)
		}
		aug[i][n+i].SetInt64(1)
	}

	tmp := new(big.Rat)
	for col := 0; col < n; col++ {
		piv := -1
		for i := col; i < n; i++ {
			if aug[i][col].Sign() != 0 {
				piv = i
				break
			}
		}
		if piv < 0 {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		aug[col], aug[piv] = aug[piv], aug[col]

		inv := new(big.Rat).Inv(aug[col][col])
		for j := col; j < 2*n; j++ {
			aug[col][j].Mul(aug[col][j], inv)
		}
		for i := 0; i < n; i++ {
			if i == col || aug[i][col].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(aug[i][col])
			for j := col; j < 2*n; j++ {
				aug[i][j].Sub(aug[i][j], tmp.Mul(f, aug[col][j]))
			}
		}
	}

	out := make(RatMatrix, n)
	for i := 0; i < n; i++ {
		out[i] = aug[i][n:]
	}

	return out, nil
}

// SameLattice reports whether the rows of a and b span the same lattice.
//
// Implementation:
//   - Stage 1: both must be square, equal size and nonsingular.
//   - Stage 2: |det a| == |det b|.
//   - Stage 3: a·b⁻¹ has integer entries (a's rows lie in L(b)); with equal
//     covolume that inclusion is an equality.
//
// Complexity:
//   - Time O(n³) rational operations.
func SameLattice(a, b *Dense) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opSameLattic, err)
	}
	if err := ValidateSquare(a); err != nil {
		return false, matrixErrorf(opSameLattic, err)
	}
	da, err := Det(a)
	if err != nil {
		return false, matrixErrorf(opSameLattic, err)
	}
	db, err := Det(b)
	if err != nil {
		return false, matrixErrorf(opSameLattic, err)
	}
	if da.Sign() == 0 || db.Sign() == 0 {
		return false, matrixErrorf(opSameLattic, ErrSingular)
	}
	if da.CmpAbs(db) != 0 {
		return false, nil
	}
	binv, err := Inverse(b)
	if err != nil {
		return false, matrixErrorf(opSameLattic, err)
	}
	n := a.r
	acc, tmp := new(big.Rat), new(big.Rat)
	av := new(big.Rat)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			acc.SetInt64(0)
			for k := 0; k < n; k++ {
				if a.cell(i, k).Sign() == 0 {
					continue
				}
				av.SetInt(a.cell(i, k))
				acc.Add(acc, tmp.Mul(av, binv[k][j]))
			}
			if !acc.IsInt() {
				return false, nil
			}
		}
	}

	return true, nil
}
