// SPDX-License-Identifier: MIT

// Package matrix: triangular lattice kernels modulo m.
//
// These kernels work on lattices L with m·Z^d ⊆ L ⊆ Z^d ("m-lattices"), the
// lattices of linear congruential and multiple-recursive generators.
//
//   - UpperTriangularBasis reduces an arbitrary (over-complete) generating
//     set of such a lattice to an upper-triangular basis.
//   - MDualUpperTriangular builds the m-dual W (V·Wᵗ = m·I) of an
//     upper-triangular basis by back-substitution.
//   - MDual does the same for an arbitrary square basis through an exact
//     rational inverse.
package matrix

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/latmrg/zmod"
)

const (
	opUpperTriangular = "UpperTriangularBasis"
	opMDualUpper      = "MDualUpperTriangular"
	opMDual           = "MDual"
	opCheckMDual      = "CheckMDual"
)

// IsUpperTriangular reports whether every entry below the diagonal is zero.
// Non-square matrices are checked on their leading square part.
func IsUpperTriangular(a *Dense) bool {
	for i := 1; i < a.r; i++ {
		for j := 0; j < i && j < a.c; j++ {
			if a.cell(i, j).Sign() != 0 {
				return false
			}
		}
	}

	return true
}

// IsLowerTriangular reports whether every entry above the diagonal is zero.
func IsLowerTriangular(a *Dense) bool {
	for i := 0; i < a.r; i++ {
		for j := i + 1; j < a.c; j++ {
			if a.cell(i, j).Sign() != 0 {
				return false
			}
		}
	}

	return true
}

// UpperTriangularBasis returns an upper-triangular d×d basis of the lattice
// generated by the rows of gen (n×d) together with m·Z^d.
//
// MAIN DESCRIPTION:
//   - Hermite-style column-by-column elimination where every entry is kept
//     in [0, m) by subtracting multiples of m·e_j.
//
// Implementation:
//   - Stage 1: copy rows reduced mod m; all-zero rows are dropped.
//   - Stage 2: for each column c:
//     (a) fold every remaining row with a non-zero entry at c into a single
//     pivot row by extended-gcd row operations (unimodular 2×2 steps);
//     (b) merge the pivot with m·e_c: the basis row gets gcd(pivot_c, m) on
//     the diagonal, and the complementary combination −(m/g)·pivot goes
//     back into the pool with a zero at c;
//     (c) without a pivot, the basis row is m·e_c.
//   - Stage 3: rows that became zero beyond c are dropped.
//
// Behavior highlights:
//   - Redundant or linearly dependent generators are absorbed, never
//     producing a zero diagonal: every diagonal entry divides m.
//   - Deterministic: row order of gen is the only tie-breaker.
//   - Prefix stable: the leading c×c block of the result depends only on the
//     first c columns of gen.
//
// Errors:
//   - ErrNilMatrix, ErrBadModulus.
//
// Complexity:
//   - Time O(n·d²) big-integer operations, Space O(n·d).
//
// AI-Hints:
//   - For projections, pass the k generator rows restricted to the selected
//     columns; m·I is implied and need not be appended.
func UpperTriangularBasis(gen *Dense, m *big.Int) (*Dense, error) {
	if err := ValidateNotNil(gen); err != nil {
		return nil, matrixErrorf(opUpperTriangular, err)
	}
	if err := ValidateModulus(m); err != nil {
		return nil, matrixErrorf(opUpperTriangular, err)
	}
	n, d := gen.Shape()

	pool := make([][]*big.Int, 0, n)
	for i := 0; i < n; i++ {
		row := make([]*big.Int, d)
		for j := 0; j < d; j++ {
			row[j] = new(big.Int).Mod(gen.cell(i, j), m)
		}
		if !isZeroFrom(row, 0) {
			pool = append(pool, row)
		}
	}

	basis, err := NewDense(d, d)
	if err != nil {
		return nil, matrixErrorf(opUpperTriangular, err)
	}
	for c := 0; c < d; c++ {
		piv := -1
		for i, row := range pool {
			if row == nil || row[c].Sign() == 0 {
				continue
			}
			if piv < 0 {
				piv = i
				continue
			}
			euclidRows(pool[piv], row, c, m)
			if isZeroFrom(row, c+1) {
				pool[i] = nil
			}
		}
		if piv < 0 {
			basis.cell(c, c).Set(m)
			continue
		}

		p := pool[piv]
		g, s, _ := zmod.ExtGCD(p[c], m)
		q := new(big.Int).Quo(m, g)
		basis.cell(c, c).Set(g)
		for j := c + 1; j < d; j++ {
			bc := basis.cell(c, j)
			bc.Mul(s, p[j])
			bc.Mod(bc, m)
			// complementary row: −(m/g)·p
			p[j].Mul(p[j], q)
			p[j].Neg(p[j])
			p[j].Mod(p[j], m)
		}
		p[c].SetInt64(0)
		if isZeroFrom(p, c+1) {
			pool[piv] = nil
		}
	}

	return basis, nil
}

// euclidRows replaces (p, r) by a unimodular combination so that r[c] = 0
// and p[c] = gcd(p[c], r[c]). Entries from column c on are reduced mod m.
//
//	[p']   [  s    t  ] [p]
//	[r'] = [ −b/g  a/g] [r]     with g = s·a + t·b, det = 1.
func euclidRows(p, r []*big.Int, c int, m *big.Int) {
	a, b := p[c], r[c]
	g, s, t := zmod.ExtGCD(a, b)
	u := new(big.Int).Quo(a, g)
	v := new(big.Int).Quo(b, g)
	t1, t2 := new(big.Int), new(big.Int)
	for j := c; j < len(p); j++ {
		x, y := p[j], r[j]
		np := new(big.Int).Add(t1.Mul(s, x), t2.Mul(t, y))
		nr := new(big.Int).Sub(t1.Mul(u, y), t2.Mul(v, x))
		p[j] = np.Mod(np, m)
		r[j] = nr.Mod(nr, m)
	}
}

func isZeroFrom(row []*big.Int, from int) bool {
	for j := from; j < len(row); j++ {
		if row[j].Sign() != 0 {
			return false
		}
	}

	return true
}

// MDualUpperTriangular returns the lower-triangular W with V·Wᵗ = m·I for an
// upper-triangular V.
//
// Implementation:
//   - W[i][i] = m / V[i][i].
//   - For j = i−1 … 0: W[i][j] = −(Σ_{l=j+1..i} V[j][l]·W[i][l]) / V[j][j].
//   - Every division must be exact; otherwise m·Z^d ⊄ L(V).
//
// Errors:
//   - ErrNonSquare, ErrBadModulus, ErrNotTriangular, ErrSingular (zero
//     diagonal), ErrNotIntegral.
//
// Complexity:
//   - Time O(d³) big-integer operations, Space O(d²).
func MDualUpperTriangular(v *Dense, m *big.Int) (*Dense, error) {
	if err := ValidateSquare(v); err != nil {
		return nil, matrixErrorf(opMDualUpper, err)
	}
	if err := ValidateModulus(m); err != nil {
		return nil, matrixErrorf(opMDualUpper, err)
	}
	if !IsUpperTriangular(v) {
		return nil, matrixErrorf(opMDualUpper, ErrNotTriangular)
	}
	d := v.r
	for i := 0; i < d; i++ {
		if v.cell(i, i).Sign() == 0 {
			return nil, fmt.Errorf("%s: diagonal %d: %w", opMDualUpper, i, ErrSingular)
		}
	}

	w, err := NewDense(d, d)
	if err != nil {
		return nil, matrixErrorf(opMDualUpper, err)
	}
	sum, tmp, rem := new(big.Int), new(big.Int), new(big.Int)
	for i := 0; i < d; i++ {
		w.cell(i, i).QuoRem(m, v.cell(i, i), rem)
		if rem.Sign() != 0 {
			return nil, fmt.Errorf("%s: W[%d][%d]: %w", opMDualUpper, i, i, ErrNotIntegral)
		}
		for j := i - 1; j >= 0; j-- {
			sum.SetInt64(0)
			for l := j + 1; l <= i; l++ {
				sum.Add(sum, tmp.Mul(v.cell(j, l), w.cell(i, l)))
			}
			sum.Neg(sum)
			w.cell(i, j).QuoRem(sum, v.cell(j, j), rem)
			if rem.Sign() != 0 {
				return nil, fmt.Errorf("%s: W[%d][%d]: %w", opMDualUpper, i, j, ErrNotIntegral)
			}
		}
	}

	return w, nil
}

// MDual returns W = m·(V⁻¹)ᵗ for any nonsingular square V, exactly.
// Upper-triangular inputs are routed to MDualUpperTriangular.
//
// Errors:
//   - ErrSingular when V is singular.
//   - ErrNotIntegral when m·V⁻¹ has a non-integer entry.
//
// Complexity:
//   - Time O(d³) rational operations.
func MDual(v *Dense, m *big.Int) (*Dense, error) {
	if err := ValidateSquare(v); err != nil {
		return nil, matrixErrorf(opMDual, err)
	}
	if err := ValidateModulus(m); err != nil {
		return nil, matrixErrorf(opMDual, err)
	}
	if IsUpperTriangular(v) {
		return MDualUpperTriangular(v, m)
	}
	inv, err := Inverse(v)
	if err != nil {
		return nil, matrixErrorf(opMDual, err)
	}
	d := v.r
	w, err := NewDense(d, d)
	if err != nil {
		return nil, matrixErrorf(opMDual, err)
	}
	mr := new(big.Rat).SetInt(m)
	x := new(big.Rat)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			x.Mul(mr, inv[j][i])
			if !x.IsInt() {
				return nil, fmt.Errorf("%s: W[%d][%d]: %w", opMDual, i, j, ErrNotIntegral)
			}
			w.cell(i, j).Set(x.Num())
		}
	}

	return w, nil
}

// CheckMDual verifies V·Wᵗ = m·I exactly.
// Errors: ErrDimensionMismatch, ErrNonSquare, ErrBadModulus, ErrNotDual.
func CheckMDual(v, w *Dense, m *big.Int) error {
	if err := ValidateSameShape(v, w); err != nil {
		return matrixErrorf(opCheckMDual, err)
	}
	if err := ValidateSquare(v); err != nil {
		return matrixErrorf(opCheckMDual, err)
	}
	if err := ValidateModulus(m); err != nil {
		return matrixErrorf(opCheckMDual, err)
	}
	d := v.r
	acc, tmp := new(big.Int), new(big.Int)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			acc.SetInt64(0)
			for l := 0; l < d; l++ {
				acc.Add(acc, tmp.Mul(v.cell(i, l), w.cell(j, l)))
			}
			if i == j {
				if acc.Cmp(m) != 0 {
					return fmt.Errorf("%s: (V·Wᵗ)[%d][%d] = %v: %w", opCheckMDual, i, j, acc, ErrNotDual)
				}
				continue
			}
			if acc.Sign() != 0 {
				return fmt.Errorf("%s: (V·Wᵗ)[%d][%d] = %v: %w", opCheckMDual, i, j, acc, ErrNotDual)
			}
		}
	}

	return nil
}
