// SPDX-License-Identifier: MIT

package polymod

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/latmrg/matrix"
	"github.com/katalvlaran/latmrg/zmod"
)

const (
	opMRGCharPoly = "MRGCharPoly"
	opCharPoly    = "CharPoly"
)

// MRGCharPoly returns f(x) = x^k − a₁x^{k−1} − … − a_k mod m, lowest degree
// first, for the recurrence x_n = a₁x_{n−1} + … + a_k x_{n−k}.
func MRGCharPoly(a []*big.Int, m *big.Int) ([]*big.Int, error) {
	if err := zmod.Validate(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opMRGCharPoly, ErrBadModulus)
	}
	k := len(a)
	if k == 0 {
		return nil, fmt.Errorf("%s: %w", opMRGCharPoly, ErrEmptyCoefficients)
	}
	f := make([]*big.Int, k+1)
	f[k] = big.NewInt(1)
	for j := 1; j <= k; j++ {
		f[k-j] = zmod.NegMod(a[j-1], m)
	}

	return f, nil
}

// CharPoly returns det(xI − A) mod m, lowest degree first (monic, length n+1).
//
// MAIN DESCRIPTION:
//   - Berkowitz's division-free algorithm, valid over Z/mZ for composite m
//     where Hessenberg reduction or Faddeev–LeVerrier would need inverses.
//
// Implementation:
//   - Stage 1: start from the bottom-right 1×1 block, p = (1, −a_{n−1,n−1}).
//   - Stage 2: for i = n−2 … 0, with the block [[a, R], [C, A₁]] at (i,i),
//     build the Toeplitz column t = (1, −a, −R·C, −R·A₁·C, …) and set
//     p ← T(t)·p.
//   - Stage 3: reverse p into lowest-degree-first order.
//
// Complexity:
//   - Time O(n⁴) modular multiplications, Space O(n).
//
// Errors:
//   - ErrNonSquare (from matrix), ErrBadModulus.
func CharPoly(a *matrix.Dense, m *big.Int) ([]*big.Int, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opCharPoly, err)
	}
	if err := zmod.Validate(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opCharPoly, ErrBadModulus)
	}
	n := a.Rows()
	if n == 0 {
		return []*big.Int{big.NewInt(1)}, nil
	}
	red := make([][]*big.Int, n)
	for i := range red {
		row, err := a.Row(i)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opCharPoly, err)
		}
		for j := range row {
			row[j].Mod(row[j], m)
		}
		red[i] = row
	}
	at := func(i, j int) *big.Int { return red[i][j] }

	// p holds coefficients highest degree first.
	p := []*big.Int{big.NewInt(1), zmod.NegMod(at(n-1, n-1), m)}
	tmp := new(big.Int)
	for i := n - 2; i >= 0; i-- {
		s := n - 1 - i
		t := make([]*big.Int, s+2)
		t[0] = big.NewInt(1)
		t[1] = zmod.NegMod(at(i, i), m)

		r := make([]*big.Int, s)
		v := make([]*big.Int, s)
		for j := 0; j < s; j++ {
			r[j] = at(i, i+1+j)
			v[j] = at(i+1+j, i)
		}
		for j := 0; j < s; j++ {
			acc := new(big.Int)
			for l := 0; l < s; l++ {
				acc.Add(acc, tmp.Mul(r[l], v[l]))
			}
			t[j+2] = acc.Neg(acc).Mod(acc, m)
			if j+1 < s {
				nv := make([]*big.Int, s)
				for row := 0; row < s; row++ {
					x := new(big.Int)
					for col := 0; col < s; col++ {
						x.Add(x, tmp.Mul(at(i+1+row, i+1+col), v[col]))
					}
					nv[row] = x.Mod(x, m)
				}
				v = nv
			}
		}

		np := make([]*big.Int, s+2)
		for row := 0; row < s+2; row++ {
			x := new(big.Int)
			for col := 0; col <= row && col <= s; col++ {
				x.Add(x, tmp.Mul(t[row-col], p[col]))
			}
			np[row] = x.Mod(x, m)
		}
		p = np
	}

	f := make([]*big.Int, n+1)
	for j := 0; j <= n; j++ {
		f[j] = p[n-j]
	}

	return f, nil
}
