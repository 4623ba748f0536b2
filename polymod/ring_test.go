// SPDX-License-Identifier: MIT
package polymod_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latmrg/polymod"
)

func bigs(vs ...int64) []*big.Int {
	out := make([]*big.Int, len(vs))
	for i, v := range vs {
		out[i] = big.NewInt(v)
	}

	return out
}

// mrgTrajectories returns y[l][n] for n < steps, the outputs of
// x_n = Σ a_j x_{n−j} mod m started from the unit state e_l.
func mrgTrajectories(a []int64, m int64, steps int) [][]int64 {
	k := len(a)
	y := make([][]int64, k)
	for l := 0; l < k; l++ {
		y[l] = make([]int64, steps)
		for n := 0; n < steps; n++ {
			if n < k {
				if n == l {
					y[l][n] = 1
				}
				continue
			}
			var acc int64
			for j := 1; j <= k; j++ {
				acc = (acc + a[j-1]*y[l][n-j]) % m
			}
			y[l][n] = acc
		}
	}

	return y
}

func TestNewRingErrors(t *testing.T) {
	_, err := polymod.NewRing(big.NewInt(1), bigs(1, 1))
	require.ErrorIs(t, err, polymod.ErrBadModulus)
	_, err = polymod.NewRing(big.NewInt(7), bigs(1))
	require.ErrorIs(t, err, polymod.ErrBadDegree)
	_, err = polymod.NewRing(big.NewInt(7), bigs(1, 2))
	require.ErrorIs(t, err, polymod.ErrNotMonic)
	// leading coefficient 8 ≡ 1 mod 7 is accepted
	r, err := polymod.NewRing(big.NewInt(7), bigs(3, 8))
	require.NoError(t, err)
	assert.Equal(t, 1, r.Degree())
}

func TestMRGCharPoly(t *testing.T) {
	f, err := polymod.MRGCharPoly(bigs(37, 22), big.NewInt(101))
	require.NoError(t, err)
	// x² − 37x − 22
	assert.Equal(t, []int64{79, 64, 1}, []int64{f[0].Int64(), f[1].Int64(), f[2].Int64()})

	_, err = polymod.MRGCharPoly(nil, big.NewInt(101))
	require.ErrorIs(t, err, polymod.ErrEmptyCoefficients)
	_, err = polymod.MRGCharPoly(bigs(1), big.NewInt(0))
	require.ErrorIs(t, err, polymod.ErrBadModulus)
}

// Coefficient l of x^n mod f is the n-th output of the unit trajectory e_l.
func TestPowXMatchesRecurrence(t *testing.T) {
	tests := []struct {
		name string
		a    []int64
		m    int64
	}{
		{"order 1", []int64{12}, 101},
		{"order 2", []int64{37, 22}, 101},
		{"order 3 composite", []int64{5, 0, 7}, 360},
		{"order 4", []int64{1, 0, 0, 2147483646}, 2147483647},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := big.NewInt(tc.m)
			a := make([]*big.Int, len(tc.a))
			for i, v := range tc.a {
				a[i] = big.NewInt(v)
			}
			f, err := polymod.MRGCharPoly(a, m)
			require.NoError(t, err)
			r, err := polymod.NewRing(m, f)
			require.NoError(t, err)

			const steps = 60
			y := mrgTrajectories(tc.a, tc.m, steps)
			stepped := r.One()
			for n := 0; n < steps; n++ {
				got, err := r.PowX(big.NewInt(int64(n)))
				require.NoError(t, err)
				require.True(t, got.Equal(stepped), "PowX(%d) != MulX^%d", n, n)
				for l := range tc.a {
					require.Equal(t, y[l][n], got[l].Int64(), "x^%d coefficient %d", n, l)
				}
				stepped = r.MulX(stepped)
			}
		})
	}
}

func TestPowXCountsLogarithmicWork(t *testing.T) {
	m := big.NewInt(2147483647)
	f, err := polymod.MRGCharPoly(bigs(16807), m)
	require.NoError(t, err)
	r, err := polymod.NewRing(m, f)
	require.NoError(t, err)

	e := big.NewInt(264145)
	got, err := r.PowX(e)
	require.NoError(t, err)
	want := new(big.Int).Exp(big.NewInt(16807), e, m)
	assert.Zero(t, want.Cmp(got[0]))
	assert.Equal(t, int64(e.BitLen()), r.Muls())
	assert.LessOrEqual(t, r.Steps(), int64(e.BitLen()))

	_, err = r.PowX(big.NewInt(-1))
	require.ErrorIs(t, err, polymod.ErrNegativeExponent)
}

func TestMulAndReduce(t *testing.T) {
	m := big.NewInt(101)
	f, err := polymod.MRGCharPoly(bigs(37, 22), m)
	require.NoError(t, err)
	r, err := polymod.NewRing(m, f)
	require.NoError(t, err)

	x5, err := r.PowX(big.NewInt(5))
	require.NoError(t, err)
	x7, err := r.PowX(big.NewInt(7))
	require.NoError(t, err)
	x12, err := r.PowX(big.NewInt(12))
	require.NoError(t, err)
	prod, err := r.Mul(x5, x7)
	require.NoError(t, err)
	assert.True(t, prod.Equal(x12))

	// Reduce of a raw x^12 agrees with PowX
	raw := make([]*big.Int, 13)
	for i := range raw {
		raw[i] = new(big.Int)
	}
	raw[12].SetInt64(1)
	assert.True(t, r.Reduce(raw).Equal(x12))

	assert.True(t, r.X().Equal(r.MulX(r.One())))

	_, err = r.Mul(x5, polymod.Poly(bigs(1)))
	require.ErrorIs(t, err, polymod.ErrBadDegree)
}
