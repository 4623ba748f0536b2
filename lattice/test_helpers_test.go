// SPDX-License-Identifier: MIT
// Package lattice_test contains shared fixtures for the family tests.

package lattice_test

import (
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo/v4/utils"

	"github.com/katalvlaran/latmrg/lattice"
	"github.com/katalvlaran/latmrg/matrix"
)

// m31 is the Mersenne prime 2^31 − 1.
var m31 = big.NewInt(2147483647)

func bigs(xs ...int64) []*big.Int {
	out := make([]*big.Int, len(xs))
	for i, x := range xs {
		out[i] = big.NewInt(x)
	}

	return out
}

func mustDense(tb testing.TB, rows [][]int64) *matrix.Dense {
	tb.Helper()
	d, err := matrix.NewDenseFrom(rows)
	require.NoError(tb, err)

	return d
}

func mustIndexSet(tb testing.TB, is ...int64) lattice.IndexSet {
	tb.Helper()
	idx, err := lattice.NewIndexSet(is...)
	require.NoError(tb, err)

	return idx
}

func mustCoords(tb testing.TB, cs ...int) lattice.Coordinates {
	tb.Helper()
	c, err := lattice.NewCoordinates(cs...)
	require.NoError(tb, err)

	return c
}

// companion returns the k×k matrix advancing (y_n, …, y_{n+k−1}) of the
// recurrence y_n = a₁y_{n−1} + … + a_k y_{n−k}.
func companion(tb testing.TB, a ...int64) *matrix.Dense {
	tb.Helper()
	k := len(a)
	rows := make([][]int64, k)
	for i := range rows {
		rows[i] = make([]int64, k)
		if i+1 < k {
			rows[i][i+1] = 1
		}
	}
	for j := 0; j < k; j++ {
		rows[k-1][j] = a[k-1-j]
	}

	return mustDense(tb, rows)
}

// requireDual asserts Basis()·DualBasis()ᵗ = m·I and the triangular shapes
// produced by the builders.
func requireDual(tb testing.TB, l lattice.Bases) {
	tb.Helper()
	require.True(tb, l.HasDual(), "dim %d, dual dim %d", l.Dim(), l.DualDim())
	require.NoError(tb, matrix.CheckMDual(l.Basis(), l.DualBasis(), l.Modulus()))
}

func requireTriangular(tb testing.TB, l lattice.Bases) {
	tb.Helper()
	require.True(tb, matrix.IsUpperTriangular(l.Basis()), "primal:\n%v", l.Basis())
	require.True(tb, matrix.IsLowerTriangular(l.DualBasis()), "dual:\n%v", l.DualBasis())
}

func requireSameLattice(tb testing.TB, a, b *matrix.Dense) {
	tb.Helper()
	ok, err := matrix.SameLattice(a, b)
	require.NoError(tb, err)
	require.True(tb, ok, "\n%v\nvs\n%v", a, b)
}

// naiveOutputs evaluates the k unit trajectories of an MRG directly and
// returns G[l][n] for n < count.
func naiveOutputs(m int64, a []int64, count int) [][]int64 {
	k := len(a)
	g := make([][]int64, k)
	for l := range g {
		y := make([]int64, count)
		for n := 0; n < count; n++ {
			if n < k {
				if n == l {
					y[n] = 1
				}
				continue
			}
			var acc int64
			for j := 1; j <= k; j++ {
				acc = (acc + a[j-1]*y[n-j]) % m
			}
			y[n] = acc
		}
		g[l] = y
	}

	return g
}

// keyedSource draws bounded integers from a lattigo KeyedPRNG.
type keyedSource struct {
	tb   testing.TB
	prng *utils.KeyedPRNG
	buf  [8]byte
}

func newKeyedSource(tb testing.TB, key string) *keyedSource {
	tb.Helper()
	prng, err := utils.NewKeyedPRNG([]byte(key))
	require.NoError(tb, err)

	return &keyedSource{tb: tb, prng: prng}
}

// Int63n returns a value in [0, n).
func (s *keyedSource) Int63n(n int64) int64 {
	_, err := s.prng.Read(s.buf[:])
	require.NoError(s.tb, err)

	return int64(binary.BigEndian.Uint64(s.buf[:])>>1) % n
}

func (s *keyedSource) randomDense(rows, cols int, m int64) *matrix.Dense {
	data := make([][]int64, rows)
	for i := range data {
		data[i] = make([]int64, cols)
		for j := range data[i] {
			data[i][j] = s.Int63n(m)
		}
	}

	return mustDense(s.tb, data)
}
