// SPDX-License-Identifier: MIT
package lattice_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latmrg/lattice"
	"github.com/katalvlaran/latmrg/matrix"
)

func farIndexSet(t *testing.T, head ...int64) lattice.IndexSet {
	t.Helper()
	far := new(big.Int).Lsh(big.NewInt(1), 40)
	var is []*big.Int
	for _, h := range head {
		is = append(is, big.NewInt(h))
	}
	is = append(is, big.NewInt(1000), big.NewInt(1001), far, new(big.Int).Add(far, big.NewInt(7)))
	idx, err := lattice.NewIndexSetBig(is...)
	require.NoError(t, err)

	return idx
}

func TestMLCGLacStrategiesAgree(t *testing.T) {
	src := newKeyedSource(t, "mlcg-lac-strategies")
	tests := []struct {
		name string
		k    int
		w    int // 0 means no output matrix
		head []int64
	}{
		{name: "full state k=4", k: 4, head: []int64{1, 2, 3, 4}},
		{name: "full state k=5 irregular", k: 5, head: []int64{2, 9}},
		{name: "output w=2 k=3", k: 3, w: 2, head: []int64{1, 2, 3}},
		{name: "k=1", k: 1, head: []int64{1, 5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := src.randomDense(tc.k, tc.k, m31.Int64())
			var b *matrix.Dense
			if tc.w > 0 {
				b = src.randomDense(tc.w, tc.k, m31.Int64())
			}
			idx := farIndexSet(t, tc.head...)

			var ings []*matrix.Dense
			for _, expo := range []lattice.Exponentiation{lattice.ExpMatrixPower, lattice.ExpPolyQuotient} {
				g, err := lattice.NewMLCGLac(m31, a, b, idx, 8, lattice.WithExponentiation(expo))
				require.NoError(t, err)
				require.Equal(t, expo, g.Exponentiation())

				ing, err := g.Ingredients()
				require.NoError(t, err)
				ings = append(ings, ing)

				require.NoError(t, g.BuildBasis(len(idx)))
				require.NoError(t, g.BuildDualBasis(len(idx)))
				requireDual(t, g)
				require.LessOrEqual(t, g.Stats().Steps, int64(3))
			}
			require.True(t, ings[0].Equal(ings[1]), "\n%v\nvs\n%v", ings[0], ings[1])
		})
	}
}

func TestMLCGLacMatchesMRGLac(t *testing.T) {
	idx := farIndexSet(t, 1, 2, 3)
	a := []int64{1071064, 0, 2113664}

	mrg, err := lattice.NewMRGLac(m31, bigs(a...), idx, 8)
	require.NoError(t, err)
	want, err := mrg.Ingredients()
	require.NoError(t, err)

	for _, expo := range []lattice.Exponentiation{lattice.ExpMatrixPower, lattice.ExpPolyQuotient} {
		ml, err := lattice.NewMLCGLac(m31, companion(t, a...), mustDense(t, [][]int64{{1, 0, 0}}), idx, 8,
			lattice.WithExponentiation(expo))
		require.NoError(t, err)
		got, err := ml.Ingredients()
		require.NoError(t, err)
		require.True(t, want.Equal(got), "%v:\n%v\nvs\n%v", expo, want, got)
	}
}

func TestMLCGLacUnitPrefixMatchesMLCG(t *testing.T) {
	src := newKeyedSource(t, "mlcg-lac-prefix")
	m := big.NewInt(1000003)
	a := src.randomDense(2, 2, m.Int64())

	lac, err := lattice.NewMLCGLac(m, a, nil, mustIndexSet(t, 1, 2, 3, 4, 5, 6), 6)
	require.NoError(t, err)
	full, err := lattice.NewMLCG(m, a, 6)
	require.NoError(t, err)
	for _, g := range []lattice.Lattice{lac, full} {
		require.NoError(t, g.BuildBasis(6))
		require.NoError(t, g.BuildDualBasis(6))
	}
	require.Equal(t, full.Fingerprint(), lac.Fingerprint())
	require.Zero(t, lac.Stats().Jumps)
	require.Zero(t, lac.Stats().Triangularizations)
}

func TestMLCGLacAutoStrategy(t *testing.T) {
	idx := mustIndexSet(t, 1, 2)
	small, err := lattice.NewMLCGLac(m31, companion(t, 3, 5), nil, idx, 4)
	require.NoError(t, err)
	require.Equal(t, lattice.ExpMatrixPower, small.Exponentiation())

	forced, err := lattice.NewMLCGLac(m31, companion(t, 3, 5), nil, idx, 4, lattice.WithPolyCrossover(2))
	require.NoError(t, err)
	require.Equal(t, lattice.ExpPolyQuotient, forced.Exponentiation())

	big8, err := lattice.NewMLCGLac(m31, companion(t, 1, 2, 3, 4, 5, 6, 7, 8), nil, idx, 4)
	require.NoError(t, err)
	require.Equal(t, lattice.ExpPolyQuotient, big8.Exponentiation())
}

func TestMLCGLacSetIndexSetAndMatrix(t *testing.T) {
	m := big.NewInt(65537)
	a := companion(t, 3, 5)
	g, err := lattice.NewMLCGLac(m, a, nil, mustIndexSet(t, 1, 2, 70, 71), 6)
	require.NoError(t, err)
	require.NoError(t, g.BuildBasis(4))
	require.NoError(t, g.BuildDualBasis(4))
	requireDual(t, g)

	next := mustIndexSet(t, 1, 2, 70, 71, 72, 4000)
	require.NoError(t, g.SetIndexSet(next))
	require.Equal(t, 0, g.Dim())
	require.Equal(t, 4, lattice.CachedColumns(g))
	require.NoError(t, g.BuildBasis(6))
	require.NoError(t, g.BuildDualBasis(6))
	requireDual(t, g)

	fresh, err := lattice.NewMLCGLac(m, a, nil, next, 6)
	require.NoError(t, err)
	require.NoError(t, fresh.BuildBasis(6))
	require.NoError(t, fresh.BuildDualBasis(6))
	require.Equal(t, fresh.Fingerprint(), g.Fingerprint())

	require.NoError(t, g.SetMatrix(companion(t, 7, 1), nil))
	require.Equal(t, 0, lattice.CachedColumns(g))
	require.Equal(t, 0, g.DualDim())
	require.ErrorIs(t, g.SetMatrix(mustDense(t, [][]int64{{1, 2}}), nil), lattice.ErrBadMatrix)
}
