// SPDX-License-Identifier: MIT
package lattice_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latmrg/lattice"
)

func packetSet(t *testing.T) lattice.IndexSet {
	t.Helper()
	idx, err := lattice.NewPacketIndexSet(1, 3, 132072, 8)
	require.NoError(t, err)
	require.Equal(t, "{1,2,3,132073,132074,132075,264145,264146}", idx.String())

	return idx
}

func TestLCGLacPacketsByExponentiation(t *testing.T) {
	var jumps []string
	g, err := lattice.NewLCGLac(m31, big.NewInt(16807), packetSet(t), 8,
		lattice.WithStepLimit(8),
		lattice.WithOnEvent(func(ev lattice.Event) {
			if ev.Op == lattice.EventJump {
				jumps = append(jumps, ev.Index.String())
			}
		}))
	require.NoError(t, err)

	require.NoError(t, g.BuildBasis(8))
	require.NoError(t, g.BuildDualBasis(8))
	requireDual(t, g)
	requireTriangular(t, g)

	st := g.Stats()
	require.Equal(t, int64(5), st.Steps)
	require.Equal(t, int64(2), st.Jumps)
	require.Equal(t, int64(18+19), st.RingMuls)
	require.Equal(t, []string{"132073", "264145"}, jumps)

	ing, err := g.Ingredients()
	require.NoError(t, err)
	for j, i := range g.IndexSet() {
		want := new(big.Int).Exp(big.NewInt(16807), new(big.Int).Sub(i, big.NewInt(1)), m31)
		got, err := ing.At(0, j)
		require.NoError(t, err)
		require.Zero(t, want.Cmp(got), "index %v", i)
	}
}

func TestLCGLacStepLimitTrips(t *testing.T) {
	g, err := lattice.NewLCGLac(m31, big.NewInt(16807), packetSet(t), 8, lattice.WithStepLimit(4))
	require.NoError(t, err)
	require.ErrorIs(t, g.BuildBasis(8), lattice.ErrStepLimit)
	require.Equal(t, 0, g.Dim())

	// Consecutive indices are steps, so a dense run exhausts the guard.
	dense, err := lattice.NewLCGLac(m31, big.NewInt(16807), mustIndexSet(t, 1, 2, 3, 4, 5, 6, 7), 8, lattice.WithStepLimit(4))
	require.NoError(t, err)
	require.ErrorIs(t, dense.BuildBasis(7), lattice.ErrStepLimit)
	require.NoError(t, dense.BuildBasis(5))
}

func TestMRGLacIngredientsMatchDirectEvaluation(t *testing.T) {
	a := []int64{37, 22, 5}
	idx := mustIndexSet(t, 1, 2, 3, 9, 10, 40, 41, 97)
	g, err := lattice.NewMRGLac(big.NewInt(101), bigs(a...), idx, 8)
	require.NoError(t, err)

	ing, err := g.Ingredients()
	require.NoError(t, err)
	want := naiveOutputs(101, a, 97)
	for l := 0; l < 3; l++ {
		for j, i := range idx {
			got, err := ing.At(l, j)
			require.NoError(t, err)
			require.Equal(t, want[l][i.Int64()-1], got.Int64(), "row %d index %v", l, i)
		}
	}
	st := g.Stats()
	require.Equal(t, int64(3), st.Jumps)
	require.Equal(t, int64(2), st.Steps)
}

func TestMRGLacUnitPrefixBases(t *testing.T) {
	idx := mustIndexSet(t, 1, 2, 5, 11, 12, 30)
	g, err := lattice.NewMRGLac(big.NewInt(101), bigs(37, 22), idx, 6)
	require.NoError(t, err)
	require.NoError(t, g.BuildBasis(6))
	require.NoError(t, g.BuildDualBasis(6))
	requireDual(t, g)
	require.Zero(t, g.Stats().Triangularizations)

	full, err := lattice.NewMRG(big.NewInt(101), bigs(37, 22), 30)
	require.NoError(t, err)
	proj, err := full.BuildProjection(mustCoords(t, 1, 2, 5, 11, 12, 30))
	require.NoError(t, err)
	requireSameLattice(t, proj.Basis(), g.Basis())
}

func TestMRGLacGeneralPath(t *testing.T) {
	m := big.NewInt(101)
	idx := mustIndexSet(t, 3, 7, 8, 20)
	g, err := lattice.NewMRGLac(m, bigs(37, 22), idx, 6)
	require.NoError(t, err)

	require.NoError(t, g.BuildBasis(1))
	require.NoError(t, g.BuildDualBasis(1))
	for g.Dim() < 4 {
		require.NoError(t, g.IncDimBasis())
		require.NoError(t, g.IncDimDualBasis())
		requireDual(t, g)
	}
	require.ErrorIs(t, g.IncDimBasis(), lattice.ErrDimOutOfRange)
	require.Equal(t, int64(1), g.Stats().Triangularizations)

	fresh, err := lattice.NewMRGLac(m, bigs(37, 22), idx, 6)
	require.NoError(t, err)
	require.NoError(t, fresh.BuildBasis(4))
	require.NoError(t, fresh.BuildDualBasis(4))
	require.Equal(t, fresh.Fingerprint(), g.Fingerprint())
	requireTriangular(t, fresh)

	full, err := lattice.NewMRG(m, bigs(37, 22), 20)
	require.NoError(t, err)
	proj, err := full.BuildProjection(mustCoords(t, 3, 7, 8, 20))
	require.NoError(t, err)
	requireSameLattice(t, proj.Basis(), g.Basis())
}

func TestSetIndexSetSameIsNoop(t *testing.T) {
	idx := mustIndexSet(t, 1, 2, 50, 51)
	var invalidations int
	g, err := lattice.NewMRGLac(big.NewInt(101), bigs(37, 22), idx, 4,
		lattice.WithOnEvent(func(ev lattice.Event) {
			if ev.Op == lattice.EventInvalidate {
				invalidations++
			}
		}))
	require.NoError(t, err)
	require.NoError(t, g.BuildBasis(4))
	require.NoError(t, g.BuildDualBasis(4))
	before, stats := g.Fingerprint(), g.Stats()

	require.NoError(t, g.SetIndexSet(idx.Clone()))
	require.Equal(t, 4, g.Dim())
	require.Equal(t, before, g.Fingerprint())
	require.Equal(t, stats, g.Stats())
	require.Zero(t, invalidations)
}

func TestSetIndexSetKeepsCommonPrefix(t *testing.T) {
	m := big.NewInt(1000003)
	a := bigs(17, 4, 93)
	first := mustIndexSet(t, 1, 2, 3, 500, 501, 9000)
	second := mustIndexSet(t, 1, 2, 3, 500, 777, 778, 100000)

	g, err := lattice.NewMRGLac(m, a, first, 8)
	require.NoError(t, err)
	require.NoError(t, g.BuildBasis(6))
	require.NoError(t, g.SetIndexSet(second))
	require.Equal(t, 0, g.Dim())
	require.Equal(t, 4, lattice.CachedColumns(g))
	require.True(t, second.Equal(g.IndexSet()))

	jumps := g.Stats().Jumps
	got, err := g.Ingredients()
	require.NoError(t, err)
	require.Equal(t, jumps+2, g.Stats().Jumps, "only 777 and 100000 are far")

	fresh, err := lattice.NewMRGLac(m, a, second, 8)
	require.NoError(t, err)
	want, err := fresh.Ingredients()
	require.NoError(t, err)
	require.True(t, want.Equal(got), "\n%v\nvs\n%v", want, got)

	require.NoError(t, g.BuildBasis(7))
	require.NoError(t, g.BuildDualBasis(7))
	requireDual(t, g)
}

func TestMRGLacErrors(t *testing.T) {
	m := big.NewInt(101)
	_, err := lattice.NewMRGLac(m, bigs(3), nil, 4)
	require.ErrorIs(t, err, lattice.ErrBadIndexSet)
	_, err = lattice.NewMRGLac(m, bigs(3), mustIndexSet(t, 1, 2, 3, 4, 5), 4)
	require.ErrorIs(t, err, lattice.ErrBadIndexSet)

	_, err = lattice.NewIndexSet(2, 2)
	require.ErrorIs(t, err, lattice.ErrBadIndexSet)
	_, err = lattice.NewIndexSet(0, 4)
	require.ErrorIs(t, err, lattice.ErrBadIndexSet)

	g, err := lattice.NewMRGLac(m, bigs(3), mustIndexSet(t, 1, 5), 4)
	require.NoError(t, err)
	require.ErrorIs(t, g.BuildBasis(3), lattice.ErrDimOutOfRange)
	require.ErrorIs(t, g.SetIndexSet(lattice.IndexSet{big.NewInt(3), big.NewInt(1)}), lattice.ErrBadIndexSet)
}

func TestMRGLacHugeIndex(t *testing.T) {
	far := new(big.Int).Lsh(big.NewInt(1), 80)
	idx, err := lattice.NewIndexSetBig(big.NewInt(1), big.NewInt(2), far, new(big.Int).Add(far, big.NewInt(1)))
	require.NoError(t, err)

	g, err := lattice.NewMRGLac(m31, bigs(1071064, 0, 2113664), idx, 4, lattice.WithStepLimit(2))
	require.NoError(t, err)
	require.NoError(t, g.BuildBasis(4))
	require.NoError(t, g.BuildDualBasis(4))
	requireDual(t, g)
	require.Equal(t, int64(1), g.Stats().Jumps)
	require.Equal(t, int64(1), g.Stats().Steps)
}
