// SPDX-License-Identifier: MIT
package lattice_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/latmrg/lattice"
	"github.com/katalvlaran/latmrg/matrix"
)

type MRGSuite struct {
	suite.Suite
	m *big.Int
	g *lattice.MRG
}

func (s *MRGSuite) SetupTest() {
	s.m = big.NewInt(101)
	g, err := lattice.NewMRG(s.m, bigs(37, 22), 6)
	s.Require().NoError(err)
	s.g = g
}

func (s *MRGSuite) TestKnownBasis() {
	require := require.New(s.T())
	require.NoError(s.g.BuildBasis(4))
	require.NoError(s.g.BuildDualBasis(4))

	require.True(mustDense(s.T(), [][]int64{
		{1, 0, 22, 6},
		{0, 1, 37, 78},
		{0, 0, 101, 0},
		{0, 0, 0, 101},
	}).Equal(s.g.Basis()), "primal:\n%v", s.g.Basis())
	require.True(mustDense(s.T(), [][]int64{
		{101, 0, 0, 0},
		{0, 101, 0, 0},
		{-22, -37, 1, 0},
		{-6, -78, 0, 1},
	}).Equal(s.g.DualBasis()), "dual:\n%v", s.g.DualBasis())
}

func (s *MRGSuite) TestDualityAtMaxDim() {
	require := require.New(s.T())
	require.NoError(s.g.BuildBasis(6))
	require.NoError(s.g.BuildDualBasis(6))
	require.Equal(6, s.g.Dim())
	requireDual(s.T(), s.g)
	requireTriangular(s.T(), s.g)
}

func (s *MRGSuite) TestDualWithoutPrimal() {
	require := require.New(s.T())
	require.NoError(s.g.BuildDualBasis(5))
	require.Equal(0, s.g.Dim())
	require.Equal(5, s.g.DualDim())
	require.False(s.g.HasDual())
}

func (s *MRGSuite) TestDeterminantLaw() {
	require := require.New(s.T())
	k := s.g.Order()
	for dim := k; dim <= s.g.MaxDim(); dim++ {
		require.NoError(s.g.BuildBasis(dim))
		det, err := matrix.Det(s.g.Basis())
		require.NoError(err)
		want := new(big.Int).Exp(s.m, big.NewInt(int64(dim-k)), nil)
		require.Zero(want.Cmp(det), "dim %d: det %v", dim, det)
	}
}

func (s *MRGSuite) TestBelowOrder() {
	require := require.New(s.T())
	g, err := lattice.NewMRG(s.m, bigs(3, 5, 7), 6)
	require.NoError(err)

	require.NoError(g.BuildBasis(2))
	require.NoError(g.BuildDualBasis(2))
	require.True(mustDense(s.T(), [][]int64{{1, 0}, {0, 1}}).Equal(g.Basis()))
	require.True(mustDense(s.T(), [][]int64{{101, 0}, {0, 101}}).Equal(g.DualBasis()))
	requireDual(s.T(), g)

	for g.Dim() < 5 {
		require.NoError(g.IncDimBasis())
		require.NoError(g.IncDimDualBasis())
		requireDual(s.T(), g)
	}
}

func (s *MRGSuite) TestIncrementsFromEmpty() {
	require := require.New(s.T())
	for d := 1; d <= 6; d++ {
		require.NoError(s.g.IncDimBasis())
		require.NoError(s.g.IncDimDualBasis())
		require.Equal(d, s.g.Dim())
		requireDual(s.T(), s.g)
	}
	want := s.g.Fingerprint()

	fresh, err := lattice.NewMRG(s.m, bigs(37, 22), 6)
	require.NoError(err)
	require.NoError(fresh.BuildBasis(6))
	require.NoError(fresh.BuildDualBasis(6))
	require.Equal(want, fresh.Fingerprint())
}

func (s *MRGSuite) TestBounds() {
	require := require.New(s.T())
	require.ErrorIs(s.g.BuildBasis(7), lattice.ErrDimOutOfRange)
	require.ErrorIs(s.g.BuildDualBasis(-1), lattice.ErrDimOutOfRange)

	require.NoError(s.g.BuildBasis(6))
	require.ErrorIs(s.g.IncDimBasis(), lattice.ErrDimOutOfRange)
	require.Equal(6, s.g.Dim(), "failed increment must not change the basis")

	require.NoError(s.g.BuildBasis(0))
	require.Equal(0, s.g.Dim())
}

func (s *MRGSuite) TestIncrementAfterExternalReduction() {
	require := require.New(s.T())
	require.NoError(s.g.BuildBasis(4))

	// Unimodular row operation in place: row0 += 3·row1, then swap rows 0 and 2.
	v := s.g.Basis()
	for j := 0; j < 4; j++ {
		r0, _ := v.At(0, j)
		r1, _ := v.At(1, j)
		r2, _ := v.At(2, j)
		r0.Add(r0, new(big.Int).Mul(big.NewInt(3), r1))
		require.NoError(v.Set(0, j, r2))
		require.NoError(v.Set(2, j, r0))
	}

	require.NoError(s.g.IncDimBasis())
	fresh, err := lattice.NewMRG(s.m, bigs(37, 22), 6)
	require.NoError(err)
	require.NoError(fresh.BuildBasis(5))
	requireSameLattice(s.T(), fresh.Basis(), s.g.Basis())
}

func (s *MRGSuite) TestSetCoefficientsInvalidates() {
	require := require.New(s.T())
	require.NoError(s.g.BuildBasis(6))
	require.NoError(s.g.BuildDualBasis(6))

	require.NoError(s.g.SetCoefficients(bigs(12)))
	require.Equal(0, s.g.Dim())
	require.Equal(0, s.g.DualDim())
	require.Equal(1, s.g.Order())
	require.Equal(0, lattice.CachedColumns(s.g))

	require.NoError(s.g.BuildBasis(3))
	require.True(mustDense(s.T(), [][]int64{{1, 12, 43}, {0, 101, 0}, {0, 0, 101}}).Equal(s.g.Basis()))

	require.ErrorIs(s.g.SetCoefficients(nil), lattice.ErrEmptyCoefficients)
}

func (s *MRGSuite) TestCoefficientsAreReduced() {
	g, err := lattice.NewMRG(s.m, bigs(-64, 123), 4)
	s.Require().NoError(err)
	s.Require().Equal(bigs(37, 22), g.Coefficients())
}

func (s *MRGSuite) TestSequenceMemoized() {
	require := require.New(s.T())
	require.NoError(s.g.BuildBasis(4))
	require.Equal(int64(2), s.g.Stats().Steps)
	require.NoError(s.g.BuildBasis(3))
	require.NoError(s.g.BuildBasis(6))
	require.Equal(int64(4), s.g.Stats().Steps, "only the missing suffix is evaluated")
	require.Equal(6, lattice.CachedColumns(s.g))
}

func TestMRGSuite(t *testing.T) {
	suite.Run(t, new(MRGSuite))
}

func TestLCGIncrementsMatchBuild(t *testing.T) {
	inc, err := lattice.NewLCG(m31, big.NewInt(45991), 8)
	require.NoError(t, err)
	require.NoError(t, inc.BuildBasis(2))
	require.NoError(t, inc.BuildDualBasis(2))
	for inc.Dim() < 8 {
		require.NoError(t, inc.IncDimBasis())
		require.NoError(t, inc.IncDimDualBasis())
	}

	direct, err := lattice.NewLCG(m31, big.NewInt(45991), 8)
	require.NoError(t, err)
	require.NoError(t, direct.BuildBasis(8))
	require.NoError(t, direct.BuildDualBasis(8))

	require.True(t, direct.Basis().Equal(inc.Basis()))
	require.True(t, direct.DualBasis().Equal(inc.DualBasis()))
	require.Equal(t, direct.Fingerprint(), inc.Fingerprint())
	requireDual(t, inc)
}

func TestMRGRandomDuality(t *testing.T) {
	src := newKeyedSource(t, "mrg-duality")
	for trial := 0; trial < 12; trial++ {
		m := 2 + src.Int63n(1<<40)
		k := 1 + int(src.Int63n(5))
		a := make([]int64, k)
		for j := range a {
			a[j] = src.Int63n(m)
		}
		maxDim := k + int(src.Int63n(8))
		g, err := lattice.NewMRG(big.NewInt(m), bigs(a...), maxDim)
		require.NoError(t, err)
		for dim := 1; dim <= maxDim; dim++ {
			require.NoError(t, g.BuildBasis(dim))
			require.NoError(t, g.BuildDualBasis(dim))
			requireDual(t, g)
		}
	}
}

func TestMRGConstructorErrors(t *testing.T) {
	_, err := lattice.NewMRG(big.NewInt(1), bigs(3), 4)
	require.ErrorIs(t, err, lattice.ErrBadModulus)
	_, err = lattice.NewMRG(nil, bigs(3), 4)
	require.ErrorIs(t, err, lattice.ErrBadModulus)
	_, err = lattice.NewMRG(big.NewInt(7), nil, 4)
	require.ErrorIs(t, err, lattice.ErrEmptyCoefficients)
	_, err = lattice.NewMRG(big.NewInt(7), []*big.Int{nil}, 4)
	require.ErrorIs(t, err, lattice.ErrEmptyCoefficients)
	_, err = lattice.NewMRG(big.NewInt(7), bigs(3), 0)
	require.ErrorIs(t, err, lattice.ErrBadDimension)
}
