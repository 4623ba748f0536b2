// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for the kernels.
//   • Random data comes from a keyed PRNG so every run sees the same inputs.

package matrix_test

import (
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo/v4/utils"

	"github.com/katalvlaran/latmrg/matrix"
)

// MustDense builds a *Dense from int64 rows or fails the test.
func MustDense(tb testing.TB, rows [][]int64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(tb, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(tb testing.TB, m *matrix.Dense, i, j int) *big.Int {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
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

// randomGenerators returns an n×d matrix with entries in [0, m).
func randomGenerators(s *keyedSource, n, d int, m int64) *matrix.Dense {
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = make([]int64, d)
		for j := range rows[i] {
			rows[i][j] = s.Int63n(m)
		}
	}
	g, err := matrix.NewDenseFrom(rows)
	require.NoError(s.tb, err)

	return g
}
