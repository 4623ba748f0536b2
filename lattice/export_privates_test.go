// SPDX-License-Identifier: MIT

package lattice

import (
	"math/big"

	"github.com/katalvlaran/latmrg/matrix"
)

// ReduceProjection exposes the general projection path.
func ReduceProjection(m *big.Int, gen *matrix.Dense, withDual bool) (v, w *matrix.Dense, err error) {
	return reduceProjection(m, gen, withDual)
}

// CachedColumns returns the number of memoized generating-matrix columns.
func CachedColumns(l Lattice) int {
	switch g := l.(type) {
	case *MRG:
		return g.src.valid()
	case *MRGLac:
		return g.src.valid()
	case *MLCG:
		return g.src.valid()
	case *MLCGLac:
		return g.src.valid()
	default:
		return -1
	}
}
