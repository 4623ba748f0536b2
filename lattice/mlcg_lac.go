// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/latmrg/matrix"
)

const opNewMLCGLac = "NewMLCGLac"

// MLCGLac is an MLCG observed at the output indices of a lacunary set: index
// i is row (i−1) mod w of the output block (i−1) / w.
//
// Far blocks are reached by exponentiation; WithExponentiation and
// WithPolyCrossover choose between matrix powering and the characteristic
// polynomial quotient ring.
type MLCGLac struct {
	*engine
	seq *lacPowers
}

// NewMLCGLac returns the lacunary family of (A, B); b may be nil.
//
// Errors: ErrBadModulus, ErrBadDimension, ErrBadMatrix, ErrBadIndexSet.
func NewMLCGLac(m *big.Int, a, b *matrix.Dense, idx IndexSet, maxDim int, opts ...Option) (*MLCGLac, error) {
	e, err := newEngine(m, maxDim, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewMLCGLac, err)
	}
	if err = checkIndexSet(idx, maxDim); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewMLCGLac, err)
	}
	ra, rb, err := prepareMatrices(a, b, e.m, maxDim, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewMLCGLac, err)
	}
	seq := newLacPowers(e.m, ra, rb, idx.Clone(), e.opts, e.meter)
	e.src = seq

	return &MLCGLac{engine: e, seq: seq}, nil
}

// Order returns k.
func (g *MLCGLac) Order() int { return g.seq.k }

// Width returns the output width w.
func (g *MLCGLac) Width() int { return g.seq.w }

// Exponentiation returns the far-jump strategy in effect (never ExpAuto).
func (g *MLCGLac) Exponentiation() Exponentiation { return g.seq.expo }

// Matrix returns copies of A and B (nil when absent), reduced mod m.
func (g *MLCGLac) Matrix() (a, b *matrix.Dense) {
	return cloneDense(g.seq.a), cloneDense(g.seq.b)
}

// IndexSet returns a copy of the lacunary index set.
func (g *MLCGLac) IndexSet() IndexSet { return g.seq.idx.Clone() }

// SetMatrix replaces A and B and discards every ingredient, triangular cache
// and basis.
func (g *MLCGLac) SetMatrix(a, b *matrix.Dense) error {
	ra, rb, err := prepareMatrices(a, b, g.m, g.maxDim, false)
	if err != nil {
		return fmt.Errorf("%s: %w", opSetMatrix, err)
	}
	g.seq.reset(ra, rb, g.opts)
	g.invalidate()

	return nil
}

// SetIndexSet replaces the index set; see MRGLac.SetIndexSet.
func (g *MLCGLac) SetIndexSet(idx IndexSet) error {
	if g.seq.idx.Equal(idx) {
		return nil
	}
	if err := checkIndexSet(idx, g.maxDim); err != nil {
		return fmt.Errorf("%s: %w", opSetIndexSet, err)
	}
	g.seq.setIndex(idx.Clone())
	g.invalidate()

	return nil
}

// Ingredients returns a copy of the k×s ingredient matrix.
func (g *MLCGLac) Ingredients() (*matrix.Dense, error) { return g.ingredients() }

// BuildBasis builds the dim×dim primal basis, dim ≤ min(maxDim, s).
func (g *MLCGLac) BuildBasis(dim int) error { return g.buildBasis(dim) }

// BuildDualBasis builds the m-dual basis.
func (g *MLCGLac) BuildDualBasis(dim int) error { return g.buildDualBasis(dim) }

// IncDimBasis grows the primal basis by one dimension.
func (g *MLCGLac) IncDimBasis() error { return g.incDimBasis(nil) }

// IncDimDualBasis grows the dual basis by one dimension.
func (g *MLCGLac) IncDimDualBasis() error { return g.incDimDualBasis() }

// BuildProjection returns the projection onto coordinates c.
func (g *MLCGLac) BuildProjection(c Coordinates) (*IntLattice, error) { return g.project(c, false) }

// BuildProjectionDual is BuildProjection with the m-dual.
func (g *MLCGLac) BuildProjectionDual(c Coordinates) (*IntLattice, error) { return g.project(c, true) }
