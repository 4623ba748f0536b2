// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/latmrg/matrix"
)

const (
	opNewMLCG   = "NewMLCG"
	opSetMatrix = "SetMatrix"
)

// MLCG is the lattice family of a matrix linear congruential generator
//
//	x_{p+1} = A·x_p mod m,   u_p = B·x_p mod m,
//
// with A k×k and an optional w×k output matrix B (B = I_k when absent).
// Successive outputs u_0, u_1, … are concatenated into the vectors of L_t,
// so t runs over blocks of width w and maxDim must be a multiple of w.
//
// Without B the generating matrix starts with I_k and the unit-prefix
// formulas apply. With B, bases come from a one-off reduction of the
// generating set over the whole maxDim extent.
type MLCG struct {
	*engine
	seq *powerSequence
}

// NewMLCG returns the family of x_{p+1} = A·x_p mod m with full-state output.
//
// Errors: ErrBadModulus, ErrBadDimension, ErrBadMatrix.
func NewMLCG(m *big.Int, a *matrix.Dense, maxDim int, opts ...Option) (*MLCG, error) {
	return NewMLCGWithOutput(m, a, nil, maxDim, opts...)
}

// NewMLCGWithOutput returns the family with output matrix b (w×k).
// maxDim must be a multiple of w.
func NewMLCGWithOutput(m *big.Int, a, b *matrix.Dense, maxDim int, opts ...Option) (*MLCG, error) {
	e, err := newEngine(m, maxDim, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewMLCG, err)
	}
	ra, rb, err := prepareMatrices(a, b, e.m, maxDim, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewMLCG, err)
	}
	seq := newPowerSequence(e.m, ra, rb, maxDim, e.meter)
	e.src = seq

	return &MLCG{engine: e, seq: seq}, nil
}

// prepareMatrices validates A and B and returns reduced copies. blocks
// requires maxDim to be a multiple of the output width.
func prepareMatrices(a, b *matrix.Dense, m *big.Int, maxDim int, blocks bool) (ra, rb *matrix.Dense, err error) {
	_, w, err := checkMatrices(a, b)
	if err != nil {
		return nil, nil, err
	}
	if blocks && maxDim%w != 0 {
		return nil, nil, fmt.Errorf("maxDim %d not a multiple of width %d: %w", maxDim, w, ErrBadDimension)
	}
	if ra, err = reducedCopy(a, m); err != nil {
		return nil, nil, err
	}
	if rb, err = reducedCopy(b, m); err != nil {
		return nil, nil, err
	}

	return ra, rb, nil
}

// Order returns k.
func (g *MLCG) Order() int { return g.seq.k }

// Width returns the output width w.
func (g *MLCG) Width() int { return g.seq.w }

// Matrix returns copies of A and B (nil when absent), reduced mod m.
func (g *MLCG) Matrix() (a, b *matrix.Dense) {
	return cloneDense(g.seq.a), cloneDense(g.seq.b)
}

// SetMatrix replaces A and B. The order and width may change but maxDim
// must stay a multiple of the width. Caches and bases are discarded.
func (g *MLCG) SetMatrix(a, b *matrix.Dense) error {
	ra, rb, err := prepareMatrices(a, b, g.m, g.maxDim, true)
	if err != nil {
		return fmt.Errorf("%s: %w", opSetMatrix, err)
	}
	g.seq.reset(ra, rb)
	g.invalidate()

	return nil
}

// BuildBasis builds the dim×dim primal basis. dim need not be a multiple
// of the width.
// Errors: ErrDimOutOfRange, ErrStepLimit.
func (g *MLCG) BuildBasis(dim int) error { return g.buildBasis(dim) }

// BuildDualBasis builds the m-dual basis.
func (g *MLCG) BuildDualBasis(dim int) error { return g.buildDualBasis(dim) }

// IncDimBasis grows the primal basis by one dimension.
func (g *MLCG) IncDimBasis() error { return g.incDimBasis(nil) }

// IncDimDualBasis grows the dual basis by one dimension.
func (g *MLCG) IncDimDualBasis() error { return g.incDimDualBasis() }

// BuildProjection returns the projection onto coordinates c.
func (g *MLCG) BuildProjection(c Coordinates) (*IntLattice, error) { return g.project(c, false) }

// BuildProjectionDual is BuildProjection with the m-dual.
func (g *MLCG) BuildProjectionDual(c Coordinates) (*IntLattice, error) { return g.project(c, true) }

func cloneDense(a *matrix.Dense) *matrix.Dense {
	if a == nil {
		return nil
	}

	return a.Clone()
}
