// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/latmrg/matrix"
)

const (
	opNewMRGLac   = "NewMRGLac"
	opSetIndexSet = "SetIndexSet"
)

// MRGLac is the lattice of an MRG observed only at the outputs listed in a
// lacunary index set I = {i₁ < … < i_s}: L_t is spanned by the vectors
// (x_{i₁−1}, …, x_{i_t−1}) over every initial state.
//
// The dimension bound is min(maxDim, s). When I starts with 1…k the
// unit-prefix formulas apply; otherwise bases come from a one-off reduction
// of the whole ingredient matrix.
type MRGLac struct {
	*engine
	seq *lacSequence
}

// NewMRGLac returns the lacunary family of the MRG with coefficients a.
//
// Errors: ErrBadModulus, ErrBadDimension, ErrEmptyCoefficients,
// ErrBadIndexSet (invalid, or more than maxDim indices).
func NewMRGLac(m *big.Int, a []*big.Int, idx IndexSet, maxDim int, opts ...Option) (*MRGLac, error) {
	e, err := newEngine(m, maxDim, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewMRGLac, err)
	}
	if err = checkIndexSet(idx, maxDim); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewMRGLac, err)
	}
	coef, err := normalizeCoefficients(a, e.m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewMRGLac, err)
	}
	seq, err := newLacSequence(e.m, coef, idx.Clone(), e.meter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewMRGLac, err)
	}
	e.src = seq

	return &MRGLac{engine: e, seq: seq}, nil
}

// NewLCGLac returns the lacunary family of x_n = a·x_{n−1} mod m. Far
// indices are reached by modular exponentiation of a.
func NewLCGLac(m, a *big.Int, idx IndexSet, maxDim int, opts ...Option) (*MRGLac, error) {
	return NewMRGLac(m, []*big.Int{a}, idx, maxDim, opts...)
}

func checkIndexSet(idx IndexSet, maxDim int) error {
	if err := idx.validate(); err != nil {
		return err
	}
	if len(idx) > maxDim {
		return fmt.Errorf("%d indices, maxDim %d: %w", len(idx), maxDim, ErrBadIndexSet)
	}

	return nil
}

// Order returns k.
func (g *MRGLac) Order() int { return len(g.seq.a) }

// Coefficients returns a copy of a₁…a_k, reduced mod m.
func (g *MRGLac) Coefficients() []*big.Int { return cloneInts(g.seq.a) }

// IndexSet returns a copy of the lacunary index set.
func (g *MRGLac) IndexSet() IndexSet { return g.seq.idx.Clone() }

// SetCoefficients replaces the coefficients and discards every ingredient,
// triangular cache and basis.
func (g *MRGLac) SetCoefficients(a []*big.Int) error {
	coef, err := normalizeCoefficients(a, g.m)
	if err != nil {
		return fmt.Errorf("%s: %w", opSetCoefficients, err)
	}
	if err = g.seq.reset(coef); err != nil {
		return fmt.Errorf("%s: %w", opSetCoefficients, err)
	}
	g.invalidate()

	return nil
}

// SetIndexSet replaces the index set. Setting an equal set does nothing.
// Otherwise the ingredients of the longest common prefix are kept, the
// suffix is recomputed on demand, and both bases are discarded.
func (g *MRGLac) SetIndexSet(idx IndexSet) error {
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

// Ingredients returns a copy of the k×s ingredient matrix: column j holds
// output i_j of the k unit trajectories. All s columns are computed.
func (g *MRGLac) Ingredients() (*matrix.Dense, error) {
	return g.ingredients()
}

// BuildBasis builds the dim×dim primal basis, dim ≤ min(maxDim, s).
// Errors: ErrDimOutOfRange, ErrStepLimit.
func (g *MRGLac) BuildBasis(dim int) error { return g.buildBasis(dim) }

// BuildDualBasis builds the m-dual basis.
func (g *MRGLac) BuildDualBasis(dim int) error { return g.buildDualBasis(dim) }

// IncDimBasis grows the primal basis by one dimension.
func (g *MRGLac) IncDimBasis() error { return g.incDimBasis(nil) }

// IncDimDualBasis grows the dual basis by one dimension.
func (g *MRGLac) IncDimDualBasis() error { return g.incDimDualBasis() }

// BuildProjection returns the projection onto coordinates c (positions in I).
func (g *MRGLac) BuildProjection(c Coordinates) (*IntLattice, error) { return g.project(c, false) }

// BuildProjectionDual is BuildProjection with the m-dual.
func (g *MRGLac) BuildProjectionDual(c Coordinates) (*IntLattice, error) { return g.project(c, true) }
