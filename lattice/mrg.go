// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math/big"
)

const (
	opNewMRG          = "NewMRG"
	opSetCoefficients = "SetCoefficients"
)

// MRG is the lattice family of a multiple recursive generator
//
//	x_n = (a₁x_{n−1} + … + a_k x_{n−k}) mod m,
//
// whose lattice L_t is spanned by all vectors (x_0, …, x_{t−1}) over every
// initial state. An LCG is the order-1 case.
//
// The generating matrix starts with I_k, so bases are built by formula in
// O(t²) and grown in O(t) per dimension.
type MRG struct {
	*engine
	seq *mrgSequence
}

// NewMRG returns an MRG family with coefficients a (a[0] = a₁) and dimension
// bound maxDim. Coefficients are reduced mod m.
//
// Errors: ErrBadModulus, ErrBadDimension, ErrEmptyCoefficients.
func NewMRG(m *big.Int, a []*big.Int, maxDim int, opts ...Option) (*MRG, error) {
	e, err := newEngine(m, maxDim, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewMRG, err)
	}
	coef, err := normalizeCoefficients(a, e.m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewMRG, err)
	}
	seq := newMRGSequence(e.m, coef, maxDim, e.meter)
	e.src = seq

	return &MRG{engine: e, seq: seq}, nil
}

// NewLCG returns the order-1 family x_n = a·x_{n−1} mod m.
func NewLCG(m, a *big.Int, maxDim int, opts ...Option) (*MRG, error) {
	return NewMRG(m, []*big.Int{a}, maxDim, opts...)
}

// Order returns k.
func (g *MRG) Order() int { return len(g.seq.a) }

// Coefficients returns a copy of a₁…a_k, reduced mod m.
func (g *MRG) Coefficients() []*big.Int { return cloneInts(g.seq.a) }

// SetCoefficients replaces the coefficients. The order may change. The
// sequence cache and both bases are discarded.
func (g *MRG) SetCoefficients(a []*big.Int) error {
	coef, err := normalizeCoefficients(a, g.m)
	if err != nil {
		return fmt.Errorf("%s: %w", opSetCoefficients, err)
	}
	g.seq.reset(coef)
	g.invalidate()

	return nil
}

// BuildBasis builds the dim×dim primal basis
//
//	V[i][j] = x^{(i)}_j for i < k,  V[i][i] = m for i ≥ k,  0 elsewhere,
//
// where x^{(i)} is the trajectory started from the i-th unit state.
// Errors: ErrDimOutOfRange, ErrStepLimit.
func (g *MRG) BuildBasis(dim int) error { return g.buildBasis(dim) }

// BuildDualBasis builds the lower-triangular m-dual W with V·Wᵗ = m·I
// without touching the primal basis.
// Errors: ErrDimOutOfRange, ErrStepLimit.
func (g *MRG) BuildDualBasis(dim int) error { return g.buildDualBasis(dim) }

// IncDimBasis grows the primal basis by one dimension. For d ≥ k the new
// column follows the recurrence row by row,
//
//	c_i = a₁V[i][d−1] + … + a_k V[i][d−k] mod m,
//
// so it remains valid after an external reduction of V.
// Errors: ErrDimOutOfRange.
func (g *MRG) IncDimBasis() error {
	return g.incDimBasis(g.recurrenceColumn)
}

func (g *MRG) recurrenceColumn(d int) ([]*big.Int, error) {
	k := len(g.seq.a)
	if d < k {
		return g.nextColumn(d)
	}
	col := make([]*big.Int, d)
	tmp := new(big.Int)
	for i := 0; i < d; i++ {
		acc := new(big.Int)
		for j := 1; j <= k; j++ {
			x, err := g.basis.At(i, d-j)
			if err != nil {
				return nil, err
			}
			acc.Add(acc, tmp.Mul(g.seq.a[j-1], x))
		}
		col[i] = acc.Mod(acc, g.m)
	}

	return col, nil
}

// IncDimDualBasis grows the dual basis by one dimension.
// Errors: ErrDimOutOfRange.
func (g *MRG) IncDimDualBasis() error { return g.incDimDualBasis() }

// BuildProjection returns the projection of L_t onto coordinates c.
// Errors: ErrBadCoordinates, ErrProjectionTooLarge, ErrDimOutOfRange.
func (g *MRG) BuildProjection(c Coordinates) (*IntLattice, error) { return g.project(c, false) }

// BuildProjectionDual is BuildProjection with the m-dual.
func (g *MRG) BuildProjectionDual(c Coordinates) (*IntLattice, error) { return g.project(c, true) }

func cloneInts(xs []*big.Int) []*big.Int {
	out := make([]*big.Int, len(xs))
	for i, x := range xs {
		out[i] = new(big.Int).Set(x)
	}

	return out
}
