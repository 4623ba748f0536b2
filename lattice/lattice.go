// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/latmrg/matrix"
	"golang.org/x/crypto/sha3"
)

const (
	opNewIntLattice = "NewIntLattice"
	opCheckDuality  = "CheckDuality"
	opDeterminant   = "Determinant"
)

// Bases is the read side shared by every lattice object: a modulus and a
// primal/dual basis pair.
type Bases interface {
	Modulus() *big.Int
	Dim() int
	DualDim() int
	HasDual() bool
	Basis() *matrix.Dense
	DualBasis() *matrix.Dense
}

// Lattice is the capability set of a generator family: build, grow and
// project the m-lattice of its output vectors.
//
// Contract:
//   - Basis() is upper-triangular and DualBasis() lower-triangular as built,
//     with Basis()·DualBasis()ᵗ = m·I whenever HasDual().
//   - IncDimBasis from d equals BuildBasis(d+1) when the basis was not
//     transformed in between.
//   - Projections return independent objects and leave the bases untouched.
type Lattice interface {
	Bases
	MaxDim() int
	MaxDimProj() int
	BuildBasis(dim int) error
	BuildDualBasis(dim int) error
	IncDimBasis() error
	IncDimDualBasis() error
	BuildProjection(c Coordinates) (*IntLattice, error)
	BuildProjectionDual(c Coordinates) (*IntLattice, error)
	Stats() Stats
}

// IntLattice is a plain m-lattice given by a basis, and optionally its
// m-dual. Projections return IntLattice values; callers may also wrap
// externally reduced bases.
type IntLattice struct {
	m      *big.Int
	maxDim int
	basis  *matrix.Dense
	dual   *matrix.Dense
}

// NewIntLattice copies v (and w when non-nil) into a new lattice.
// maxDim 0 means Dim().
//
// Errors: ErrBadModulus, ErrBadMatrix (nil or non-square v, w of another
// shape), ErrBadDimension (maxDim below the basis dimension).
func NewIntLattice(m *big.Int, v, w *matrix.Dense, maxDim int) (*IntLattice, error) {
	if m == nil || m.Cmp(big.NewInt(1)) <= 0 {
		return nil, fmt.Errorf("%s: %w", opNewIntLattice, ErrBadModulus)
	}
	if err := matrix.ValidateSquare(v); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", opNewIntLattice, err, ErrBadMatrix)
	}
	if w != nil {
		if err := matrix.ValidateSameShape(v, w); err != nil {
			return nil, fmt.Errorf("%s: dual: %v: %w", opNewIntLattice, err, ErrBadMatrix)
		}
		w = w.Clone()
	}
	if maxDim == 0 {
		maxDim = v.Rows()
	}
	if maxDim < v.Rows() {
		return nil, fmt.Errorf("%s: maxDim %d < %d: %w", opNewIntLattice, maxDim, v.Rows(), ErrBadDimension)
	}

	return newIntLattice(m, v.Clone(), w, maxDim), nil
}

// newIntLattice takes ownership of v and w.
func newIntLattice(m *big.Int, v, w *matrix.Dense, maxDim int) *IntLattice {
	if w == nil {
		w, _ = matrix.NewDense(0, 0)
	}

	return &IntLattice{m: new(big.Int).Set(m), maxDim: maxDim, basis: v, dual: w}
}

// Modulus returns a copy of m.
func (l *IntLattice) Modulus() *big.Int { return new(big.Int).Set(l.m) }

// MaxDim returns the dimension bound.
func (l *IntLattice) MaxDim() int { return l.maxDim }

// Dim returns the primal dimension.
func (l *IntLattice) Dim() int { return l.basis.Rows() }

// DualDim returns the dual dimension, 0 when no dual is stored.
func (l *IntLattice) DualDim() int { return l.dual.Rows() }

// HasDual reports whether a dual of the primal's dimension is stored.
func (l *IntLattice) HasDual() bool { return l.Dim() > 0 && l.DualDim() == l.Dim() }

// Basis returns the stored primal basis (shared, mutable in place).
func (l *IntLattice) Basis() *matrix.Dense { return l.basis }

// DualBasis returns the stored dual basis (shared, mutable in place).
func (l *IntLattice) DualBasis() *matrix.Dense { return l.dual }

// BuildDualBasis recomputes the dual from the stored primal, by triangular
// back-substitution when it is upper-triangular and by exact rational
// inversion otherwise.
//
// Errors: ErrNoBasis, matrix.ErrSingular, matrix.ErrNotIntegral (the basis
// does not span an m-lattice).
func (l *IntLattice) BuildDualBasis() error {
	if l.Dim() == 0 {
		return fmt.Errorf("%s: %w", opBuildDualBasis, ErrNoBasis)
	}
	w, err := matrix.MDual(l.basis, l.m)
	if err != nil {
		return fmt.Errorf("%s: %w", opBuildDualBasis, err)
	}
	l.dual = w

	return nil
}

// CheckDuality verifies Basis()·DualBasis()ᵗ = m·I exactly.
// Errors: ErrNoBasis, matrix.ErrDimensionMismatch, matrix.ErrNotDual.
func (l *IntLattice) CheckDuality() error {
	if l.Dim() == 0 {
		return fmt.Errorf("%s: %w", opCheckDuality, ErrNoBasis)
	}
	if err := matrix.CheckMDual(l.basis, l.dual, l.m); err != nil {
		return fmt.Errorf("%s: %w", opCheckDuality, err)
	}

	return nil
}

// Determinant returns det Basis(), the covolume of the lattice up to sign.
func (l *IntLattice) Determinant() (*big.Int, error) {
	if l.Dim() == 0 {
		return nil, fmt.Errorf("%s: %w", opDeterminant, ErrNoBasis)
	}
	det, err := matrix.Det(l.basis)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDeterminant, err)
	}

	return det, nil
}

// Fingerprint returns SHA3-256 over the modulus and the fingerprints of both
// bases. Equal fingerprints mean bit-identical bases, not merely equal
// lattices.
func (l *IntLattice) Fingerprint() [matrix.FingerprintSize]byte {
	return fingerprint(l.m, l.basis, l.dual)
}

func fingerprint(m *big.Int, v, w *matrix.Dense) [matrix.FingerprintSize]byte {
	h := sha3.New256()
	h.Write(m.Bytes())
	fv, fw := v.Fingerprint(), w.Fingerprint()
	h.Write(fv[:])
	h.Write(fw[:])

	var out [matrix.FingerprintSize]byte
	copy(out[:], h.Sum(nil))

	return out
}

// BuildProjection returns the projection of the lattice onto coordinates c,
// reduced to an upper-triangular basis. Requires the lattice to contain
// m·Z^Dim(), which holds for every basis produced by this package.
func (l *IntLattice) BuildProjection(c Coordinates) (*IntLattice, error) {
	return l.project(opBuildProjection, c, false)
}

// BuildProjectionDual is BuildProjection with the m-dual of the projection.
func (l *IntLattice) BuildProjectionDual(c Coordinates) (*IntLattice, error) {
	return l.project(opBuildProjectionDual, c, true)
}

func (l *IntLattice) project(op string, c Coordinates, withDual bool) (*IntLattice, error) {
	if l.Dim() == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNoBasis)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if c.Max() > l.Dim() {
		return nil, fmt.Errorf("%s: coordinate %d, dimension %d: %w", op, c.Max(), l.Dim(), ErrDimOutOfRange)
	}
	rows := make([]int, l.Dim())
	for i := range rows {
		rows[i] = i
	}
	cols := make([]int, len(c))
	for j, x := range c {
		cols[j] = x - 1
	}
	gen, err := l.basis.Induced(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	v, w, err := reduceProjection(l.m, gen, withDual)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return newIntLattice(l.m, v, w, len(c)), nil
}
