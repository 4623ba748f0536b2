// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/latmrg/matrix"
)

const opBuild = "Build"

// Kind tags a generator family.
type Kind int

const (
	// KindMRG is a multiple recursive generator of order len(Coefficients).
	KindMRG Kind = iota
	// KindLCG is an MRG of order 1.
	KindLCG
	// KindMRGLac is an MRG (or LCG) restricted to Index.
	KindMRGLac
	// KindMLCG is a matrix generator (A, optional B).
	KindMLCG
	// KindMLCGLac is a matrix generator restricted to Index.
	KindMLCGLac
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindMRG:
		return "MRG"
	case KindLCG:
		return "LCG"
	case KindMRGLac:
		return "MRGLac"
	case KindMLCG:
		return "MLCG"
	case KindMLCGLac:
		return "MLCGLac"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Family describes a generator by value. Fields not used by Kind are ignored.
type Family struct {
	Kind         Kind
	Modulus      *big.Int
	Coefficients []*big.Int   // MRG, LCG, MRGLac
	A, B         *matrix.Dense // MLCG, MLCGLac; B optional
	Index        IndexSet      // MRGLac, MLCGLac
}

// Build constructs the Lattice described by f.
//
// Errors: ErrUnknownKind, plus those of the matching constructor.
func Build(f Family, maxDim int, opts ...Option) (Lattice, error) {
	switch f.Kind {
	case KindMRG:
		return asLattice(NewMRG(f.Modulus, f.Coefficients, maxDim, opts...))
	case KindLCG:
		if len(f.Coefficients) != 1 {
			return nil, fmt.Errorf("%s: LCG takes 1 coefficient, got %d: %w", opBuild, len(f.Coefficients), ErrEmptyCoefficients)
		}
		return asLattice(NewLCG(f.Modulus, f.Coefficients[0], maxDim, opts...))
	case KindMRGLac:
		return asLattice(NewMRGLac(f.Modulus, f.Coefficients, f.Index, maxDim, opts...))
	case KindMLCG:
		return asLattice(NewMLCGWithOutput(f.Modulus, f.A, f.B, maxDim, opts...))
	case KindMLCGLac:
		return asLattice(NewMLCGLac(f.Modulus, f.A, f.B, f.Index, maxDim, opts...))
	default:
		return nil, fmt.Errorf("%s: %v: %w", opBuild, f.Kind, ErrUnknownKind)
	}
}

// asLattice keeps a failed constructor from yielding a non-nil interface
// around a nil pointer.
func asLattice[T Lattice](l T, err error) (Lattice, error) {
	if err != nil {
		return nil, err
	}

	return l, nil
}

var (
	_ Lattice = (*MRG)(nil)
	_ Lattice = (*MRGLac)(nil)
	_ Lattice = (*MLCG)(nil)
	_ Lattice = (*MLCGLac)(nil)
	_ Bases   = (*IntLattice)(nil)
)
