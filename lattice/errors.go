// SPDX-License-Identifier: MIT
// Package lattice: sentinel error set.
//
// Taxonomy:
//   - bound violations: ErrDimOutOfRange, ErrProjectionTooLarge, ErrStepLimit;
//   - degenerate input: ErrBadModulus, ErrEmptyCoefficients, ErrBadIndexSet,
//     ErrBadCoordinates, ErrBadDimension, ErrBadMatrix, ErrUnknownKind;
//   - rank problems: ErrNotFullRank, ErrNoBasis.
//
// Operations wrap these with an op tag ("BuildBasis(9): lattice: ...");
// match with errors.Is. Nothing in this package retries.

package lattice

import "errors"

var (
	// ErrBadModulus is returned when a family is constructed with m ≤ 1.
	ErrBadModulus = errors.New("lattice: modulus must be greater than 1")

	// ErrEmptyCoefficients is returned for a recurrence of order 0.
	ErrEmptyCoefficients = errors.New("lattice: empty coefficient vector")

	// ErrBadDimension is returned when maxDim < 1, or when an MLCG maxDim is
	// not a multiple of the output width w.
	ErrBadDimension = errors.New("lattice: invalid maximal dimension")

	// ErrBadMatrix is returned for a nil, non-square or mismatched generator
	// matrix A or output matrix B.
	ErrBadMatrix = errors.New("lattice: invalid generator matrix")

	// ErrBadIndexSet is returned for an empty, non-positive, non-increasing
	// or oversized lacunary index set.
	ErrBadIndexSet = errors.New("lattice: invalid lacunary index set")

	// ErrBadCoordinates is returned for an empty, non-positive or
	// non-increasing projection coordinate set.
	ErrBadCoordinates = errors.New("lattice: invalid projection coordinates")

	// ErrDimOutOfRange is returned when a dimension or coordinate exceeds
	// maxDim (or the size of the lacunary index set).
	ErrDimOutOfRange = errors.New("lattice: dimension out of range")

	// ErrProjectionTooLarge is returned when a projection has more than
	// maxDimProj coordinates.
	ErrProjectionTooLarge = errors.New("lattice: projection exceeds maxDimProj")

	// ErrStepLimit is returned when computing the generating sequence would
	// take more direct recurrence steps than WithStepLimit allows.
	ErrStepLimit = errors.New("lattice: direct recurrence step limit exceeded")

	// ErrNotFullRank is returned when a projection reduction yields a zero
	// pivot. It is never returned for well-formed m-lattices.
	ErrNotFullRank = errors.New("lattice: projected generating set is not of full rank")

	// ErrNoBasis is returned by IntLattice operations that need a primal
	// basis when none is stored.
	ErrNoBasis = errors.New("lattice: no primal basis")

	// ErrUnknownKind is returned by Build for an unknown family kind.
	ErrUnknownKind = errors.New("lattice: unknown generator family")
)
