// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites add context with
// fmt.Errorf("ctx: %w", ErrX); callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> modulus -> structural violations
// (singular, non-integral, not triangular).

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// rows or columns, or a window that does not fit its base).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Mul where a.Cols != b.Rows, or ragged input rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNilValue indicates that a nil *big.Int was stored or supplied.
	ErrNilValue = errors.New("matrix: nil value")

	// ErrBadModulus indicates a modulus m ≤ 1 in a modular kernel.
	ErrBadModulus = errors.New("matrix: modulus must be greater than 1")

	// ErrSingular is returned when a matrix has no inverse over Q, or when a
	// triangular basis has a zero on its diagonal.
	ErrSingular = errors.New("matrix: matrix is singular")

	// ErrNotIntegral is returned when an m-dual would need non-integer
	// entries, i.e. m·Z^n is not contained in the lattice spanned by the rows.
	ErrNotIntegral = errors.New("matrix: result is not integral")

	// ErrNotTriangular is returned when a triangular kernel receives a
	// matrix with non-zero entries on the wrong side of the diagonal.
	ErrNotTriangular = errors.New("matrix: matrix is not triangular")
)

// ErrNotDual is returned by CheckMDual when V·Wᵗ ≠ m·I.
var ErrNotDual = errors.New("matrix: not an m-dual pair")
