// SPDX-License-Identifier: MIT

package polymod

import "errors"

var (
	// ErrBadModulus is returned for a modulus m ≤ 1.
	ErrBadModulus = errors.New("polymod: modulus must be greater than 1")

	// ErrBadDegree is returned when the ring polynomial has degree < 1, or
	// when an element's length differs from the ring degree.
	ErrBadDegree = errors.New("polymod: invalid polynomial degree")

	// ErrNotMonic is returned when the leading coefficient of f is not 1 mod m.
	ErrNotMonic = errors.New("polymod: polynomial is not monic")

	// ErrNegativeExponent is returned by PowX for e < 0.
	ErrNegativeExponent = errors.New("polymod: negative exponent")

	// ErrEmptyCoefficients is returned by MRGCharPoly for an empty coefficient list.
	ErrEmptyCoefficients = errors.New("polymod: empty coefficient vector")
)
