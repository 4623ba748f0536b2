// SPDX-License-Identifier: MIT

package zmod

import "errors"

var (
	// ErrBadModulus is returned when a modulus m ≤ 1 (or nil) is supplied.
	ErrBadModulus = errors.New("zmod: modulus must be greater than 1")

	// ErrNegativeExponent is returned by PowMod for e < 0.
	ErrNegativeExponent = errors.New("zmod: negative exponent")

	// ErrNotInvertible is returned by InvMod when gcd(a, m) ≠ 1.
	ErrNotInvertible = errors.New("zmod: element is not invertible")

	// ErrNotDivisible is returned by ExactDiv when the division leaves a remainder.
	ErrNotDivisible = errors.New("zmod: inexact division")

	// ErrDivisionByZero is returned by ExactDiv for a zero divisor.
	ErrDivisionByZero = errors.New("zmod: division by zero")
)
