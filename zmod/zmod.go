// SPDX-License-Identifier: MIT

package zmod

import (
	"fmt"
	"math/big"
)

// Operation tags used when wrapping sentinels.
const (
	opInvMod   = "InvMod"
	opPowMod   = "PowMod"
	opExactDiv = "ExactDiv"
)

var bigOne = big.NewInt(1)

// Validate reports ErrBadModulus unless m > 1.
func Validate(m *big.Int) error {
	if m == nil || m.Cmp(bigOne) <= 0 {
		return ErrBadModulus
	}

	return nil
}

// Mod returns the canonical residue of a modulo m, 0 ≤ r < m.
// The result is a fresh integer; a is never modified.
//
// big.Int.Mod already implements Euclidean modulus, so for m > 0 the result
// is non-negative even when a < 0.
func Mod(a, m *big.Int) *big.Int {
	return new(big.Int).Mod(a, m)
}

// ModInPlace reduces z modulo m in place and returns z.
func ModInPlace(z, m *big.Int) *big.Int {
	return z.Mod(z, m)
}

// AddMod returns (a + b) mod m.
func AddMod(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)

	return r.Mod(r, m)
}

// SubMod returns (a − b) mod m.
func SubMod(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)

	return r.Mod(r, m)
}

// MulMod returns (a · b) mod m.
func MulMod(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)

	return r.Mod(r, m)
}

// NegMod returns (−a) mod m.
func NegMod(a, m *big.Int) *big.Int {
	r := new(big.Int).Neg(a)

	return r.Mod(r, m)
}

// ExtGCD returns (g, s, t) with g = gcd(a, b) ≥ 0 and g = s·a + t·b.
// Both a and b may be negative or zero; gcd(0, 0) = 0 with s = t = 0.
func ExtGCD(a, b *big.Int) (g, s, t *big.Int) {
	g, s, t = new(big.Int), new(big.Int), new(big.Int)
	// big.Int.GCD accepts arbitrary signs since Go 1.14 and returns g ≥ 0.
	g.GCD(s, t, a, b)

	return g, s, t
}

// InvMod returns the inverse of a modulo m.
// Errors: ErrBadModulus, ErrNotInvertible (gcd(a, m) ≠ 1).
func InvMod(a, m *big.Int) (*big.Int, error) {
	if err := Validate(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opInvMod, err)
	}
	r := Mod(a, m)
	if r.ModInverse(r, m) == nil {
		return nil, fmt.Errorf("%s(%v mod %v): %w", opInvMod, a, m, ErrNotInvertible)
	}

	return r, nil
}

// ExactDiv returns a / b and fails unless b divides a.
// The quotient is exact, so the sign follows ordinary integer division.
func ExactDiv(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, fmt.Errorf("%s: %w", opExactDiv, ErrDivisionByZero)
	}
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 {
		return nil, fmt.Errorf("%s(%v / %v): %w", opExactDiv, a, b, ErrNotDivisible)
	}

	return q, nil
}
