// SPDX-License-Identifier: MIT

package zmod

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/lattigo/v4/ring"
)

// WordModulusBits is the largest modulus bit length handled by the word-size
// exponentiation path. lattigo's Barrett reduction is exact below 2^62.
const WordModulusBits = 61

// PowMod returns b^e mod m for e ≥ 0.
//
// Implementation:
//   - Stage 1: validate m and e.
//   - Stage 2: reduce b into [0, m).
//   - Stage 3: if m < 2^61 and e fits a uint64, run ring.ModExp in machine
//     words; otherwise use big.Int.Exp.
//
// Complexity:
//   - O(log e) modular multiplications.
func PowMod(b, e, m *big.Int) (*big.Int, error) {
	if err := Validate(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opPowMod, err)
	}
	if e.Sign() < 0 {
		return nil, fmt.Errorf("%s: %w", opPowMod, ErrNegativeExponent)
	}
	base := Mod(b, m)
	if m.BitLen() <= WordModulusBits && e.IsUint64() {
		r := ring.ModExp(base.Uint64(), e.Uint64(), m.Uint64())

		return new(big.Int).SetUint64(r), nil
	}

	return base.Exp(base, e, m), nil
}

// PowModInt64 is PowMod with a machine exponent.
func PowModInt64(b *big.Int, e int64, m *big.Int) (*big.Int, error) {
	return PowMod(b, big.NewInt(e), m)
}
