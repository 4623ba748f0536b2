// Package zmod provides exact modular arithmetic on math/big integers.
//
// Every operation takes the modulus as an explicit argument; the package keeps
// no process-wide modulus context, so several moduli can be used concurrently
// from independent goroutines.
//
// Residues returned by this package are always canonical: 0 ≤ r < m.
//
// PowMod runs in machine words through lattigo's ring.ModExp when the modulus
// fits in 61 bits and the exponent fits in a uint64 (the common case for
// full-period LCG and MRG moduli such as 2^31−1 and 2^61−1); otherwise it
// falls back to big.Int.Exp.
package zmod
