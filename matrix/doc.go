// Package matrix offers exact-integer dense matrices and the lattice kernels
// built on them.
//
// The matrix package provides:
//
//   - Dense: a row-major *big.Int matrix with bounds-checked At/Set, deep
//     Clone, no-copy View windows and a SHA3-256 Fingerprint.
//   - Exact linear algebra: Mul, MulMod, MulVec, VecMul, Transpose, Det
//     (fraction-free Bareiss) and Inverse over Q.
//   - Lattice kernels for m-lattices (m·Z^d ⊆ L ⊆ Z^d):
//     UpperTriangularBasis, MDualUpperTriangular, MDual, CheckMDual and
//     SameLattice.
//
// Nothing in this package rounds. Bases handed to reduction engines and their
// m-duals satisfy V·Wᵗ = m·I exactly.
//
// See example_test.go for usage patterns.
package matrix
