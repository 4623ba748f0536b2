// Package latmrg builds exact lattice bases for linear recurrence
// pseudorandom generators: the objects a spectral test or a lattice
// reduction engine consumes.
//
// 🚀 What is latmrg?
//
//	An exact-integer basis engine that brings together:
//		• Generator families: MRG, LCG, matrix LCG, and lacunary versions of each
//		• Primal and m-dual bases with V·Wᵗ = m·I, exactly
//		• O(t) growth by one dimension, bit-identical to a fresh build
//		• Projections onto any coordinate subset
//		• Far lacunary indices (beyond 2^63) by modular exponentiation
//
// ✨ Why latmrg?
//
//   - Exact: *big.Int throughout, no floating point anywhere a basis is made
//   - Explicit: every ring operation takes its modulus; no ambient state
//   - Observable: Stats counters and an event hook instead of logging
//
// Packages:
//
//	zmod/     modular arithmetic on *big.Int (lattigo word-size exponentiation)
//	matrix/   exact Dense matrices, triangular m-lattice bases, m-duals, fingerprints
//	polymod/  Z/mZ[x]/(f), x^e by squaring, characteristic polynomials
//	lattice/  generator families, IntLattice, projections, options
//
// Quick example, x_n = 12·x_{n−1} mod 101 in three dimensions:
//
//	[1, 12, 43]      [101, 0, 0]
//	[0, 101, 0]      [-12, 1, 0]
//	[0, 0, 101]      [-43, 0, 1]
//	  primal V         dual W
//
// Runnable drivers live in examples/.
//
//	go get github.com/katalvlaran/latmrg
package latmrg
