// Package lattice builds and maintains exact primal and dual bases of the
// m-lattices generated by linear recurrence pseudorandom generators.
//
// What
//
//   - Families: MRG (and LCG, order 1), MRGLac (MRG restricted to a
//     lacunary IndexSet), MLCG (matrix recurrence A with optional output
//     matrix B) and MLCGLac. Each implements Lattice; Build constructs one
//     from a tagged Family value.
//   - BuildBasis / BuildDualBasis produce an upper-triangular V and a
//     lower-triangular W with V·Wᵗ = m·I, independently of each other.
//   - IncDimBasis / IncDimDualBasis grow them by one dimension in O(d) for
//     unit-prefix families. A chain of increments is bit-identical to a
//     fresh build.
//   - BuildProjection / BuildProjectionDual return an independent IntLattice
//     for any coordinate subset.
//
// Why
//
//	Spectral-test style analyses enumerate dimensions and projections for
//	many candidate generators. Rebuilding from scratch at every step costs
//	O(d²) to O(d³); the structural formulas keep each step linear and the
//	generating sequence is computed once per family.
//
// Unit-prefix families
//
//	The generating matrix G (k×N) holds the outputs of the k trajectories
//	started from the unit states. When G starts with I_k (MRG, MLCG without
//	B, lacunary sets starting with 1…k) the bases have closed forms:
//
//	  V[i][j] = G[i][j] for i < k,   V[i][i] = m for i ≥ k;
//	  W[i][i] = m for i < k,         W[i][i] = 1 for i ≥ k,
//	  W[i][j] = −G[j][i] for i ≥ k, j < k.
//
//	Other families reduce G once (matrix.UpperTriangularBasis) and read
//	leading blocks of the cached triangular pair.
//
// Far lacunary indices
//
//	Indices up to and beyond 2^63 are reached by exponentiation: zmod.PowMod
//	for k = 1, polymod.Ring.PowX modulo the characteristic polynomial for
//	MRGs, and for MLCGs either matrix powering or x^p mod χ_A
//	(WithExponentiation). WithStepLimit bounds the direct recurrence steps.
//
// Concurrency
//
//	Families are not safe for concurrent use. Independent families share
//	no mutable state and may be built in parallel.
//
// Observability
//
//	The package never logs. Stats() reports steps, jumps and ring
//	multiplications; WithOnEvent receives every build, increment,
//	projection, jump and invalidation.
package lattice
