// Package polymod implements arithmetic in the quotient ring Z/mZ[x]/(f) for a
// monic polynomial f, and characteristic polynomials of integer matrices
// modulo m.
//
// The ring is the natural home of a recurrence state: for the order-k
// recurrence x_n = a₁x_{n−1} + … + a_k x_{n−k} mod m with characteristic
// polynomial f(x) = x^k − a₁x^{k−1} − … − a_k, the coefficient of x^l in
// x^n mod f is the n-th output of the trajectory started from the unit state
// e_l. PowX reaches x^n in O(log n) ring multiplications, so far-away outputs
// never require stepping the recurrence.
//
// Polynomials are coefficient slices, lowest degree first. Residues are
// canonical (0 ≤ c < m).
package polymod
