// SPDX-License-Identifier: MIT

package lattice

import "math/big"

// source is the generating-sequence engine behind a family: a k×N generating
// matrix G whose rows, together with m·Z^N, generate the full lattice.
//
// Column n of G holds the n-th kept output (coordinate n+1 of the lattice)
// of the k canonical trajectories started from the unit states e_0 … e_{k−1}.
// Columns are computed lazily and memoized; ensure only computes the
// missing suffix.
type source interface {
	// order returns k, the number of generator rows.
	order() int
	// extent returns N, the number of columns the family can produce.
	extent() int
	// ensure makes columns [0, n) available.
	ensure(n int) error
	// column returns column j (length k). Valid after ensure(j+1); read-only.
	column(j int) []*big.Int
	// valid returns the number of memoized columns.
	valid() int
	// unitPrefix reports G[:, :min(k,N)] = identity, which enables the
	// structural bases and the O(d) increments.
	unitPrefix() bool
}

func unitColumn(k, l int) []*big.Int {
	col := make([]*big.Int, k)
	for i := range col {
		col[i] = new(big.Int)
	}
	col[l].SetInt64(1)

	return col
}
