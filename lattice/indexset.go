// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math/big"
	"strings"
)

// IndexSet is a lacunary index set I = {i₁ < i₂ < … < i_s}: the 1-based
// positions of the generator outputs kept in the lattice. Indices are
// arbitrary-precision so that far jumps beyond 2^63 are expressible.
type IndexSet []*big.Int

// NewIndexSet builds an IndexSet from machine integers.
// Errors: ErrBadIndexSet (empty, < 1, not strictly increasing).
func NewIndexSet(is ...int64) (IndexSet, error) {
	out := make(IndexSet, len(is))
	for j, v := range is {
		out[j] = big.NewInt(v)
	}

	return out, out.validate()
}

// NewIndexSetBig builds an IndexSet from big integers (copied).
func NewIndexSetBig(is ...*big.Int) (IndexSet, error) {
	out := make(IndexSet, len(is))
	for j, v := range is {
		if v == nil {
			return nil, fmt.Errorf("index %d is nil: %w", j, ErrBadIndexSet)
		}
		out[j] = new(big.Int).Set(v)
	}

	return out, out.validate()
}

// NewPacketIndexSet returns count indices laid out in packets of packetSize
// consecutive outputs, packet starts spaced by spacing:
//
//	first, first+1, …, first+packetSize−1, first+spacing, …
//
// For example (1, 3, 132072, 8) yields {1,2,3,132073,132074,132075,264145,264146}.
func NewPacketIndexSet(first int64, packetSize int, spacing int64, count int) (IndexSet, error) {
	if packetSize < 1 || count < 1 || spacing < int64(packetSize) {
		return nil, fmt.Errorf("packets(%d, %d, %d, %d): %w", first, packetSize, spacing, count, ErrBadIndexSet)
	}
	out := make(IndexSet, 0, count)
	for p := int64(0); len(out) < count; p++ {
		base := new(big.Int).Mul(big.NewInt(p), big.NewInt(spacing))
		base.Add(base, big.NewInt(first))
		for r := 0; r < packetSize && len(out) < count; r++ {
			out = append(out, new(big.Int).Add(base, big.NewInt(int64(r))))
		}
	}

	return out, out.validate()
}

func (I IndexSet) validate() error {
	if len(I) == 0 {
		return fmt.Errorf("empty set: %w", ErrBadIndexSet)
	}
	if I[0].Sign() <= 0 {
		return fmt.Errorf("first index %v < 1: %w", I[0], ErrBadIndexSet)
	}
	for j := 1; j < len(I); j++ {
		if I[j].Cmp(I[j-1]) <= 0 {
			return fmt.Errorf("index %v after %v: %w", I[j], I[j-1], ErrBadIndexSet)
		}
	}

	return nil
}

// Clone returns a deep copy.
func (I IndexSet) Clone() IndexSet {
	out := make(IndexSet, len(I))
	for j, v := range I {
		out[j] = new(big.Int).Set(v)
	}

	return out
}

// Equal reports element-wise equality.
func (I IndexSet) Equal(J IndexSet) bool {
	return len(I) == len(J) && I.commonPrefix(J) == len(I)
}

// commonPrefix returns the length of the longest common prefix of I and J.
func (I IndexSet) commonPrefix(J IndexSet) int {
	n := 0
	for n < len(I) && n < len(J) && I[n].Cmp(J[n]) == 0 {
		n++
	}

	return n
}

// startsWithUnits reports whether the first min(k, s) indices are 1, 2, ….
func (I IndexSet) startsWithUnits(k int) bool {
	for j := 0; j < k && j < len(I); j++ {
		if !I[j].IsInt64() || I[j].Int64() != int64(j+1) {
			return false
		}
	}

	return true
}

// String renders the set as {i1,i2,…}.
func (I IndexSet) String() string {
	parts := make([]string, len(I))
	for j, v := range I {
		parts[j] = v.String()
	}

	return "{" + strings.Join(parts, ",") + "}"
}
