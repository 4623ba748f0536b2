// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"sort"
)

// Coordinates is a projection coordinate set: 1-based, strictly increasing.
type Coordinates []int

// NewCoordinates returns the sorted set of the given coordinates.
// Duplicates or values < 1 fail with ErrBadCoordinates.
func NewCoordinates(cs ...int) (Coordinates, error) {
	out := append(Coordinates(nil), cs...)
	sort.Ints(out)

	return out, out.validate()
}

// Range returns {lo, lo+1, …, hi}.
func Range(lo, hi int) Coordinates {
	if hi < lo {
		return nil
	}
	out := make(Coordinates, 0, hi-lo+1)
	for c := lo; c <= hi; c++ {
		out = append(out, c)
	}

	return out
}

func (c Coordinates) validate() error {
	if len(c) == 0 {
		return fmt.Errorf("empty set: %w", ErrBadCoordinates)
	}
	prev := 0
	for _, x := range c {
		if x <= prev {
			return fmt.Errorf("%v: %w", []int(c), ErrBadCoordinates)
		}
		prev = x
	}

	return nil
}

// Max returns the largest coordinate (0 for an empty set).
func (c Coordinates) Max() int {
	if len(c) == 0 {
		return 0
	}

	return c[len(c)-1]
}

// IsPrefix reports whether c = {1, …, len(c)}.
func (c Coordinates) IsPrefix() bool {
	return len(c) > 0 && c[len(c)-1] == len(c) && c.validate() == nil
}

// startsWithPrefix reports whether c ⊇ {1, …, k} as its first k entries.
func (c Coordinates) startsWithPrefix(k int) bool {
	if len(c) < k {
		return false
	}
	for i := 0; i < k; i++ {
		if c[i] != i+1 {
			return false
		}
	}

	return true
}
