// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/latmrg/polymod"
	"github.com/katalvlaran/latmrg/zmod"
)

// normalizeCoefficients validates a₁…a_k and reduces them into [0, m).
func normalizeCoefficients(a []*big.Int, m *big.Int) ([]*big.Int, error) {
	if len(a) == 0 {
		return nil, ErrEmptyCoefficients
	}
	out := make([]*big.Int, len(a))
	for j, x := range a {
		if x == nil {
			return nil, fmt.Errorf("a%d is nil: %w", j+1, ErrEmptyCoefficients)
		}
		out[j] = zmod.Mod(x, m)
	}

	return out, nil
}

// mrgSequence produces the generating matrix of an order-k recurrence by
// direct forward evaluation of its k unit trajectories.
type mrgSequence struct {
	m    *big.Int
	a    []*big.Int
	n    int
	cols [][]*big.Int
	mt   *meter
}

func newMRGSequence(m *big.Int, a []*big.Int, n int, mt *meter) *mrgSequence {
	return &mrgSequence{m: m, a: a, n: n, mt: mt}
}

func (s *mrgSequence) order() int              { return len(s.a) }
func (s *mrgSequence) extent() int             { return s.n }
func (s *mrgSequence) valid() int              { return len(s.cols) }
func (s *mrgSequence) unitPrefix() bool        { return true }
func (s *mrgSequence) column(j int) []*big.Int { return s.cols[j] }

// reset drops every memoized column and installs new coefficients.
func (s *mrgSequence) reset(a []*big.Int) {
	s.a = a
	s.cols = nil
}

// ensure evaluates y_n = a₁y_{n−1} + … + a_k y_{n−k} mod m for the missing
// suffix. Outputs 0…k−1 are the unit seeds and cost nothing.
func (s *mrgSequence) ensure(n int) error {
	k := len(s.a)
	tmp := new(big.Int)
	for j := len(s.cols); j < n; j++ {
		if j < k {
			s.cols = append(s.cols, unitColumn(k, j))
			continue
		}
		if err := s.mt.step(1); err != nil {
			return err
		}
		col := make([]*big.Int, k)
		for l := 0; l < k; l++ {
			acc := new(big.Int)
			for t := 1; t <= k; t++ {
				acc.Add(acc, tmp.Mul(s.a[t-1], s.cols[j-t][l]))
			}
			col[l] = acc.Mod(acc, s.m)
		}
		s.cols = append(s.cols, col)
	}

	return nil
}

// lacSequence produces the ingredients of a lacunary recurrence: column j
// holds the coefficients of x^{i_j−1} mod f, f the characteristic
// polynomial, which are exactly the outputs i_j of the k unit trajectories.
//
// Consecutive indices cost one MulX (one multiplication by a when k = 1).
// Any other index is a jump: PowX in the quotient ring, or zmod.PowMod when
// k = 1, both in O(log i) multiplications.
type lacSequence struct {
	m    *big.Int
	a    []*big.Int
	ring *polymod.Ring // k > 1 only
	idx  IndexSet
	cols [][]*big.Int
	mt   *meter
}

func newLacSequence(m *big.Int, a []*big.Int, idx IndexSet, mt *meter) (*lacSequence, error) {
	s := &lacSequence{m: m, idx: idx, mt: mt}
	if err := s.reset(a); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *lacSequence) order() int              { return len(s.a) }
func (s *lacSequence) extent() int             { return len(s.idx) }
func (s *lacSequence) valid() int              { return len(s.cols) }
func (s *lacSequence) unitPrefix() bool        { return s.idx.startsWithUnits(len(s.a)) }
func (s *lacSequence) column(j int) []*big.Int { return s.cols[j] }

// reset installs new coefficients and drops every ingredient.
func (s *lacSequence) reset(a []*big.Int) error {
	s.a, s.ring, s.cols = a, nil, nil
	if len(a) == 1 {
		return nil
	}
	f, err := polymod.MRGCharPoly(a, s.m)
	if err != nil {
		return err
	}
	if s.ring, err = polymod.NewRing(s.m, f); err != nil {
		return err
	}

	return nil
}

// setIndex installs a new index set, keeping the ingredients of the common
// prefix.
func (s *lacSequence) setIndex(idx IndexSet) {
	p := s.idx.commonPrefix(idx)
	if p < len(s.cols) {
		s.cols = s.cols[:p]
	}
	s.idx = idx
}

func (s *lacSequence) ensure(n int) error {
	k := len(s.a)
	for j := len(s.cols); j < n; j++ {
		e := new(big.Int).Sub(s.idx[j], big.NewInt(1))
		var (
			col []*big.Int
			err error
		)
		switch {
		case e.IsInt64() && e.Int64() < int64(k):
			col = unitColumn(k, int(e.Int64()))
		case j > 0 && new(big.Int).Sub(s.idx[j], s.idx[j-1]).Cmp(big.NewInt(1)) == 0:
			if err = s.mt.step(1); err != nil {
				return err
			}
			col = s.next(s.cols[j-1])
		default:
			if col, err = s.jump(s.idx[j], e); err != nil {
				return err
			}
		}
		s.cols = append(s.cols, col)
	}

	return nil
}

// next advances one output: x·p mod f.
func (s *lacSequence) next(prev []*big.Int) []*big.Int {
	if s.ring == nil {
		return []*big.Int{zmod.MulMod(prev[0], s.a[0], s.m)}
	}

	return s.ring.MulX(polymod.Poly(prev))
}

// jump computes x^e mod f directly.
func (s *lacSequence) jump(index, e *big.Int) ([]*big.Int, error) {
	if s.ring == nil {
		y, err := zmod.PowMod(s.a[0], e, s.m)
		if err != nil {
			return nil, err
		}
		s.mt.jump(index, int64(e.BitLen()))

		return []*big.Int{y}, nil
	}
	before := s.ring.Muls()
	p, err := s.ring.PowX(e)
	if err != nil {
		return nil, err
	}
	s.mt.jump(index, s.ring.Muls()-before)

	return p, nil
}
