// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/latmrg/matrix"
	"github.com/katalvlaran/latmrg/polymod"
)

// checkMatrices validates a k×k transition A and an optional w×k output B.
func checkMatrices(a, b *matrix.Dense) (k, w int, err error) {
	if err = matrix.ValidateSquare(a); err != nil {
		return 0, 0, fmt.Errorf("A: %v: %w", err, ErrBadMatrix)
	}
	k = a.Rows()
	if k == 0 {
		return 0, 0, fmt.Errorf("A is empty: %w", ErrBadMatrix)
	}
	if b == nil {
		return k, k, nil
	}
	if b.Rows() == 0 || b.Cols() != k {
		return 0, 0, fmt.Errorf("B is %dx%d, want wx%d: %w", b.Rows(), b.Cols(), k, ErrBadMatrix)
	}

	return k, b.Rows(), nil
}

// reducedCopy returns a mod m (nil stays nil).
func reducedCopy(a *matrix.Dense, m *big.Int) (*matrix.Dense, error) {
	if a == nil {
		return nil, nil
	}
	c := a.Clone()
	if err := matrix.ReduceMod(c, m); err != nil {
		return nil, err
	}

	return c, nil
}

// outputBlock returns B·P mod m, or P itself when B is absent.
func outputBlock(b, p *matrix.Dense, m *big.Int) (*matrix.Dense, error) {
	if b == nil {
		return p, nil
	}

	return matrix.MulMod(b, p, m)
}

// powerSequence produces the generating matrix of a matrix recurrence
// x_{p+1} = A·x_p mod m with outputs B·x_p: coordinate p·w + r of the
// trajectory from e_l is (B·A^p)[r][l]. One block of w columns costs one
// multiplication by A.
type powerSequence struct {
	m    *big.Int
	a, b *matrix.Dense
	k, w int
	n    int
	cols [][]*big.Int
	cur  *matrix.Dense // B·A^p for the last computed block
	mt   *meter
}

func newPowerSequence(m *big.Int, a, b *matrix.Dense, n int, mt *meter) *powerSequence {
	s := &powerSequence{m: m, n: n, mt: mt}
	s.reset(a, b)

	return s
}

// reset installs reduced matrices and drops every column.
func (s *powerSequence) reset(a, b *matrix.Dense) {
	s.a, s.b = a, b
	s.k, s.w = a.Rows(), a.Rows()
	if b != nil {
		s.w = b.Rows()
	}
	s.cols, s.cur = nil, nil
}

func (s *powerSequence) order() int              { return s.k }
func (s *powerSequence) extent() int             { return s.n }
func (s *powerSequence) valid() int              { return len(s.cols) }
func (s *powerSequence) unitPrefix() bool        { return s.b == nil }
func (s *powerSequence) column(j int) []*big.Int { return s.cols[j] }

// ensure computes whole blocks until at least n columns exist.
func (s *powerSequence) ensure(n int) error {
	for len(s.cols) < n {
		if s.cur == nil {
			id, err := matrix.Identity(s.k)
			if err != nil {
				return err
			}
			if s.cur, err = outputBlock(s.b, id, s.m); err != nil {
				return err
			}
		} else {
			if err := s.mt.step(1); err != nil {
				return err
			}
			next, err := matrix.MulMod(s.cur, s.a, s.m)
			if err != nil {
				return err
			}
			s.cur = next
		}
		for r := 0; r < s.w; r++ {
			row, err := s.cur.Row(r)
			if err != nil {
				return err
			}
			s.cols = append(s.cols, row)
		}
	}

	return nil
}

// matPow returns A^e mod m by left-to-right square and multiply, and the
// number of matrix multiplications spent.
func matPow(a *matrix.Dense, e, m *big.Int) (*matrix.Dense, int64, error) {
	acc, err := matrix.Identity(a.Rows())
	if err != nil {
		return nil, 0, err
	}
	var muls int64
	for i := e.BitLen() - 1; i >= 0; i-- {
		if acc, err = matrix.MulMod(acc, acc, m); err != nil {
			return nil, 0, err
		}
		muls++
		if e.Bit(i) == 1 {
			if acc, err = matrix.MulMod(acc, a, m); err != nil {
				return nil, 0, err
			}
			muls++
		}
	}

	return acc, muls, nil
}

// lacPowers produces the ingredients of a lacunary matrix recurrence: the
// output index i maps to block p = (i−1) / w and row r = (i−1) mod w, and
// its column is row r of B·A^p.
//
// Indices in the current block are free, the next block costs one
// multiplication, and any other block is a jump by the selected strategy:
//   - ExpMatrixPower: A^p by square and multiply, O(k³ log p);
//   - ExpPolyQuotient: x^p mod χ_A = Σ c_t x^t, then B·A^p = Σ c_t·(B·A^t)
//     over cached B·A^t, t < k, O(k² log p) after a one-off Berkowitz step.
type lacPowers struct {
	m     *big.Int
	a, b  *matrix.Dense
	k, w  int
	idx   IndexSet
	expo  Exponentiation
	cols  [][]*big.Int
	cur   *matrix.Dense // B·A^block
	block *big.Int

	ring   *polymod.Ring   // lazily built for ExpPolyQuotient
	powers []*matrix.Dense // B·A^t, t < k
	mt     *meter
}

func newLacPowers(m *big.Int, a, b *matrix.Dense, idx IndexSet, o Options, mt *meter) *lacPowers {
	s := &lacPowers{m: m, idx: idx, mt: mt}
	s.reset(a, b, o)

	return s
}

// reset installs reduced matrices, resolves the strategy and drops every
// ingredient.
func (s *lacPowers) reset(a, b *matrix.Dense, o Options) {
	s.a, s.b = a, b
	s.k, s.w = a.Rows(), a.Rows()
	if b != nil {
		s.w = b.Rows()
	}
	s.expo = o.expo
	if s.expo == ExpAuto {
		s.expo = ExpMatrixPower
		if s.k >= o.polyCrossover {
			s.expo = ExpPolyQuotient
		}
	}
	s.cols, s.cur, s.block = nil, nil, nil
	s.ring, s.powers = nil, nil
}

func (s *lacPowers) order() int              { return s.k }
func (s *lacPowers) extent() int             { return len(s.idx) }
func (s *lacPowers) valid() int              { return len(s.cols) }
func (s *lacPowers) unitPrefix() bool        { return s.b == nil && s.idx.startsWithUnits(s.k) }
func (s *lacPowers) column(j int) []*big.Int { return s.cols[j] }

// setIndex keeps the ingredients of the common prefix. The running block is
// dropped, so the first new index is reached by a jump.
func (s *lacPowers) setIndex(idx IndexSet) {
	p := s.idx.commonPrefix(idx)
	if p < len(s.cols) {
		s.cols = s.cols[:p]
	}
	s.idx = idx
	s.cur, s.block = nil, nil
}

func (s *lacPowers) ensure(n int) error {
	w := big.NewInt(int64(s.w))
	for j := len(s.cols); j < n; j++ {
		c := new(big.Int).Sub(s.idx[j], big.NewInt(1))
		p, r := new(big.Int).QuoRem(c, w, new(big.Int))
		if err := s.seek(s.idx[j], p); err != nil {
			return err
		}
		row, err := s.cur.Row(int(r.Int64()))
		if err != nil {
			return err
		}
		s.cols = append(s.cols, row)
	}

	return nil
}

// seek positions cur at B·A^p.
func (s *lacPowers) seek(index, p *big.Int) error {
	switch {
	case s.block != nil && s.block.Cmp(p) == 0:
		return nil
	case p.Sign() == 0:
		id, err := matrix.Identity(s.k)
		if err != nil {
			return err
		}
		if s.cur, err = outputBlock(s.b, id, s.m); err != nil {
			return err
		}
	case s.block != nil && new(big.Int).Sub(p, s.block).Cmp(big.NewInt(1)) == 0:
		if err := s.mt.step(1); err != nil {
			return err
		}
		next, err := matrix.MulMod(s.cur, s.a, s.m)
		if err != nil {
			return err
		}
		s.cur = next
	default:
		var (
			cur  *matrix.Dense
			muls int64
			err  error
		)
		if s.expo == ExpPolyQuotient {
			cur, muls, err = s.polyPow(p)
		} else {
			cur, muls, err = s.matrixPow(p)
		}
		if err != nil {
			return err
		}
		s.cur = cur
		s.mt.jump(index, muls)
	}
	s.block = new(big.Int).Set(p)

	return nil
}

func (s *lacPowers) matrixPow(p *big.Int) (*matrix.Dense, int64, error) {
	ap, muls, err := matPow(s.a, p, s.m)
	if err != nil {
		return nil, 0, err
	}
	if s.b == nil {
		return ap, muls, nil
	}
	out, err := matrix.MulMod(s.b, ap, s.m)

	return out, muls + 1, err
}

func (s *lacPowers) polyPow(p *big.Int) (*matrix.Dense, int64, error) {
	var setup int64
	if s.ring == nil {
		f, err := polymod.CharPoly(s.a, s.m)
		if err != nil {
			return nil, 0, err
		}
		if s.ring, err = polymod.NewRing(s.m, f); err != nil {
			return nil, 0, err
		}
		id, err := matrix.Identity(s.k)
		if err != nil {
			return nil, 0, err
		}
		bt, err := outputBlock(s.b, id, s.m)
		if err != nil {
			return nil, 0, err
		}
		s.powers = []*matrix.Dense{bt}
		for t := 1; t < s.k; t++ {
			if bt, err = matrix.MulMod(bt, s.a, s.m); err != nil {
				return nil, 0, err
			}
			s.powers = append(s.powers, bt)
			setup++
		}
	}
	before := s.ring.Muls()
	q, err := s.ring.PowX(p)
	if err != nil {
		return nil, 0, err
	}
	out, err := matrix.NewDense(s.w, s.k)
	if err != nil {
		return nil, 0, err
	}
	tmp := new(big.Int)
	for r := 0; r < s.w; r++ {
		for l := 0; l < s.k; l++ {
			acc := new(big.Int)
			for t, ct := range q {
				if ct.Sign() == 0 {
					continue
				}
				x, err := s.powers[t].At(r, l)
				if err != nil {
					return nil, 0, err
				}
				acc.Add(acc, tmp.Mul(ct, x))
			}
			if err = out.Set(r, l, acc.Mod(acc, s.m)); err != nil {
				return nil, 0, err
			}
		}
	}

	return out, setup + s.ring.Muls() - before, nil
}
