// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/latmrg/matrix"
)

// checkCoordinates validates a projection request against the family bounds.
func (e *engine) checkCoordinates(op string, c Coordinates) error {
	if err := c.validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if len(c) > e.opts.maxDimProj {
		return fmt.Errorf("%s: %d coordinates, bound %d: %w", op, len(c), e.opts.maxDimProj, ErrProjectionTooLarge)
	}
	if c.Max() > e.limit() {
		return fmt.Errorf("%s: coordinate %d, bound %d: %w", op, c.Max(), e.limit(), ErrDimOutOfRange)
	}

	return nil
}

// project builds the projection of the full lattice onto coordinates c.
// The family's bases are not touched; only the sequence cache may grow.
//
// Paths:
//   - c = {1..d}: leading block of the pristine triangular pair, O(d²);
//   - unit-prefix and c ⊇ {1..k} as its head: columns of G selected
//     directly, m on the diagonal beyond k, structural dual;
//   - otherwise: the k restricted generator rows are reduced mod m.
func (e *engine) project(c Coordinates, withDual bool) (*IntLattice, error) {
	op, ev := opBuildProjection, EventProject
	if withDual {
		op, ev = opBuildProjectionDual, EventProjectDual
	}
	if err := e.checkCoordinates(op, c); err != nil {
		return nil, err
	}
	d := len(c)

	var (
		v, w *matrix.Dense
		err  error
	)
	k := e.src.order()
	switch {
	case c.IsPrefix():
		if err = e.prepare(d); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		v, w, err = e.selectPair(d, withDual, e.primalEntry, e.dualEntry)
	case e.src.unitPrefix() && c.startsWithPrefix(k):
		if err = e.src.ensure(c.Max()); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		// Selecting columns c of the generator keeps the identity block
		// in front, so the unit-prefix formulas apply to the reindexed G.
		primal := func(i, j int) (*big.Int, error) {
			switch {
			case i < k:
				return e.src.column(c[j] - 1)[i], nil
			case i == j:
				return e.m, nil
			default:
				return bigZero, nil
			}
		}
		dual := func(i, j int) (*big.Int, error) {
			switch {
			case i < k && i == j:
				return e.m, nil
			case i < k:
				return bigZero, nil
			case j < k:
				return new(big.Int).Neg(e.src.column(c[i] - 1)[j]), nil
			case i == j:
				return big.NewInt(1), nil
			default:
				return bigZero, nil
			}
		}
		v, w, err = e.selectPair(d, withDual, primal, dual)
	default:
		if err = e.src.ensure(c.Max()); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		var gen *matrix.Dense
		if gen, err = e.generators(c); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		v, w, err = reduceProjection(e.m, gen, withDual)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	e.meter.emit(ev, d)

	return newIntLattice(e.m, v, w, e.maxDim), nil
}

// selectPair materializes fresh d×d primal (and optionally dual) matrices
// from entry functions.
func (e *engine) selectPair(d int, withDual bool, primal, dual func(i, j int) (*big.Int, error)) (v, w *matrix.Dense, err error) {
	pv, err := matrix.NewDense(d, d)
	if err != nil {
		return nil, nil, err
	}
	if v, err = fill(pv, d, primal); err != nil {
		return nil, nil, err
	}
	if !withDual {
		return v, nil, nil
	}
	pw, err := matrix.NewDense(d, d)
	if err != nil {
		return nil, nil, err
	}
	if w, err = fill(pw, d, dual); err != nil {
		return nil, nil, err
	}

	return v, w, nil
}

// reduceProjection returns an upper-triangular basis of the lattice
// generated by the rows of gen and m·Z^d, and its m-dual when asked.
func reduceProjection(m *big.Int, gen *matrix.Dense, withDual bool) (v, w *matrix.Dense, err error) {
	v, err = matrix.UpperTriangularBasis(gen, m)
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < v.Rows(); i++ {
		x, err := v.At(i, i)
		if err != nil {
			return nil, nil, err
		}
		if x.Sign() == 0 {
			return nil, nil, fmt.Errorf("pivot %d: %w", i, ErrNotFullRank)
		}
	}
	if !withDual {
		return v, nil, nil
	}
	if w, err = matrix.MDualUpperTriangular(v, m); err != nil {
		return nil, nil, err
	}

	return v, w, nil
}
