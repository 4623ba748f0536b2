// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/latmrg/matrix"
	"github.com/katalvlaran/latmrg/zmod"
)

// Operation tags.
const (
	opBuildBasis          = "BuildBasis"
	opBuildDualBasis      = "BuildDualBasis"
	opIncDimBasis         = "IncDimBasis"
	opIncDimDualBasis     = "IncDimDualBasis"
	opBuildProjection     = "BuildProjection"
	opBuildProjectionDual = "BuildProjectionDual"
)

// latticeErrorf wraps err with an operation tag and the requested dimension.
func latticeErrorf(op string, dim int, err error) error {
	return fmt.Errorf("%s(%d): %w", op, dim, err)
}

var bigZero = new(big.Int)

// engine carries everything the generator families share: the modulus and
// bounds, the generating-sequence source, the triangular caches of the
// general case, and the primal and dual bases.
//
// Bases live in square backing arrays sized to the dimension bound; Basis()
// and DualBasis() are leading views into them, so an increment writes only
// the new row and column.
//
// The primal and dual sides are independent: each has its own dimension and
// can be built or grown without the other.
type engine struct {
	m      *big.Int
	maxDim int
	opts   Options
	meter  *meter
	src    source

	// general case only: reduced generating set T over the full extent and its m-dual T*.
	tri, triDual *matrix.Dense

	store, dualStore *matrix.Dense
	basis, dual      *matrix.Dense
	dim, dualDim     int
}

func newEngine(m *big.Int, maxDim int, opts []Option) (*engine, error) {
	if err := zmod.Validate(m); err != nil {
		return nil, fmt.Errorf("modulus %v: %w", m, ErrBadModulus)
	}
	if maxDim < 1 {
		return nil, fmt.Errorf("maxDim %d: %w", maxDim, ErrBadDimension)
	}
	o := gatherOptions(maxDim, opts...)
	e := &engine{
		m:      new(big.Int).Set(m),
		maxDim: maxDim,
		opts:   o,
		meter:  newMeter(o),
	}
	e.dropBases()

	return e, nil
}

// Modulus returns a copy of m.
func (e *engine) Modulus() *big.Int { return new(big.Int).Set(e.m) }

// MaxDim returns the dimension bound declared at construction.
func (e *engine) MaxDim() int { return e.maxDim }

// MaxDimProj returns the largest projection size accepted.
func (e *engine) MaxDimProj() int { return e.opts.maxDimProj }

// Dim returns the dimension of the current primal basis (0 when empty).
func (e *engine) Dim() int { return e.dim }

// DualDim returns the dimension of the current dual basis (0 when empty).
func (e *engine) DualDim() int { return e.dualDim }

// HasDual reports whether primal and dual are both built at the same dimension.
func (e *engine) HasDual() bool { return e.dim > 0 && e.dim == e.dualDim }

// Basis returns the current primal basis, dim×dim, upper-triangular as built.
// The matrix shares storage with the family: a reduction engine may
// transform it in place. It stays valid until the next build, increment or
// invalidating mutation.
func (e *engine) Basis() *matrix.Dense { return e.basis }

// DualBasis returns the current m-dual basis, DualDim()×DualDim(),
// lower-triangular as built. Same sharing rules as Basis.
func (e *engine) DualBasis() *matrix.Dense { return e.dual }

// Stats returns a snapshot of the work counters.
func (e *engine) Stats() Stats { return e.meter.stats }

// limit is the largest dimension the family can currently build.
func (e *engine) limit() int {
	if n := e.src.extent(); n < e.maxDim {
		return n
	}

	return e.maxDim
}

func (e *engine) checkDim(op string, d int) error {
	if d < 0 || d > e.limit() {
		return latticeErrorf(op, d, fmt.Errorf("bound %d: %w", e.limit(), ErrDimOutOfRange))
	}

	return nil
}

// invalidate discards every derived object: triangular caches and bases.
// Sources reset their own caches.
func (e *engine) invalidate() {
	e.tri, e.triDual = nil, nil
	e.dropBases()
	e.meter.emit(EventInvalidate, 0)
}

func (e *engine) dropBases() {
	empty, _ := matrix.NewDense(0, 0)
	e.store, e.dualStore = nil, nil
	e.basis, e.dual = empty, empty.Clone()
	e.dim, e.dualDim = 0, 0
}

// allocate returns a backing array able to hold a limit()×limit() basis.
func (e *engine) allocate(cur *matrix.Dense) (*matrix.Dense, error) {
	n := e.limit()
	if cur != nil && cur.Rows() >= n {
		return cur, nil
	}

	return matrix.NewDense(n, n)
}

// prepare makes the ingredients of a d-dimensional basis available.
func (e *engine) prepare(d int) error {
	if e.src.unitPrefix() {
		return e.src.ensure(d)
	}

	return e.triangular()
}

// triangular reduces the full generating set once and caches T and T*.
// Leading blocks of T are bases of every leading dimension.
func (e *engine) triangular() error {
	if e.tri != nil {
		return nil
	}
	n := e.limit()
	if err := e.src.ensure(n); err != nil {
		return err
	}
	gen, err := e.generators(Range(1, n))
	if err != nil {
		return err
	}
	tri, err := matrix.UpperTriangularBasis(gen, e.m)
	if err != nil {
		return err
	}
	triDual, err := matrix.MDualUpperTriangular(tri, e.m)
	if err != nil {
		return err
	}
	e.tri, e.triDual = tri, triDual
	e.meter.stats.Triangularizations++

	return nil
}

// generators returns the k×len(c) matrix G restricted to coordinates c.
// Columns must already be ensured.
func (e *engine) generators(c Coordinates) (*matrix.Dense, error) {
	k := e.src.order()
	gen, err := matrix.NewDense(k, len(c))
	if err != nil {
		return nil, err
	}
	for j, cj := range c {
		col := e.src.column(cj - 1)
		for l := 0; l < k; l++ {
			if err = gen.Set(l, j, col[l]); err != nil {
				return nil, err
			}
		}
	}

	return gen, nil
}

// primalEntry returns T[i][j] of the pristine triangular basis. The result
// may alias internal state; callers copy it.
func (e *engine) primalEntry(i, j int) (*big.Int, error) {
	if !e.src.unitPrefix() {
		return e.tri.At(i, j)
	}
	if i < e.src.order() {
		return e.src.column(j)[i], nil
	}
	if i == j {
		return e.m, nil
	}

	return bigZero, nil
}

// dualEntry returns T*[i][j], the pristine m-dual: diagonal m on the first
// k rows and 1 beyond, −G[j][i] below the diagonal of rows i ≥ k.
func (e *engine) dualEntry(i, j int) (*big.Int, error) {
	if !e.src.unitPrefix() {
		return e.triDual.At(i, j)
	}
	k := e.src.order()
	switch {
	case i < k && i == j:
		return e.m, nil
	case i < k:
		return bigZero, nil
	case j < k:
		return new(big.Int).Neg(e.src.column(i)[j]), nil
	case i == j:
		return big.NewInt(1), nil
	default:
		return bigZero, nil
	}
}

// fill writes the pristine d×d leading block into a fresh view of store.
func fill(store *matrix.Dense, d int, entry func(i, j int) (*big.Int, error)) (*matrix.Dense, error) {
	v, err := store.View(0, 0, d, d)
	if err != nil {
		return nil, err
	}
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			x, err := entry(i, j)
			if err != nil {
				return nil, err
			}
			if err = v.Set(i, j, x); err != nil {
				return nil, err
			}
		}
	}

	return v, nil
}

func (e *engine) buildBasis(d int) error {
	if err := e.checkDim(opBuildBasis, d); err != nil {
		return err
	}
	if err := e.prepare(d); err != nil {
		return latticeErrorf(opBuildBasis, d, err)
	}
	store, err := e.allocate(e.store)
	if err != nil {
		return latticeErrorf(opBuildBasis, d, err)
	}
	v, err := fill(store, d, e.primalEntry)
	if err != nil {
		return latticeErrorf(opBuildBasis, d, err)
	}
	e.store, e.basis, e.dim = store, v, d
	e.meter.emit(EventBuild, d)

	return nil
}

func (e *engine) buildDualBasis(d int) error {
	if err := e.checkDim(opBuildDualBasis, d); err != nil {
		return err
	}
	if err := e.prepare(d); err != nil {
		return latticeErrorf(opBuildDualBasis, d, err)
	}
	store, err := e.allocate(e.dualStore)
	if err != nil {
		return latticeErrorf(opBuildDualBasis, d, err)
	}
	w, err := fill(store, d, e.dualEntry)
	if err != nil {
		return latticeErrorf(opBuildDualBasis, d, err)
	}
	e.dualStore, e.dual, e.dualDim = store, w, d
	e.meter.emit(EventBuildDual, d)

	return nil
}

// primalDiag returns T[d][d]: 1 inside the order block of a unit-prefix
// family, m beyond it.
func (e *engine) primalDiag(d int) (*big.Int, error) {
	if e.src.unitPrefix() {
		if d < e.src.order() {
			return big.NewInt(1), nil
		}

		return e.m, nil
	}

	return e.tri.At(d, d)
}

// incDimBasis grows the primal basis from d to d+1. next computes the new
// column (length d) from the current basis; nil selects nextColumn.
func (e *engine) incDimBasis(next func(d int) ([]*big.Int, error)) error {
	d := e.dim
	if d == 0 {
		return e.buildBasis(1)
	}
	if err := e.checkDim(opIncDimBasis, d+1); err != nil {
		return err
	}
	if err := e.prepare(d + 1); err != nil {
		return latticeErrorf(opIncDimBasis, d+1, err)
	}
	if next == nil {
		next = e.nextColumn
	}
	col, err := next(d)
	if err != nil {
		return latticeErrorf(opIncDimBasis, d+1, err)
	}
	diag, err := e.primalDiag(d)
	if err != nil {
		return latticeErrorf(opIncDimBasis, d+1, err)
	}

	st := e.store
	for i := 0; i < d; i++ {
		if err = st.Set(i, d, col[i]); err != nil {
			return latticeErrorf(opIncDimBasis, d+1, err)
		}
		if err = st.Set(d, i, bigZero); err != nil {
			return latticeErrorf(opIncDimBasis, d+1, err)
		}
	}
	if err = st.Set(d, d, diag); err != nil {
		return latticeErrorf(opIncDimBasis, d+1, err)
	}
	v, err := st.View(0, 0, d+1, d+1)
	if err != nil {
		return latticeErrorf(opIncDimBasis, d+1, err)
	}
	e.basis, e.dim = v, d+1
	e.meter.emit(EventInc, d+1)

	return nil
}

// nextColumn computes the new column of a d-dimensional basis V (any basis
// of L_d, not only the pristine one).
//
//   - unit-prefix, d < k: the new coordinate is free, the column is 0.
//   - unit-prefix, d ≥ k: the first k coordinates determine the state, so
//     c_i = Σ_{l<k} V[i][l]·G[l][d] mod m.
//   - general: V = M·T_d for a unimodular M, and the column is M·T[0:d, d]
//     = V·(T*_dᵗ·T[0:d, d]) / m, reduced mod m.
func (e *engine) nextColumn(d int) ([]*big.Int, error) {
	col := make([]*big.Int, d)
	if e.src.unitPrefix() {
		k := e.src.order()
		if d < k {
			for i := range col {
				col[i] = new(big.Int)
			}

			return col, nil
		}
		g := e.src.column(d)
		tmp := new(big.Int)
		for i := 0; i < d; i++ {
			acc := new(big.Int)
			for l := 0; l < k; l++ {
				x, err := e.basis.At(i, l)
				if err != nil {
					return nil, err
				}
				acc.Add(acc, tmp.Mul(x, g[l]))
			}
			col[i] = acc.Mod(acc, e.m)
		}

		return col, nil
	}

	t := make([]*big.Int, d)
	for i := 0; i < d; i++ {
		x, err := e.tri.At(i, d)
		if err != nil {
			return nil, err
		}
		t[i] = x
	}
	lead, err := e.triDual.View(0, 0, d, d)
	if err != nil {
		return nil, err
	}
	u, err := matrix.VecMul(t, lead)
	if err != nil {
		return nil, err
	}
	vu, err := matrix.MulVec(e.basis, u)
	if err != nil {
		return nil, err
	}
	for i, x := range vu {
		q, err := zmod.ExactDiv(x, e.m)
		if err != nil {
			return nil, fmt.Errorf("basis row %d is not in the lattice: %w", i, err)
		}
		col[i] = q.Mod(q, e.m)
	}

	return col, nil
}

// incDimDualBasis grows the dual from d to d+1: existing rows get 0 in the
// new column and the new row is row d of the pristine dual T*. Lower
// triangularity of T* makes the pair [[W, 0], [T*[d]]] a basis of the new
// m-dual for any basis W of the old one.
func (e *engine) incDimDualBasis() error {
	d := e.dualDim
	if d == 0 {
		return e.buildDualBasis(1)
	}
	if err := e.checkDim(opIncDimDualBasis, d+1); err != nil {
		return err
	}
	if err := e.prepare(d + 1); err != nil {
		return latticeErrorf(opIncDimDualBasis, d+1, err)
	}
	st := e.dualStore
	for i := 0; i < d; i++ {
		if err := st.Set(i, d, bigZero); err != nil {
			return latticeErrorf(opIncDimDualBasis, d+1, err)
		}
	}
	for j := 0; j <= d; j++ {
		x, err := e.dualEntry(d, j)
		if err != nil {
			return latticeErrorf(opIncDimDualBasis, d+1, err)
		}
		if err = st.Set(d, j, x); err != nil {
			return latticeErrorf(opIncDimDualBasis, d+1, err)
		}
	}
	w, err := st.View(0, 0, d+1, d+1)
	if err != nil {
		return latticeErrorf(opIncDimDualBasis, d+1, err)
	}
	e.dual, e.dualDim = w, d+1
	e.meter.emit(EventIncDual, d+1)

	return nil
}

// Fingerprint returns SHA3-256 over the modulus and the current bases.
func (e *engine) Fingerprint() [matrix.FingerprintSize]byte {
	return fingerprint(e.m, e.basis, e.dual)
}

// ingredients computes every column of the source and returns G (k×N), copied.
func (e *engine) ingredients() (*matrix.Dense, error) {
	n := e.src.extent()
	if err := e.src.ensure(n); err != nil {
		return nil, err
	}

	return e.generators(Range(1, n))
}
