// SPDX-License-Identifier: MIT

package polymod

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/latmrg/zmod"
)

const (
	opNewRing = "NewRing"
	opPowX    = "PowX"
	opMul     = "Mul"
)

// Poly is a ring element: k coefficients, lowest degree first.
type Poly []*big.Int

// Clone returns a deep copy of p.
func (p Poly) Clone() Poly {
	out := make(Poly, len(p))
	for i, c := range p {
		out[i] = new(big.Int).Set(c)
	}

	return out
}

// Equal reports coefficient-wise equality.
func (p Poly) Equal(q Poly) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i].Cmp(q[i]) != 0 {
			return false
		}
	}

	return true
}

// Ring is Z/mZ[x]/(f) for a monic f of degree k ≥ 1.
//
// A Ring counts the multiplications it performs (Mul and MulX) so callers can
// report the cost of far jumps. The counter makes a Ring unsafe for
// concurrent use; give each goroutine its own.
type Ring struct {
	m    *big.Int
	f    []*big.Int // f[0..k], f[k] == 1
	k    int
	muls int64
	step int64
}

// NewRing validates m and f and returns the quotient ring.
// f is given lowest degree first and must be monic modulo m.
//
// Errors: ErrBadModulus, ErrBadDegree, ErrNotMonic.
func NewRing(m *big.Int, f []*big.Int) (*Ring, error) {
	if err := zmod.Validate(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewRing, ErrBadModulus)
	}
	if len(f) < 2 {
		return nil, fmt.Errorf("%s: degree %d: %w", opNewRing, len(f)-1, ErrBadDegree)
	}
	k := len(f) - 1
	cf := make([]*big.Int, k+1)
	for i, c := range f {
		cf[i] = zmod.Mod(c, m)
	}
	if cf[k].Cmp(big.NewInt(1)) != 0 {
		return nil, fmt.Errorf("%s: leading coefficient %v: %w", opNewRing, f[k], ErrNotMonic)
	}

	return &Ring{m: new(big.Int).Set(m), f: cf, k: k}, nil
}

// Degree returns k = deg f.
func (r *Ring) Degree() int { return r.k }

// Modulus returns a copy of m.
func (r *Ring) Modulus() *big.Int { return new(big.Int).Set(r.m) }

// Polynomial returns a copy of f, lowest degree first.
func (r *Ring) Polynomial() []*big.Int { return Poly(r.f).Clone() }

// Muls returns the number of full ring multiplications performed so far.
func (r *Ring) Muls() int64 { return r.muls }

// Steps returns the number of MulX steps performed so far.
func (r *Ring) Steps() int64 { return r.step }

// Zero returns the zero element.
func (r *Ring) Zero() Poly {
	out := make(Poly, r.k)
	for i := range out {
		out[i] = new(big.Int)
	}

	return out
}

// One returns the unit element.
func (r *Ring) One() Poly {
	out := r.Zero()
	out[0].SetInt64(1)

	return out
}

// Reduce maps an arbitrary polynomial (any length) into the ring.
//
// Implementation:
//   - x^k ≡ −(f₀ + f₁x + … + f_{k−1}x^{k−1}); fold the top coefficient down
//     from the highest degree to k, then reduce coefficients mod m.
func (r *Ring) Reduce(p []*big.Int) Poly {
	w := make([]*big.Int, len(p))
	for i, c := range p {
		w[i] = new(big.Int).Set(c)
	}
	tmp := new(big.Int)
	for d := len(w) - 1; d >= r.k; d-- {
		top := w[d]
		if top.Sign() == 0 {
			continue
		}
		top.Mod(top, r.m)
		for i := 0; i < r.k; i++ {
			c := w[d-r.k+i]
			c.Sub(c, tmp.Mul(top, r.f[i]))
		}
		top.SetInt64(0)
	}
	out := r.Zero()
	for i := 0; i < r.k && i < len(w); i++ {
		out[i].Mod(w[i], r.m)
	}

	return out
}

// X returns x mod f.
func (r *Ring) X() Poly {
	p := make([]*big.Int, 2)
	p[0], p[1] = new(big.Int), big.NewInt(1)

	return r.Reduce(p)
}

// MulX returns x·p mod f. One step of the recurrence.
//
// Complexity: O(k).
func (r *Ring) MulX(p Poly) Poly {
	r.step++
	top := p[r.k-1]
	out := make(Poly, r.k)
	tmp := new(big.Int)
	out[0] = new(big.Int).Mul(top, r.f[0])
	out[0].Neg(out[0])
	out[0].Mod(out[0], r.m)
	for i := 1; i < r.k; i++ {
		out[i] = new(big.Int).Sub(p[i-1], tmp.Mul(top, r.f[i]))
		out[i].Mod(out[i], r.m)
	}

	return out
}

// Mul returns p·q mod f.
//
// Complexity: O(k²) schoolbook product plus O(k²) reduction.
func (r *Ring) Mul(p, q Poly) (Poly, error) {
	if len(p) != r.k || len(q) != r.k {
		return nil, fmt.Errorf("%s: operand lengths %d, %d for degree %d: %w", opMul, len(p), len(q), r.k, ErrBadDegree)
	}

	return r.mul(p, q), nil
}

func (r *Ring) mul(p, q Poly) Poly {
	r.muls++
	prod := make([]*big.Int, 2*r.k-1)
	for i := range prod {
		prod[i] = new(big.Int)
	}
	tmp := new(big.Int)
	for i, a := range p {
		if a.Sign() == 0 {
			continue
		}
		for j, b := range q {
			prod[i+j].Add(prod[i+j], tmp.Mul(a, b))
		}
	}

	return r.Reduce(prod)
}

// PowX returns x^e mod f.
//
// Implementation:
//   - Left-to-right binary exponentiation: square for every bit, MulX for
//     every set bit. Squarings are counted in Muls, shifts in Steps.
//
// Complexity:
//   - O(log e) multiplications of cost O(k²) each.
func (r *Ring) PowX(e *big.Int) (Poly, error) {
	if e.Sign() < 0 {
		return nil, fmt.Errorf("%s: %w", opPowX, ErrNegativeExponent)
	}
	acc := r.One()
	for i := e.BitLen() - 1; i >= 0; i-- {
		acc = r.mul(acc, acc)
		if e.Bit(i) == 1 {
			acc = r.MulX(acc)
		}
	}

	return acc, nil
}
