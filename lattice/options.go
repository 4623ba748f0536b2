// SPDX-License-Identifier: MIT

// Package lattice: functional configuration for generator families.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
package lattice

import (
	"fmt"
	"math/big"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPolyCrossover is the matrix order from which ExpAuto switches
	// MLCG lacunary far jumps from matrix powering (O(k³) per squaring) to
	// polynomial exponentiation modulo the characteristic polynomial
	// (O(k²) per squaring plus a one-off O(k⁴) Berkowitz step).
	// BenchmarkMLCGLacJump measures the crossover.
	DefaultPolyCrossover = 8

	// DefaultStepLimit disables the direct recurrence step guard.
	DefaultStepLimit = 0
)

// Exponentiation selects how MLCG lacunary families reach far indices.
type Exponentiation int

const (
	// ExpAuto picks ExpPolyQuotient for order ≥ the poly crossover and
	// ExpMatrixPower otherwise.
	ExpAuto Exponentiation = iota
	// ExpMatrixPower computes A^p by square and multiply.
	ExpMatrixPower
	// ExpPolyQuotient computes x^p mod χ_A and combines cached B·A^t, t < k.
	ExpPolyQuotient
)

// String implements fmt.Stringer.
func (e Exponentiation) String() string {
	switch e {
	case ExpAuto:
		return "auto"
	case ExpMatrixPower:
		return "matrix-power"
	case ExpPolyQuotient:
		return "poly-quotient"
	default:
		return fmt.Sprintf("Exponentiation(%d)", int(e))
	}
}

// Event ops reported through WithOnEvent.
const (
	EventBuild       = "build"
	EventBuildDual   = "build-dual"
	EventInc         = "inc"
	EventIncDual     = "inc-dual"
	EventProject     = "project"
	EventProjectDual = "project-dual"
	EventJump        = "jump"
	EventInvalidate  = "invalidate"
)

// Event describes one engine action. Dim is the resulting dimension for
// builds, increments and projections; Index is the 1-based output index
// reached by a jump (nil otherwise).
type Event struct {
	Op    string
	Dim   int
	Index *big.Int
}

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxDimProjInvalid    = "lattice: WithMaxDimProj: n must be ≥ 1"
	panicExponentiationBad    = "lattice: WithExponentiation: unknown strategy"
	panicPolyCrossoverInvalid = "lattice: WithPolyCrossover: k must be ≥ 1"
	panicStepLimitInvalid     = "lattice: WithStepLimit: n must be ≥ 0"
)

// Option configures a generator family.
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options is the resolved configuration of a family. Fields are unexported;
// families read them through gatherOptions.
type Options struct {
	maxDimProj    int // 0 means "same as maxDim"
	expo          Exponentiation
	polyCrossover int
	stepLimit     int64
	onEvent       func(Event)
}

func defaultOptions() Options {
	return Options{
		expo:          ExpAuto,
		polyCrossover: DefaultPolyCrossover,
		stepLimit:     DefaultStepLimit,
		onEvent:       func(Event) {},
	}
}

// gatherOptions applies opts over the defaults and resolves maxDimProj.
func gatherOptions(maxDim int, opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.maxDimProj == 0 {
		o.maxDimProj = maxDim
	}

	return o
}

// WithMaxDimProj bounds the number of coordinates a projection may have.
// Default: maxDim.
func WithMaxDimProj(n int) Option {
	if n < 1 {
		panic(panicMaxDimProjInvalid)
	}

	return func(o *Options) { o.maxDimProj = n }
}

// WithExponentiation selects the MLCG lacunary far-jump strategy.
func WithExponentiation(e Exponentiation) Option {
	if e < ExpAuto || e > ExpPolyQuotient {
		panic(panicExponentiationBad)
	}

	return func(o *Options) { o.expo = e }
}

// WithPolyCrossover sets the order from which ExpAuto uses polynomial
// exponentiation.
func WithPolyCrossover(k int) Option {
	if k < 1 {
		panic(panicPolyCrossoverInvalid)
	}

	return func(o *Options) { o.polyCrossover = k }
}

// WithStepLimit caps the total number of direct recurrence steps (one per
// generated output or matrix multiplication) a family may perform over its
// lifetime. 0 disables the guard. Jumps by exponentiation are not steps.
func WithStepLimit(n int64) Option {
	if n < 0 {
		panic(panicStepLimitInvalid)
	}

	return func(o *Options) { o.stepLimit = n }
}

// WithOnEvent installs an observer called synchronously for every engine
// event. A nil fn restores the no-op observer.
func WithOnEvent(fn func(Event)) Option {
	return func(o *Options) {
		if fn == nil {
			fn = func(Event) {}
		}
		o.onEvent = fn
	}
}
