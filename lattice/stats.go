// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math/big"
)

// Stats counts the work a family has done since construction.
type Stats struct {
	// Steps is the number of direct recurrence steps: one per output
	// produced by stepping the recurrence, or one matrix multiplication per
	// MLCG block.
	Steps int64
	// Jumps is the number of far-index exponentiations.
	Jumps int64
	// RingMuls is the number of ring (or matrix) multiplications done inside jumps.
	RingMuls int64
	// Triangularizations counts reductions of the full generating set
	// (general, non unit-prefix case).
	Triangularizations int64
}

// meter is the shared counter and guard threaded through a family's
// sequence engine. One meter per family; not safe for concurrent use.
type meter struct {
	stats   Stats
	limit   int64
	onEvent func(Event)
}

func newMeter(o Options) *meter {
	return &meter{limit: o.stepLimit, onEvent: o.onEvent}
}

// step accounts n direct steps, failing before the work is done when the
// limit would be exceeded.
func (mt *meter) step(n int64) error {
	if mt.limit > 0 && mt.stats.Steps+n > mt.limit {
		return fmt.Errorf("%d steps done, %d more requested, limit %d: %w", mt.stats.Steps, n, mt.limit, ErrStepLimit)
	}
	mt.stats.Steps += n

	return nil
}

// jump accounts one far-index exponentiation reaching the 1-based output index.
func (mt *meter) jump(index *big.Int, muls int64) {
	mt.stats.Jumps++
	mt.stats.RingMuls += muls
	mt.onEvent(Event{Op: EventJump, Index: new(big.Int).Set(index)})
}

func (mt *meter) emit(op string, dim int) {
	mt.onEvent(Event{Op: op, Dim: dim})
}
