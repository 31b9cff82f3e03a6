package pqueue

import (
	"errors"
	"fmt"

	"github.com/rogpeppe/pqbench/grid"
	"github.com/rogpeppe/pqbench/radix"
)

// Radix is a Queue backed by a radix heap. Entries must be pushed
// in an order that keeps pops non-decreasing: an entry that is
// Before the last popped entry is rejected with ErrMonotonicity.
// A* with a consistent heuristic satisfies this.
type Radix struct {
	h radix.Heap[uint64, grid.Pos]
}

// NewRadix returns an empty radix queue.
func NewRadix() *Radix {
	return &Radix{}
}

// radixKey maps an entry to a key such that larger keys
// are Before smaller ones. The radix heap pops largest first,
// so this turns its non-increasing pops into
// non-decreasing (FullCost, Cost) pops.
func radixKey(fullCost, cost uint32) uint64 {
	return ^(uint64(fullCost)<<32 | uint64(cost))
}

// radixCosts is the inverse of radixKey.
func radixCosts(key uint64) (fullCost, cost uint32) {
	key = ^key
	return uint32(key >> 32), uint32(key)
}

func (q *Radix) Clear() {
	q.h.Clear()
}

func (q *Radix) Push(e Entry) error {
	if err := q.h.Push(radixKey(e.FullCost, e.Cost), e.Pos); err != nil {
		if errors.Is(err, radix.ErrNotMonotone) {
			err = fmt.Errorf("%w: %w", ErrMonotonicity, err)
		}
		return fmt.Errorf("cannot push %v: %w", e, err)
	}
	return nil
}

func (q *Radix) Pop() (Entry, bool) {
	key, pos, ok := q.h.Pop()
	if !ok {
		return Entry{}, false
	}
	fullCost, cost := radixCosts(key)
	return Entry{
		Pos:      pos,
		Cost:     cost,
		FullCost: fullCost,
	}, true
}

func (q *Radix) Len() int {
	return q.h.Len()
}
