// Package workload generates a synthetic push/pop churn against
// priority queues of integer keys, independent of any search.
package workload

import (
	"fmt"

	"github.com/rogpeppe/pqbench/heap"
	"github.com/rogpeppe/pqbench/radix"
)

// Iterations is the number of pop-and-expand rounds
// used by the standard churn.
const Iterations = 10000

// Fanout is the number of keys pushed for every key popped.
const Fanout = 4

// KeyQueue is a max-first priority queue of keys.
type KeyQueue interface {
	// Push adds a key.
	Push(k int32) error
	// Pop removes and returns the largest key.
	// It reports false if the queue is empty.
	Pop() (int32, bool)
	// Clear removes all keys.
	Clear()
	// Len returns the number of keys held.
	Len() int
}

// Run pushes start and then, n times, pops the largest key k
// and pushes k, k-1, k-2 and k-3.
//
// Keys never exceed the last popped key, so the pattern is
// legal for monotone queues such as the radix heap without
// any key transformation.
func Run(q KeyQueue, start int32, n int) error {
	if err := q.Push(start); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		k, ok := q.Pop()
		if !ok {
			return fmt.Errorf("round %d: queue unexpectedly empty", i)
		}
		for j := int32(0); j < Fanout; j++ {
			if err := q.Push(k - j); err != nil {
				return fmt.Errorf("round %d: %w", i, err)
			}
		}
	}
	return nil
}

// Churn is Run followed by clearing the queue.
func Churn(q KeyQueue, start int32, n int) error {
	err := Run(q, start, n)
	q.Clear()
	return err
}

// Backend names a KeyQueue implementation.
type Backend struct {
	Name string
	New  func() KeyQueue
}

// Backends returns the available key queues, radix first.
func Backends() []Backend {
	return []Backend{{
		Name: "radix",
		New:  func() KeyQueue { return NewRadix() },
	}, {
		Name: "binary",
		New:  func() KeyQueue { return NewBinary() },
	}}
}

type radixKeys struct {
	h radix.Heap[int32, struct{}]
}

// NewRadix returns a KeyQueue backed by a radix heap.
// Pushing a key greater than the last popped key fails
// with an error wrapping radix.ErrNotMonotone.
func NewRadix() KeyQueue {
	return &radixKeys{}
}

func (q *radixKeys) Push(k int32) error {
	return q.h.Push(k, struct{}{})
}

func (q *radixKeys) Pop() (int32, bool) {
	k, _, ok := q.h.Pop()
	return k, ok
}

func (q *radixKeys) Clear() {
	q.h.Clear()
}

func (q *radixKeys) Len() int {
	return q.h.Len()
}

type binaryKeys struct {
	h *heap.Heap[int32]
}

// NewBinary returns a KeyQueue backed by a binary heap.
func NewBinary() KeyQueue {
	return &binaryKeys{
		h: heap.New(nil, func(a, b int32) bool {
			return a > b
		}),
	}
}

func (q *binaryKeys) Push(k int32) error {
	q.h.Push(k)
	return nil
}

func (q *binaryKeys) Pop() (int32, bool) {
	return q.h.Pop()
}

func (q *binaryKeys) Clear() {
	q.h.Clear()
}

func (q *binaryKeys) Len() int {
	return q.h.Len()
}
