// Package pqueue defines the priority queue used by the A* search
// and provides two implementations of it: a radix heap that relies
// on pops never decreasing, and a general binary heap.
package pqueue

import (
	"errors"
	"fmt"

	"github.com/rogpeppe/pqbench/grid"
)

// Entry is a search frontier item.
type Entry struct {
	Pos grid.Pos
	// Cost holds the accumulated path cost from the source.
	Cost uint32
	// FullCost holds Cost plus the heuristic estimate to the target.
	FullCost uint32
}

func (e Entry) String() string {
	return fmt.Sprintf("%v cost %d full %d", e.Pos, e.Cost, e.FullCost)
}

// Before reports whether a is popped before b: smaller full cost
// first, then smaller accumulated cost. Every Queue pops in an order
// consistent with Before.
func Before(a, b Entry) bool {
	if a.FullCost != b.FullCost {
		return a.FullCost < b.FullCost
	}
	return a.Cost < b.Cost
}

// ErrMonotonicity is returned by Queue.Push on a queue that requires
// pops to be non-decreasing when the entry would pop before the last
// popped entry.
var ErrMonotonicity = errors.New("entry precedes last popped entry")

// Queue is implemented by priority queues of entries.
// A cleared queue behaves exactly like a new one.
type Queue interface {
	// Clear removes all entries, retaining allocated storage.
	Clear()
	// Push adds an entry.
	Push(e Entry) error
	// Pop removes and returns the first entry according to Before.
	// It reports false if the queue is empty.
	Pop() (Entry, bool)
	// Len returns the number of entries in the queue.
	Len() int
}

// Backend names a Queue implementation.
type Backend struct {
	Name string
	New  func() Queue
}

// Backends returns all the available queue implementations,
// radix first.
func Backends() []Backend {
	return []Backend{{
		Name: "radix",
		New:  func() Queue { return NewRadix() },
	}, {
		Name: "binary",
		New:  func() Queue { return NewBinary() },
	}}
}

// Lookup returns the backend with the given name.
func Lookup(name string) (Backend, bool) {
	for _, b := range Backends() {
		if b.Name == name {
			return b, true
		}
	}
	return Backend{}, false
}
