package pqueue

import "github.com/rogpeppe/pqbench/heap"

// Binary is a Queue backed by a binary heap.
// Entries may be pushed in any order.
type Binary struct {
	h *heap.Heap[Entry]
}

// NewBinary returns an empty binary heap queue.
func NewBinary() *Binary {
	return &Binary{
		h: heap.New(nil, Before),
	}
}

func (q *Binary) Clear() {
	q.h.Clear()
}

func (q *Binary) Push(e Entry) error {
	q.h.Push(e)
	return nil
}

func (q *Binary) Pop() (Entry, bool) {
	return q.h.Pop()
}

func (q *Binary) Len() int {
	return q.h.Len()
}
