// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heap provides a binary max-heap over a slice of values.
// A heap is a tree with the property that each node pops no
// later than any node in its subtree, as decided by the
// greater function given to New.
//
// The element to pop next is the root, at index 0.
//
// Ordering is entirely up to the caller: a min-ordered priority
// queue is built by passing a greater function that reports
// whether its first argument has the smaller priority.
package heap

// New returns a binary heap on the items slice, using greater to
// compare. greater(a, b) reports whether a should be popped before b.
func New[E any](items []E, greater func(E, E) bool) *Heap[E] {
	h := &Heap[E]{
		Items:   items,
		greater: greater,
	}
	h.Init()
	return h
}

// Heap implements a binary max-heap.
type Heap[E any] struct {
	// Items holds all the items in the heap. The first item
	// is the one that will be popped next.
	Items   []E
	greater func(E, E) bool
}

// Len returns the number of items in the heap.
func (h *Heap[E]) Len() int {
	return len(h.Items)
}

// Init establishes the heap invariants required by the other routines in this package.
// Init is idempotent with respect to the heap invariants
// and may be called whenever the heap invariants may have been invalidated.
// The complexity is O(n) where n = h.Len().
func (h *Heap[E]) Init() {
	n := len(h.Items)
	for i := n/2 - 1; i >= 0; i-- {
		h.down(i, n)
	}
}

// Clear removes all items from the heap, retaining
// the capacity of the backing slice.
func (h *Heap[E]) Clear() {
	clear(h.Items)
	h.Items = h.Items[:0]
}

// Push pushes the element x onto the heap.
// The complexity is O(log n) where n = h.Len().
func (h *Heap[E]) Push(x E) {
	h.Items = append(h.Items, x)
	h.up(len(h.Items) - 1)
}

// Peek returns the greatest element without removing it.
// It reports false if the heap is empty.
func (h *Heap[E]) Peek() (E, bool) {
	if len(h.Items) == 0 {
		var zero E
		return zero, false
	}
	return h.Items[0], true
}

// Pop removes and returns the greatest element (according to the greater function)
// from the heap. It reports false if the heap is empty.
// The complexity is O(log n) where n = h.Len().
func (h *Heap[E]) Pop() (E, bool) {
	n := len(h.Items) - 1
	if n < 0 {
		var zero E
		return zero, false
	}
	h.Items[0], h.Items[n] = h.Items[n], h.Items[0]
	h.down(0, n)
	x := h.Items[n]
	var zero E
	h.Items[n] = zero
	h.Items = h.Items[0:n]
	return x, true
}

func (h *Heap[E]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !h.greater(h.Items[j], h.Items[i]) {
			break
		}
		h.Items[i], h.Items[j] = h.Items[j], h.Items[i]
		j = i
	}
}

func (h *Heap[E]) down(i0, n int) {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.greater(h.Items[j2], h.Items[j1]) {
			j = j2 // = 2*i + 2  // right child
		}
		if !h.greater(h.Items[j], h.Items[i]) {
			break
		}
		h.Items[i], h.Items[j] = h.Items[j], h.Items[i]
		i = j
	}
}
