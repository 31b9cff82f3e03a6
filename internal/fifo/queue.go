// Package fifo provides a first-in first-out queue backed by a ring
// buffer that is reused across fills.
package fifo

import "math/bits"

// Queue holds a slice-backed FIFO queue.
// The zero value is an empty queue ready to use.
type Queue[T any] struct {
	// buf holds the backing slice. Its length
	// is always a power of two or zero.
	buf []T

	// head holds the index into buf of the oldest element.
	head int

	// len holds the number of elements in the queue.
	len int
}

// New returns a queue with room for at least minCap elements.
func New[T any](minCap int) *Queue[T] {
	var q Queue[T]
	q.grow(minCap)
	return &q
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.len
}

// Cap returns the number of elements the queue can
// hold without allocating.
func (q *Queue[T]) Cap() int {
	return len(q.buf)
}

// Push adds x to the back of the queue.
func (q *Queue[T]) Push(x T) {
	if q.len == len(q.buf) {
		q.grow(q.len + 1)
	}
	q.buf[q.mod(q.head+q.len)] = x
	q.len++
}

// Pop removes and returns the element at the front of the queue.
// It returns false if the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.len == 0 {
		return zero, false
	}
	x := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = q.mod(q.head + 1)
	q.len--
	return x, true
}

// Reset empties the queue, keeping its capacity.
func (q *Queue[T]) Reset() {
	clear(q.buf)
	q.head = 0
	q.len = 0
}

func (q *Queue[T]) grow(minCap int) {
	if minCap <= len(q.buf) {
		return
	}
	buf := make([]T, 1<<bits.Len(uint(minCap-1)))
	if q.head+q.len <= len(q.buf) {
		copy(buf, q.buf[q.head:q.head+q.len])
	} else {
		n := copy(buf, q.buf[q.head:])
		copy(buf[n:], q.buf[:q.len-n])
	}
	q.buf = buf
	q.head = 0
}

// mod returns x modulo the buffer length,
// which is always a power of two.
func (q *Queue[T]) mod(x int) int {
	return x & (len(q.buf) - 1)
}
