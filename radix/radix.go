// Package radix implements a monotone priority queue, the radix heap.
//
// A radix heap pops keys largest first and only accepts pushes
// of keys that are no greater than the most recently popped key.
// In exchange, Push is O(1) and Pop is amortized O(log R), where
// R is the range of keys held at once, independent of the number
// of items.
//
// Items are kept in buckets indexed by the bit length of the XOR
// of their key with the last popped key. All items in bucket 0
// have that exact key; when bucket 0 runs dry the lowest non-empty
// bucket is redistributed around its own maximum, which moves every
// one of its items to a strictly lower bucket.
package radix

import (
	"errors"
	"fmt"
	"math/bits"
)

// Key is the set of key types supported by Heap.
type Key interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// ErrNotMonotone is returned by Heap.Push when the key is
// greater than the last popped key.
var ErrNotMonotone = errors.New("radix: key greater than last popped key")

const (
	// distanceBuckets holds the number of buckets addressed
	// by radix distance, 0 to 64 inclusive.
	distanceBuckets = 65

	// initialBucket holds items pushed before the first pop,
	// when there is no top to measure distance from.
	initialBucket = distanceBuckets
)

type item[K Key, V any] struct {
	key   K
	value V
}

// Heap is a radix heap holding values of type V keyed by K.
// The zero value is an empty heap that accepts any key.
type Heap[K Key, V any] struct {
	buckets [distanceBuckets + 1][]item[K, V]
	len     int

	// top holds the last popped key and is only
	// meaningful when constrained is true.
	top         K
	constrained bool
}

// New returns an empty heap.
func New[K Key, V any]() *Heap[K, V] {
	return &Heap[K, V]{}
}

// Len returns the number of items in the heap.
func (h *Heap[K, V]) Len() int {
	return h.len
}

// Top returns the last popped key. It reports false
// if nothing has been popped since the heap was created or cleared,
// in which case any key may be pushed.
func (h *Heap[K, V]) Top() (K, bool) {
	return h.top, h.constrained
}

// Push adds value with the given key. It returns an error
// wrapping ErrNotMonotone if key is greater than the last popped key;
// the heap is unchanged in that case.
func (h *Heap[K, V]) Push(key K, value V) error {
	b := initialBucket
	if h.constrained {
		if ord(key) > ord(h.top) {
			return fmt.Errorf("%w: push %v after pop of %v", ErrNotMonotone, key, h.top)
		}
		b = distance(key, h.top)
	}
	h.buckets[b] = append(h.buckets[b], item[K, V]{key, value})
	h.len++
	return nil
}

// Pop removes and returns the item with the greatest key.
// It reports false if the heap is empty.
func (h *Heap[K, V]) Pop() (K, V, bool) {
	if h.len == 0 {
		var key K
		var value V
		return key, value, false
	}
	if len(h.buckets[0]) == 0 {
		h.redistribute()
	}
	b := h.buckets[0]
	n := len(b) - 1
	it := b[n]
	b[n] = item[K, V]{}
	h.buckets[0] = b[:n]
	h.len--
	return it.key, it.value, true
}

// redistribute makes the maximum of the lowest non-empty bucket
// the new top and spreads that bucket's items by their distance from it.
// It must only be called when bucket 0 is empty and the heap is not.
func (h *Heap[K, V]) redistribute() {
	i := 1
	for len(h.buckets[i]) == 0 {
		i++
	}
	b := h.buckets[i]
	top := b[0].key
	for _, it := range b[1:] {
		if ord(it.key) > ord(top) {
			top = it.key
		}
	}
	for _, it := range b {
		d := distance(it.key, top)
		h.buckets[d] = append(h.buckets[d], it)
	}
	clear(b)
	h.buckets[i] = b[:0]
	h.top = top
	h.constrained = true
}

// Clear removes all items and forgets the last popped key.
// Bucket storage is retained for reuse.
func (h *Heap[K, V]) Clear() {
	for i, b := range h.buckets {
		clear(b)
		h.buckets[i] = b[:0]
	}
	h.len = 0
	h.constrained = false
	var zero K
	h.top = zero
}

// Shrink releases the storage held by empty buckets.
func (h *Heap[K, V]) Shrink() {
	for i, b := range h.buckets {
		if len(b) == 0 {
			h.buckets[i] = nil
		}
	}
}

// ord maps k to a uint64 with the same ordering.
// Signed keys have their sign bit flipped after sign extension.
func ord[K Key](k K) uint64 {
	var zero K
	u := uint64(k)
	if ^zero < zero {
		u ^= 1 << 63
	}
	return u
}

// distance returns the radix distance between two keys:
// the bit length of their XOR, from 0 to 64.
func distance[K Key](a, b K) int {
	return bits.Len64(ord(a) ^ ord(b))
}
