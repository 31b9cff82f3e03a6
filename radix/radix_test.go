package radix

import (
	"cmp"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestPopEmpty(t *testing.T) {
	var h Heap[uint32, string]
	k, v, ok := h.Pop()
	qt.Assert(t, qt.IsFalse(ok))
	qt.Assert(t, qt.Equals(k, uint32(0)))
	qt.Assert(t, qt.Equals(v, ""))
	_, constrained := h.Top()
	qt.Assert(t, qt.IsFalse(constrained))
}

func TestPopsLargestFirst(t *testing.T) {
	h := New[uint32, string]()
	for _, k := range []uint32{5, 900, 1, 77, 77, 0, 4096} {
		err := h.Push(k, "")
		qt.Assert(t, qt.IsNil(err))
	}
	qt.Assert(t, qt.Equals(h.Len(), 7))
	var got []uint32
	for h.Len() > 0 {
		k, _, ok := h.Pop()
		qt.Assert(t, qt.IsTrue(ok))
		got = append(got, k)
	}
	qt.Assert(t, qt.DeepEquals(got, []uint32{4096, 900, 77, 77, 5, 1, 0}))
}

func TestValuesFollowKeys(t *testing.T) {
	h := New[int, string]()
	h.Push(2, "two")
	h.Push(3, "three")
	h.Push(1, "one")
	for _, want := range []string{"three", "two", "one"} {
		_, v, _ := h.Pop()
		qt.Assert(t, qt.Equals(v, want))
	}
}

func TestMonotonicity(t *testing.T) {
	h := New[uint32, int]()
	h.Push(10, 0)
	h.Push(20, 0)
	k, _, _ := h.Pop()
	qt.Assert(t, qt.Equals(k, uint32(20)))
	top, ok := h.Top()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(top, uint32(20)))

	// Equal and smaller keys are fine.
	qt.Assert(t, qt.IsNil(h.Push(20, 1)))
	qt.Assert(t, qt.IsNil(h.Push(0, 2)))

	// A greater key is rejected and leaves the heap alone.
	err := h.Push(21, 3)
	qt.Assert(t, qt.ErrorIs(err, ErrNotMonotone))
	qt.Assert(t, qt.ErrorMatches(err, `radix: key greater than last popped key: push 21 after pop of 20`))
	qt.Assert(t, qt.Equals(h.Len(), 3))

	var got []uint32
	for h.Len() > 0 {
		k, _, _ := h.Pop()
		got = append(got, k)
	}
	qt.Assert(t, qt.DeepEquals(got, []uint32{20, 10, 0}))

	// The constraint survives the heap becoming empty.
	err = h.Push(1, 0)
	qt.Assert(t, qt.ErrorIs(err, ErrNotMonotone))
}

func TestClearForgetsTop(t *testing.T) {
	h := New[uint32, int]()
	for i := uint32(0); i < 100; i++ {
		h.Push(i*7, int(i))
	}
	h.Pop()
	h.Pop()
	h.Clear()
	qt.Assert(t, qt.Equals(h.Len(), 0))
	_, ok := h.Top()
	qt.Assert(t, qt.IsFalse(ok))
	_, _, ok = h.Pop()
	qt.Assert(t, qt.IsFalse(ok))

	// Behaves like a new heap: any key is accepted.
	qt.Assert(t, qt.IsNil(h.Push(math.MaxUint32, 0)))
	qt.Assert(t, qt.IsNil(h.Push(3, 0)))
	k, _, _ := h.Pop()
	qt.Assert(t, qt.Equals(k, uint32(math.MaxUint32)))
	k, _, _ = h.Pop()
	qt.Assert(t, qt.Equals(k, uint32(3)))
}

func TestShrink(t *testing.T) {
	h := New[uint64, struct{}]()
	for i := uint64(0); i < 50; i++ {
		h.Push(i<<40, struct{}{})
	}
	for h.Len() > 10 {
		h.Pop()
	}
	h.Shrink()
	var got []uint64
	for h.Len() > 0 {
		k, _, _ := h.Pop()
		got = append(got, k)
	}
	qt.Assert(t, qt.HasLen(got, 10))
	qt.Assert(t, qt.IsTrue(slices.IsSortedFunc(got, func(a, b uint64) int {
		return cmp.Compare(b, a)
	})))
}

func TestSignedKeys(t *testing.T) {
	h := New[int32, struct{}]()
	for _, k := range []int32{-1, 5, math.MinInt32, 0, math.MaxInt32, -300} {
		qt.Assert(t, qt.IsNil(h.Push(k, struct{}{})))
	}
	var got []int32
	for h.Len() > 0 {
		k, _, _ := h.Pop()
		got = append(got, k)
	}
	qt.Assert(t, qt.DeepEquals(got, []int32{math.MaxInt32, 5, 0, -1, -300, math.MinInt32}))

	err := h.Push(math.MinInt32+1, struct{}{})
	qt.Assert(t, qt.ErrorIs(err, ErrNotMonotone))
	qt.Assert(t, qt.IsNil(h.Push(math.MinInt32, struct{}{})))
}

func TestOrd(t *testing.T) {
	qt.Assert(t, qt.Equals(ord(int8(math.MinInt8)), uint64(1<<63-128)))
	qt.Assert(t, qt.Equals(ord(int8(-1)), uint64(1<<63-1)))
	qt.Assert(t, qt.Equals(ord(int8(0)), uint64(1<<63)))
	qt.Assert(t, qt.Equals(ord(int64(math.MaxInt64)), uint64(math.MaxUint64)))
	qt.Assert(t, qt.Equals(ord(uint8(255)), uint64(255)))
	qt.Assert(t, qt.Equals(ord(uint64(math.MaxUint64)), uint64(math.MaxUint64)))
}

func TestDistance(t *testing.T) {
	qt.Assert(t, qt.Equals(distance(uint32(7), uint32(7)), 0))
	qt.Assert(t, qt.Equals(distance(uint32(6), uint32(7)), 1))
	qt.Assert(t, qt.Equals(distance(uint32(0), uint32(8)), 4))
	qt.Assert(t, qt.Equals(distance(uint64(0), uint64(1<<63)), 64))
	qt.Assert(t, qt.Equals(distance(int32(-1), int32(0)), 64))
}

// TestRandomMonotone checks pops against a sorted reference for
// random interleavings of pushes (never above the last pop) and pops.
func TestRandomMonotone(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for round := 0; round < 20; round++ {
		h := New[uint64, int]()
		var ref []uint64
		top := uint64(1 << 20)
		for op := 0; op < 2000; op++ {
			if len(ref) == 0 || rnd.Intn(3) > 0 {
				k := top - uint64(rnd.Int63n(int64(top)+1))
				if rnd.Intn(5) == 0 {
					k = top
				}
				qt.Assert(t, qt.IsNil(h.Push(k, op)))
				ref = append(ref, k)
				continue
			}
			slices.Sort(ref)
			want := ref[len(ref)-1]
			ref = ref[:len(ref)-1]
			k, _, ok := h.Pop()
			qt.Assert(t, qt.IsTrue(ok))
			qt.Assert(t, qt.Equals(k, want))
			top = k
		}
		qt.Assert(t, qt.Equals(h.Len(), len(ref)))
	}
}

func BenchmarkPushPop(b *testing.B) {
	h := New[uint32, struct{}]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		h.Push(1000, struct{}{})
		for j := uint32(0); j < 1000; j++ {
			k, _, _ := h.Pop()
			h.Push(k-1, struct{}{})
		}
		h.Clear()
	}
}
