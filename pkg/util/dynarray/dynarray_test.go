// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package dynarray

import (
	"fmt"
	"iter"
	"slices"
	"testing"

	"github.com/cockroachdb/dynarray/pkg/util/randutil"
	"github.com/cockroachdb/errors"
	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFromSlice[T comparable](t *testing.T, items ...T) *DynamicArray[T] {
	t.Helper()
	if items == nil {
		items = []T{}
	}
	a, err := NewFromSlice(items)
	require.NoError(t, err)
	return a
}

// checkInvariants verifies the structural invariants of the array.
func checkInvariants[T comparable](t *testing.T, a *DynamicArray[T]) {
	t.Helper()
	require.LessOrEqual(t, a.size, len(a.items))
	var zero T
	for i := a.size; i < len(a.items); i++ {
		require.Equalf(t, zero, a.items[i], "stale slot %d is not zeroed", i)
	}
}

func TestNew(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		a, err := New[int]()
		require.NoError(t, err)
		require.Equal(t, 0, a.Len())
		require.Equal(t, DefaultCapacity, a.Cap())
	})

	t.Run("capacity", func(t *testing.T) {
		a, err := New[int](WithCapacity(5))
		require.NoError(t, err)
		require.Equal(t, 0, a.Len())
		require.Equal(t, 5, a.Cap())
	})

	t.Run("zero", func(t *testing.T) {
		a, err := New[int](WithCapacity(0))
		require.NoError(t, err)
		require.Equal(t, 0, a.Cap())
	})

	t.Run("negative", func(t *testing.T) {
		a, err := New[int](WithCapacity(-100))
		require.Nil(t, a)
		require.True(t, errors.Is(err, ErrOutOfRange), "%+v", err)
		require.EqualError(t, err, "capacity -100 must be non-negative")
	})
}

func TestNewFromSlice(t *testing.T) {
	nums := []int{1, 2, 3, 4, 5}
	a, err := NewFromSlice(nums)
	require.NoError(t, err)
	require.Equal(t, len(nums), a.Len())
	require.Equal(t, len(nums), a.Cap())
	for k := range nums {
		v, err := a.At(k)
		require.NoError(t, err)
		require.Equal(t, nums[k], v)
	}

	// The array does not alias the input.
	nums[0] = 100
	v, err := a.At(0)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	_, err = NewFromSlice[int](nil)
	require.True(t, errors.Is(err, ErrNullArgument), "%+v", err)

	empty, err := NewFromSlice([]int{})
	require.NoError(t, err)
	require.Equal(t, 0, empty.Len())
	require.Equal(t, 0, empty.Cap())
}

func TestNewFromSeqConsumesOnce(t *testing.T) {
	var calls int
	seq := func(yield func(string) bool) {
		calls++
		for _, s := range []string{"a", "b", "c"} {
			if !yield(s) {
				return
			}
		}
	}
	a, err := NewFromSeq(iter.Seq[string](seq))
	require.NoError(t, err)
	require.Equal(t, 1, calls)
	require.Equal(t, []string{"a", "b", "c"}, a.Slice())
	require.Equal(t, 3, a.Cap())

	_, err = NewFromSeq[string](nil)
	require.True(t, errors.Is(err, ErrNullArgument), "%+v", err)
	require.EqualError(t, err, "sequence must not be nil")
}

func TestZeroValue(t *testing.T) {
	var a DynamicArray[int]
	require.Equal(t, 0, a.Len())
	require.Equal(t, 0, a.Cap())
	require.False(t, a.Contains(0))

	var resizes []ResizeEvent
	a.OnResized(func(ev ResizeEvent) { resizes = append(resizes, ev) })
	for i := 0; i < 5; i++ {
		a.Add(i)
	}
	require.Equal(t, []int{0, 1, 2, 3, 4}, a.Slice())
	require.Equal(t, []ResizeEvent{{0, 1}, {1, 2}, {2, 4}, {4, 8}}, resizes)
	checkInvariants(t, &a)
}

func TestAt(t *testing.T) {
	a := mustFromSlice(t, 1, 2, 3)
	for i, want := range []int{1, 2, 3} {
		v, err := a.At(i)
		require.NoError(t, err)
		require.Equal(t, want, v)
	}

	for _, i := range []int{-1, 3, 300} {
		_, err := a.At(i)
		require.Truef(t, errors.Is(err, ErrOutOfRange), "index %d: %+v", i, err)
	}

	// Reads are bounded by the length, not the capacity.
	b, err := New[int](WithCapacity(8))
	require.NoError(t, err)
	b.Add(1)
	_, err = b.At(1)
	require.EqualError(t, err, "index 1 out of range [0,1)")
}

func TestSet(t *testing.T) {
	a := mustFromSlice(t, 1)
	require.NoError(t, a.Set(0, 100))
	v, err := a.At(0)
	require.NoError(t, err)
	require.Equal(t, 100, v)

	b := mustFromSlice(t, 1, 2, 3)
	for _, i := range []int{10, -10, 3} {
		err := b.Set(i, 5)
		require.Truef(t, errors.Is(err, ErrInvalidArgument), "index %d: %+v", i, err)
	}
	require.Equal(t, []int{1, 2, 3}, b.Slice())
	require.Equal(t, 3, b.Cap())
}

func TestAdd(t *testing.T) {
	a, err := New[int](WithCapacity(2))
	require.NoError(t, err)
	for i := 1; i <= 10; i++ {
		prevLen := a.Len()
		a.Add(i * 10)
		require.Equal(t, prevLen+1, a.Len())
		v, err := a.At(a.Len() - 1)
		require.NoError(t, err)
		require.Equal(t, i*10, v)
		checkInvariants(t, a)
	}
	require.Equal(t, 16, a.Cap())
}

func TestCount(t *testing.T) {
	a := mustFromSlice(t, 1, 2, 3, 4, 5)
	a.Add(3)
	a.Add(10)
	require.NoError(t, a.AddRange(slices.Values([]int{1, 2, 3})))
	require.Equal(t, 10, a.Len())
}

func TestAddRangeNil(t *testing.T) {
	a, err := New[int]()
	require.NoError(t, err)
	err = a.AddRange(nil)
	require.True(t, errors.Is(err, ErrNullArgument), "%+v", err)
	require.Equal(t, 0, a.Len())
}

func TestGrowth(t *testing.T) {
	a, err := New[int](WithCapacity(5))
	require.NoError(t, err)
	var resizes []ResizeEvent
	var lenAtResize []int
	a.OnResized(func(ev ResizeEvent) {
		resizes = append(resizes, ev)
		lenAtResize = append(lenAtResize, a.Len())
	})

	require.NoError(t, a.AddRange(slices.Values([]int{1, 2, 3, 4, 5, 6, 7, 8, 9})))
	require.Equal(t, []ResizeEvent{{OldCapacity: 5, NewCapacity: 10}}, resizes)
	// The resize happens while appending the 6th element.
	require.Equal(t, []int{5}, lenAtResize)
	require.Equal(t, 9, a.Len())
	require.Equal(t, 10, a.Cap())

	// One resize per threshold crossed, always doubling.
	for i := 10; i <= 41; i++ {
		a.Add(i)
	}
	require.Equal(t, []ResizeEvent{{5, 10}, {10, 20}, {20, 40}, {40, 80}}, resizes)
	for _, ev := range resizes {
		require.Equal(t, 2*ev.OldCapacity, ev.NewCapacity)
	}
}

func TestGrowthFromDefault(t *testing.T) {
	a, err := New[int]()
	require.NoError(t, err)
	var count int
	a.OnResized(func(ResizeEvent) { count++ })
	for i := 1; i <= 17; i++ {
		a.Add(i)
	}
	require.Equal(t, 1, count)
	require.Equal(t, 2*DefaultCapacity, a.Cap())
}

func TestInsert(t *testing.T) {
	t.Run("middle", func(t *testing.T) {
		a := mustFromSlice(t, 1, 2, 3)
		require.NoError(t, a.Insert(1, 100))
		require.Equal(t, []int{1, 100, 2, 3}, a.Slice())
		require.Equal(t, 4, a.Len())
		checkInvariants(t, a)
	})

	for _, tc := range []struct {
		n, index int
	}{
		{3, 1},
		{16, 1},
		{16, 16},
		{16, 0},
	} {
		t.Run(fmt.Sprintf("n=%d,index=%d", tc.n, tc.index), func(t *testing.T) {
			nums := make([]int, tc.n)
			for i := range nums {
				nums[i] = i
			}
			a := mustFromSlice(t, nums...)
			require.NoError(t, a.Insert(tc.index, 100))
			require.Equal(t, tc.n+1, a.Len())
			v, err := a.At(tc.index)
			require.NoError(t, err)
			require.Equal(t, 100, v)
			want := slices.Insert(slices.Clone(nums), tc.index, 100)
			if got := a.Slice(); !slices.Equal(want, got) {
				t.Fatalf("unexpected contents:\n%s", pretty.Diff(want, got))
			}
		})
	}

	t.Run("invalid", func(t *testing.T) {
		a := mustFromSlice(t, 1, 2, 3)
		for _, i := range []int{-20, -1, 4, 20} {
			err := a.Insert(i, 100)
			require.Truef(t, errors.Is(err, ErrInvalidOperation), "index %d: %+v", i, err)
		}
		require.Equal(t, []int{1, 2, 3}, a.Slice())
		require.Equal(t, 3, a.Cap())
	})

	t.Run("into zero capacity", func(t *testing.T) {
		a, err := New[int](WithCapacity(0))
		require.NoError(t, err)
		require.NoError(t, a.Insert(0, 7))
		require.Equal(t, []int{7}, a.Slice())
		require.Equal(t, 1, a.Cap())
	})
}

func TestRemoveAt(t *testing.T) {
	a := mustFromSlice(t, 1, 2, 3)
	require.NoError(t, a.RemoveAt(2))
	require.Equal(t, 2, a.Len())
	_, err := a.At(2)
	require.True(t, errors.Is(err, ErrOutOfRange), "%+v", err)
	checkInvariants(t, a)

	require.NoError(t, a.RemoveAt(0))
	require.Equal(t, []int{2}, a.Slice())
	checkInvariants(t, a)

	b := mustFromSlice(t, 1, 2, 3)
	for _, i := range []int{20, 3, -1} {
		err := b.RemoveAt(i)
		require.Truef(t, errors.Is(err, ErrOutOfRange), "index %d: %+v", i, err)
	}
	require.Equal(t, []int{1, 2, 3}, b.Slice())
}

func TestInsertRemoveRoundTrip(t *testing.T) {
	rng, _ := randutil.NewTestRand()
	for round := 0; round < 100; round++ {
		n := rng.Intn(40)
		nums := make([]int, n)
		for i := range nums {
			nums[i] = rng.Intn(10)
		}
		a, err := New[int](WithCapacity(rng.Intn(4)))
		require.NoError(t, err)
		require.NoError(t, a.AddRange(slices.Values(nums)))

		i := rng.Intn(n + 1)
		require.NoError(t, a.Insert(i, -1))
		require.Equal(t, n+1, a.Len())
		require.NoError(t, a.RemoveAt(i))
		require.Equal(t, n, a.Len())
		if got := a.Slice(); !slices.Equal(nums, got) {
			t.Fatalf("insert/remove at %d did not round-trip:\n%s", i, pretty.Diff(nums, got))
		}
		checkInvariants(t, a)
	}
}

func TestIndexOfContains(t *testing.T) {
	for _, nums := range [][]int{{1, 2, 3}, {1, 2, 3, 2}} {
		a := mustFromSlice(t, nums...)
		require.Equal(t, 1, a.IndexOf(2))
		require.True(t, a.Contains(2))
		require.Equal(t, -1, a.IndexOf(200))
		require.False(t, a.Contains(200))
	}

	// Search does not look at stale slots.
	a, err := New[int](WithCapacity(4))
	require.NoError(t, err)
	require.Equal(t, -1, a.IndexOf(0))
	require.False(t, a.Contains(0))
	a.Add(5)
	require.NoError(t, a.RemoveAt(0))
	require.Equal(t, -1, a.IndexOf(5))

	rng, _ := randutil.NewTestRand()
	b, err := New[int]()
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		b.Add(rng.Intn(20))
	}
	for x := -1; x < 21; x++ {
		require.Equal(t, b.IndexOf(x) >= 0, b.Contains(x))
	}
}

func TestRemove(t *testing.T) {
	a := mustFromSlice(t, 1, 2, 3)
	require.True(t, a.Remove(2))
	require.False(t, a.Contains(2))
	require.Equal(t, []int{1, 3}, a.Slice())

	require.False(t, a.Remove(200))
	require.Equal(t, []int{1, 3}, a.Slice())

	// Only the first occurrence is removed.
	b := mustFromSlice(t, 4, 5, 4)
	require.True(t, b.Remove(4))
	require.Equal(t, []int{5, 4}, b.Slice())
	checkInvariants(t, b)
}

func TestClear(t *testing.T) {
	a := mustFromSlice(t, 1, 2, 3)
	var events int
	a.OnItemRemoved(func(ItemEvent[int]) { events++ })
	a.OnResized(func(ResizeEvent) { events++ })

	a.Clear()
	require.Equal(t, 0, a.Len())
	require.Equal(t, DefaultCapacity, a.Cap())
	require.Empty(t, a.Slice())
	require.Zero(t, events)
	_, err := a.At(0)
	require.True(t, errors.Is(err, ErrOutOfRange), "%+v", err)

	// A cleared array is usable again.
	a.Add(9)
	require.Equal(t, []int{9}, a.Slice())
}

func TestCopyTo(t *testing.T) {
	a := mustFromSlice(t, 1, 2, 3)
	dst := make([]int, 3)
	n, err := a.CopyTo(dst, 0)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []int{1, 2, 3}, dst)

	_, err = a.CopyTo(make([]int, 3), 3)
	require.True(t, errors.Is(err, ErrInvalidArgument), "%+v", err)
	require.EqualError(t, err, "destination of length 3 cannot hold 3 elements at offset 3")

	_, err = a.CopyTo(make([]int, 3), -1)
	require.True(t, errors.Is(err, ErrOutOfRange), "%+v", err)

	// Only live elements are copied, at the requested offset.
	b, err := New[int](WithCapacity(10))
	require.NoError(t, err)
	b.Add(7)
	b.Add(8)
	dst = []int{-1, -1, -1, -1}
	n, err = b.CopyTo(dst, 1)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []int{-1, 7, 8, -1}, dst)
}

func TestIsReadOnly(t *testing.T) {
	a := mustFromSlice(t, 1, 2, 3)
	require.False(t, a.IsReadOnly())
}

func TestSliceDoesNotAlias(t *testing.T) {
	a := mustFromSlice(t, 1, 2, 3)
	s := a.Slice()
	s[0] = 100
	v, err := a.At(0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestFailedOperationsDoNotMutate(t *testing.T) {
	a, err := New[int](WithCapacity(3))
	require.NoError(t, err)
	require.NoError(t, a.AddRange(slices.Values([]int{1, 2, 3})))
	var events int
	a.OnItemAdded(func(ItemEvent[int]) { events++ })
	a.OnItemRemoved(func(ItemEvent[int]) { events++ })
	a.OnResized(func(ResizeEvent) { events++ })

	require.Error(t, a.Insert(5, 0))
	require.Error(t, a.RemoveAt(3))
	require.Error(t, a.Set(3, 0))
	_, err = a.CopyTo(nil, 0)
	require.Error(t, err)

	require.Zero(t, events)
	require.Equal(t, []int{1, 2, 3}, a.Slice())
	require.Equal(t, 3, a.Cap())
}
