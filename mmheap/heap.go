// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mmheap

import (
	"cloudeng.io/errors"
	"golang.org/x/exp/constraints"
)

var (
	// ErrEmpty is returned when an operation that requires at least one
	// element is applied to an empty heap.
	ErrEmpty = errors.New("heap is empty")
	// ErrFull is returned by Push when the heap has no spare capacity.
	ErrFull = errors.New("heap is at capacity")
	// ErrOutOfRange is returned when an index is beyond the last live
	// element of the heap.
	ErrOutOfRange = errors.New("index beyond end of heap")
)

func swap[T constraints.Ordered](h []T, i, j int) {
	h[i], h[j] = h[j], h[i]
}

// minDescendant returns the index of the smallest value amongst the
// children and grandchildren of i, or false if i has no children.
func minDescendant[T constraints.Ordered](h []T, i int) (int, bool) {
	m := left(i)
	if m >= len(h) {
		return 0, false
	}
	if r := right(i); r < len(h) && h[r] < h[m] {
		m = r
	}
	// Grandchildren occupy the contiguous range [4i+3, 4i+6].
	for g := left(left(i)); g <= right(right(i)) && g < len(h); g++ {
		if h[g] < h[m] {
			m = g
		}
	}
	return m, true
}

// maxDescendant is the mirror of minDescendant.
func maxDescendant[T constraints.Ordered](h []T, i int) (int, bool) {
	m := left(i)
	if m >= len(h) {
		return 0, false
	}
	if r := right(i); r < len(h) && h[r] > h[m] {
		m = r
	}
	for g := left(left(i)); g <= right(right(i)) && g < len(h); g++ {
		if h[g] > h[m] {
			m = g
		}
	}
	return m, true
}

// siftDownMin restores the heap invariant below index i, which must lie
// on a min level.
func siftDownMin[T constraints.Ordered](h []T, i int) {
	for {
		m, ok := minDescendant(h, i)
		if !ok {
			return
		}
		if isChild(i, m) {
			if h[m] < h[i] {
				swap(h, m, i)
			}
			return
		}
		// m is a grandchild; a swap with i may leave the intervening
		// max level inconsistent, so check the parent of m as well.
		if h[m] >= h[i] {
			return
		}
		swap(h, m, i)
		if h[m] > h[parent(m)] {
			swap(h, m, parent(m))
		}
		i = m
	}
}

// siftDownMax is the mirror of siftDownMin for an index on a max level.
func siftDownMax[T constraints.Ordered](h []T, i int) {
	for {
		m, ok := maxDescendant(h, i)
		if !ok {
			return
		}
		if isChild(i, m) {
			if h[m] > h[i] {
				swap(h, m, i)
			}
			return
		}
		if h[m] <= h[i] {
			return
		}
		swap(h, m, i)
		if h[m] < h[parent(m)] {
			swap(h, m, parent(m))
		}
		i = m
	}
}

func siftDown[T constraints.Ordered](h []T, i int) {
	if MinLevel(i) {
		siftDownMin(h, i)
		return
	}
	siftDownMax(h, i)
}

// bubbleUpMin moves the element at i, which must lie on a min level,
// towards the root along the min levels.
func bubbleUpMin[T constraints.Ordered](h []T, i int) {
	for hasGParent(i) && h[i] < h[gparent(i)] {
		swap(h, i, gparent(i))
		i = gparent(i)
	}
}

func bubbleUpMax[T constraints.Ordered](h []T, i int) {
	for hasGParent(i) && h[i] > h[gparent(i)] {
		swap(h, i, gparent(i))
		i = gparent(i)
	}
}

// bubbleUp restores the invariant above index i after a new value has
// been placed there. An element that violates its own level's ordering
// relative to its parent is first swapped onto the parent's level.
func bubbleUp[T constraints.Ordered](h []T, i int) {
	if MinLevel(i) {
		if hasParent(i) && h[i] > h[parent(i)] {
			swap(h, i, parent(i))
			bubbleUpMax(h, parent(i))
			return
		}
		bubbleUpMin(h, i)
		return
	}
	if hasParent(i) && h[i] < h[parent(i)] {
		swap(h, i, parent(i))
		bubbleUpMin(h, parent(i))
		return
	}
	bubbleUpMax(h, i)
}

// Make reorders the elements of h into a min-max heap using Floyd's
// algorithm. O(len(h)).
func Make[T constraints.Ordered](h []T) {
	if len(h) < 2 {
		return
	}
	for i := parent(len(h) - 1); i >= 0; i-- {
		siftDown(h, i)
	}
}

// Min returns the smallest element of h, which is always at the root.
func Min[T constraints.Ordered](h []T) (T, error) {
	var zero T
	if len(h) == 0 {
		return zero, ErrEmpty
	}
	return h[0], nil
}

// MaxIndex returns the index of the largest element of h: 0 for a heap
// of at most one element, otherwise the larger of the root's children.
func MaxIndex[T constraints.Ordered](h []T) int {
	if len(h) <= 1 {
		return 0
	}
	if len(h) > 2 && h[2] > h[1] {
		return 2
	}
	return 1
}

// Max returns the largest element of h.
func Max[T constraints.Ordered](h []T) (T, error) {
	var zero T
	if len(h) == 0 {
		return zero, ErrEmpty
	}
	return h[MaxIndex(h)], nil
}

// Push appends v to h and restores the heap invariant, returning the
// extended slice. ErrFull is returned if len(h) == cap(h).
func Push[T constraints.Ordered](h []T, v T) ([]T, error) {
	if len(h) == cap(h) {
		return h, ErrFull
	}
	h = append(h, v)
	bubbleUp(h, len(h)-1)
	return h, nil
}

// RippleAdd adds v to h, evicting the current maximum if the heap is at
// capacity. When the heap has spare capacity the add is a plain Push and
// overflowed is false. When full, the maximum is replaced by v, the
// invariant is re-established and the displaced maximum is returned with
// overflowed set to true; the number of live elements does not change.
// cap(h) must be at least 1. A heap of capacity 1 holds its single
// element at the root, so the root comparison is skipped.
func RippleAdd[T constraints.Ordered](h []T, v T) (nh []T, evicted T, overflowed bool) {
	if len(h) < cap(h) {
		nh, _ = Push(h, v)
		return nh, evicted, false
	}
	m := MaxIndex(h)
	evicted = h[m]
	h[m] = v
	if cap(h) > 1 {
		if v < h[0] {
			swap(h, 0, m)
		}
		siftDown(h, m)
	}
	return h, evicted, true
}

// ReplaceAt replaces the element at index i with v, restores the heap
// invariant and returns the replaced value. Depending on the level of i
// and on how v compares to the old value, the new value is either
// bubbled up or, after an optional swap with the parent to keep the
// parent's level consistent, sifted down on the same level kind.
func ReplaceAt[T constraints.Ordered](h []T, i int, v T) (T, error) {
	var zero T
	if len(h) == 0 {
		return zero, ErrEmpty
	}
	if i >= len(h) {
		return zero, ErrOutOfRange
	}
	old := h[i]
	h[i] = v
	if MinLevel(i) {
		if v < old {
			bubbleUpMin(h, i)
			return old, nil
		}
		if hasParent(i) && h[parent(i)] < v {
			swap(h, parent(i), i)
			bubbleUpMax(h, parent(i))
		}
		siftDownMin(h, i)
		return old, nil
	}
	if v > old {
		bubbleUpMax(h, i)
		return old, nil
	}
	if hasParent(i) && v < h[parent(i)] {
		swap(h, parent(i), i)
		bubbleUpMin(h, parent(i))
	}
	siftDownMax(h, i)
	return old, nil
}

// RemoveAt removes and returns the element at index i, filling the
// vacated position with the last element of the heap.
func RemoveAt[T constraints.Ordered](h []T, i int) ([]T, T, error) {
	var zero T
	if len(h) == 0 {
		return h, zero, ErrEmpty
	}
	if i >= len(h) {
		return h, zero, ErrOutOfRange
	}
	old, err := ReplaceAt(h, i, h[len(h)-1])
	if err != nil {
		return h, zero, err
	}
	return h[:len(h)-1], old, nil
}

// PopMin removes and returns the smallest element of h.
func PopMin[T constraints.Ordered](h []T) ([]T, T, error) {
	var zero T
	if len(h) == 0 {
		return h, zero, ErrEmpty
	}
	v := h[0]
	n := len(h) - 1
	swap(h, 0, n)
	h = h[:n]
	siftDown(h, 0)
	return h, v, nil
}

// PopMax removes and returns the largest element of h.
func PopMax[T constraints.Ordered](h []T) ([]T, T, error) {
	var zero T
	if len(h) == 0 {
		return h, zero, ErrEmpty
	}
	return RemoveAt(h, MaxIndex(h))
}
