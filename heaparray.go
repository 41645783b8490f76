// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heaparray provides an ordered, searchable in-memory container
// that supports O(1) access to both its minimum and maximum, O(sqrt N)
// membership lookup and O(sqrt N log N) insertion and deletion by value.
// The backing store is a single contiguous buffer partitioned into a
// sequence of independently heap-ordered runs whose sizes are the
// consecutive odd numbers 1, 3, 5, ..., 2*sqrt(N)-1; each run is a
// min-max heap (see cloudeng.io/heaparray/mmheap) and every element of
// run k is <= every element of run k+1. Inspired by the discussion
// begun by Andrei Alexandrescu in:
// http://forum.dlang.org/post/n3iakr$q2g$1@digitalmars.com
//
// The container is not safe for concurrent mutation; callers requiring
// shared access must provide their own synchronization.
package heaparray

import (
	"cloudeng.io/errors"
	"golang.org/x/exp/constraints"

	"cloudeng.io/heaparray/mmheap"
)

// minAllocation is the storage allocated by the first grow of a
// container created without any initial reservation.
const minAllocation = 4

var (
	// ErrEmpty is returned by Min and Max when the container holds no
	// elements.
	ErrEmpty = errors.New("container is empty")
	// ErrOutOfRange is returned by At for an index at or beyond Len().
	ErrOutOfRange = errors.New("index out of range")
	// ErrCapacityExceeded is returned by Insert when a fixed-storage
	// container is full.
	ErrCapacityExceeded = errors.New("maximum size exceeded for fixed-size container")
	// ErrResizeForbidden is returned when a resize is attempted on a
	// fixed-storage container.
	ErrResizeForbidden = errors.New("resize disabled for this container")
)

// T represents the partitioned container. The zero value is an empty,
// growable container ready for use; New provides construction with
// preallocated storage or from existing data.
type T[V constraints.Ordered] struct {
	a     []V // len(a) is the physical storage
	count int
	fixed bool
	// set when storage was allocated without rounding up to a perfect
	// square (a reservation, or a fixed-size bulk build); cleared by
	// the first rounding resize.
	unrounded bool
}

// New creates a container configured by the supplied options. With no
// options the container starts empty with no storage and grows on
// demand.
func New[V constraints.Ordered](opts ...Option[V]) *T[V] {
	var o options[V]
	for _, fn := range opts {
		fn(&o)
	}
	t := &T[V]{}
	if o.data != nil {
		size := len(o.data)
		if o.physicalCap > size {
			size = o.physicalCap
		}
		t.resize(size, !o.fixed) //nolint:errcheck // cannot fail, fixed is set below
		copy(t.a, o.data)
		t.count = len(o.data)
		t.initHeaps()
		t.fixed = o.fixed
		return t
	}
	if o.reserve > 0 {
		t.a = make([]V, o.reserve)
		t.unrounded = true
	}
	t.fixed = o.fixed
	return t
}

// Len returns the number of elements currently stored.
func (t *T[V]) Len() int {
	return t.count
}

// Cap returns the physical storage of the container in elements.
func (t *T[V]) Cap() int {
	return len(t.a)
}

// Min returns the smallest element, which is always the first element
// of the buffer.
func (t *T[V]) Min() (V, error) {
	var zero V
	if t.count == 0 {
		return zero, ErrEmpty
	}
	return t.a[0], nil
}

// Max returns the largest element, found in O(1) at the top of the
// final partition's heap.
func (t *T[V]) Max() (V, error) {
	var zero V
	if t.count == 0 {
		return zero, ErrEmpty
	}
	return mmheap.Max(t.view(t.finalPartition()))
}

// At provides read-only access to the underlying buffer. Note that the
// buffer is ordered per-partition as a min-max heap and not globally
// sorted.
func (t *T[V]) At(i int) (V, error) {
	var zero V
	if i < 0 || i >= t.count {
		return zero, ErrOutOfRange
	}
	return t.a[i], nil
}

// Insert adds value to the container, growing the storage if required.
// ErrCapacityExceeded is returned if the container is full and its
// storage is fixed.
//
// The value is added to the partition whose range covers it; if that
// partition is full its maximum is displaced and carried forward into
// the next partition, cascading until a partition with spare capacity
// (always at most the final one) absorbs the carry. The displaced
// maximum is by construction <= every element of the next partition, so
// the global inter-partition ordering is preserved at each step.
func (t *T[V]) Insert(value V) error {
	if t.count == len(t.a) {
		if t.fixed {
			return ErrCapacityExceeded
		}
		if err := t.grow(); err != nil {
			return err
		}
	}
	p := t.findPartition(value, true)
	for {
		_, evicted, overflowed := mmheap.RippleAdd(t.view(p), value)
		if !overflowed {
			break
		}
		value = evicted
		p++
	}
	t.count++
	return nil
}

// Remove removes one element equal to value, reporting whether an
// element was found. Which duplicate is removed is unspecified.
//
// Unless the element lives in the final partition, the vacated slot is
// refilled by drawing the minimum of the final partition backwards
// through each intermediate partition's minimum slot, so that every
// partition keeps its size and the inter-partition ordering.
func (t *T[V]) Remove(value V) bool {
	found, _, p, local := t.locate(value)
	if !found {
		return false
	}
	fp := t.finalPartition()
	if p == fp {
		if _, _, err := mmheap.RemoveAt(t.view(fp), local); err != nil {
			return false
		}
		t.count--
		return true
	}
	_, carry, err := mmheap.PopMin(t.view(fp))
	if err != nil {
		return false
	}
	for q := fp - 1; q > p; q-- {
		// partitions before the final one are always full.
		carry, _ = mmheap.ReplaceAt(t.view(q), 0, carry)
	}
	if _, err := mmheap.ReplaceAt(t.view(p), local, carry); err != nil {
		return false
	}
	t.count--
	return true
}

// Find reports whether value is stored in the container and, if so, the
// absolute buffer index at which it was found.
func (t *T[V]) Find(value V) (int, bool) {
	found, idx, _, _ := t.locate(value)
	return idx, found
}

// Contains reports whether value is stored in the container.
func (t *T[V]) Contains(value V) bool {
	found, _, _, _ := t.locate(value)
	return found
}

// Clone returns a deep copy of the container, preserving its storage
// size and fixed-storage trait.
func (t *T[V]) Clone() *T[V] {
	c := &T[V]{count: t.count, fixed: t.fixed, unrounded: t.unrounded}
	if t.a != nil {
		c.a = make([]V, len(t.a))
		copy(c.a, t.a[:t.count])
	}
	return c
}

// resize reallocates the storage to hold n elements, rounding n up to
// the next perfect square when roundUp is set. Resizing to zero
// releases the storage. Existing elements are copied across, as many as
// fit.
func (t *T[V]) resize(n int, roundUp bool) error {
	if t.fixed {
		return ErrResizeForbidden
	}
	if n == 0 {
		t.a = nil
		t.count = 0
		return nil
	}
	if roundUp {
		k := ceilSqrt(n)
		n = k * k
	}
	fresh := make([]V, n)
	keep := t.count
	if keep > n {
		keep = n
	}
	copy(fresh, t.a[:keep])
	t.a = fresh
	t.count = keep
	t.unrounded = !roundUp
	return nil
}

// grow doubles the storage, rounding up to the next perfect square, or
// performs the initial minimum allocation for a container with no
// storage.
func (t *T[V]) grow() error {
	next := len(t.a) * 2
	if next == 0 {
		next = minAllocation
	}
	return t.resize(next, true)
}
