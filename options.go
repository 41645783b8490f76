// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heaparray

import "golang.org/x/exp/constraints"

type options[V constraints.Ordered] struct {
	reserve     int
	physicalCap int
	data        []V
	fixed       bool
}

// Option represents the options that can be passed to New.
type Option[V constraints.Ordered] func(*options[V])

// WithReserve preallocates storage for n elements. The allocation is
// used exactly as requested without rounding up to a perfect square;
// the first grow re-establishes the square storage sizes.
func WithReserve[V constraints.Ordered](n int) Option[V] {
	return func(o *options[V]) {
		o.reserve = n
	}
}

// WithData initializes the container from a copy of values, which need
// not be ordered. Takes precedence over WithReserve.
func WithData[V constraints.Ordered](values []V) Option[V] {
	return func(o *options[V]) {
		o.data = values
	}
}

// WithPhysicalCapacity hints the initial storage to allocate when
// constructing from data, allowing room beyond the data itself. Values
// smaller than the data length are ignored.
func WithPhysicalCapacity[V constraints.Ordered](n int) Option[V] {
	return func(o *options[V]) {
		o.physicalCap = n
	}
}

// WithFixedStorage prevents the container from ever resizing its
// storage; Insert fails with ErrCapacityExceeded once the storage is
// full.
func WithFixedStorage[V constraints.Ordered]() Option[V] {
	return func(o *options[V]) {
		o.fixed = true
	}
}
