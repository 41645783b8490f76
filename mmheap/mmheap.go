// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package mmheap implements an array-embedded min-max heap as described
// in:
//
//	M. D. Atkinson, J.-R. Sack, N. Santoro, and T. Strothotte. 1986.
//	Min-max heaps and generalized priority queues.
//	Commun. ACM 29, 10 (October 1986), 996-1000.
//	https://doi.org/10.1145/6617.6621
//
// The heap levels alternate between min- and max-ordering with the root
// on a min level, giving O(1) access to both the smallest and largest
// element and O(log n) insertion and removal.
//
// A heap is represented as a plain slice: len(h) is the number of live
// elements and cap(h) is the capacity of the run the heap occupies.
// Three-index slice expressions allow the operations to be applied to a
// sub-range of a larger buffer without copying, e.g.
// buf[start:start+count:start+size]. All operations mutate the slice's
// backing array in place; those that change the number of live elements
// return the resized slice.
package mmheap

import "math/bits"

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return (2 * i) + 1 }
func right(i int) int  { return (2 * i) + 2 }

func hasParent(i int) bool  { return i > 0 }
func gparent(i int) int     { return parent(parent(i)) }
func hasGParent(i int) bool { return i > 2 }

func isChild(i, c int) bool { return c == left(i) || c == right(i) }

// MinLevel returns true if index i lies on a min level, that is, if
// floor(log2(i+1)) is even. The root is on a min level and min and max
// levels strictly alternate.
func MinLevel(i int) bool {
	return (bits.Len(uint(i)+1)-1)%2 == 0
}
