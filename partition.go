// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heaparray

import (
	"math"
	"slices"

	"cloudeng.io/heaparray/mmheap"
)

// Partition p occupies buffer indices [p*p, p*p+2p], for a capacity of
// 2p+1 elements; partitions are laid out back to back so that partition
// p starts immediately after partition p-1 ends.

func partitionSize(p int) int  { return 2*p + 1 }
func partitionStart(p int) int { return p * p }
func partitionEnd(p int) int   { return p*p + 2*p }

// indexToPartition maps an absolute buffer index to the partition that
// contains it.
func indexToPartition(i int) int {
	return floorSqrt(i)
}

// finalPartition returns the index of the highest occupied partition,
// the only one permitted to be partially filled.
func (t *T[V]) finalPartition() int {
	if t.count == 0 {
		return 0
	}
	return ceilSqrt(t.count) - 1
}

// countInPartition returns the number of live elements in partition p.
// Partitions before the final one are always full.
func (t *T[V]) countInPartition(p int) int {
	if p < t.finalPartition() {
		return partitionSize(p)
	}
	return t.count - p*p
}

// view returns partition p's sub-range of the buffer as a slice whose
// length is the partition's live count and whose capacity is the
// partition's size, clamped to the physical storage for an unrounded
// allocation.
func (t *T[V]) view(p int) []V {
	s := partitionStart(p)
	e := s + partitionSize(p)
	if e > len(t.a) {
		e = len(t.a)
	}
	return t.a[s : s+t.countInPartition(p) : e]
}

// partitionRange returns the smallest and largest values held in
// partition p, both available in O(1) from the partition's heap.
func (t *T[V]) partitionRange(p int) (V, V) {
	mx, _ := mmheap.Max(t.view(p))
	return t.a[partitionStart(p)], mx
}

func (t *T[V]) maxInPartition(p int) V {
	mx, _ := mmheap.Max(t.view(p))
	return mx
}

// findPartition binary-searches for the partition whose [min, max]
// range brackets value. With forInsert set it also accepts the
// partition a new value should join when it falls between two
// partitions' ranges, or beyond either end of the occupied range. The
// acceptance conditions form an ordered try-list; the first to match
// wins. Returns 0 when the container is empty or no partition matches.
func (t *T[V]) findPartition(value V, forInsert bool) int {
	if t.count == 0 {
		return 0
	}
	lo, hi := 0, t.finalPartition()
	for lo <= hi {
		mid := (lo + hi) / 2
		pmin, pmax := t.partitionRange(mid)
		switch {
		case pmin <= value && value <= pmax:
			return mid
		case forInsert && mid > 0 && value <= pmax && t.maxInPartition(mid-1) <= value:
			return mid
		case forInsert && mid == 0 && value <= pmax:
			return mid
		case forInsert && mid == t.finalPartition() && value >= pmin:
			// A value above the range of a completely full final
			// partition belongs in the partition that opens beyond it;
			// rippling it into the full partition would displace a
			// smaller maximum ahead of it and break the inter-partition
			// ordering.
			if len(t.view(mid)) == partitionSize(mid) && value > pmax {
				return mid + 1
			}
			return mid
		case pmax < value:
			lo = mid + 1
		default:
			if mid == 0 {
				// the search range cannot extend below the first
				// partition.
				return 0
			}
			hi = mid - 1
		}
	}
	return 0
}

// locate finds value, returning whether it was found, its absolute
// buffer index, the partition searched and the index local to that
// partition. Within a partition only the heap invariant holds, so the
// partition's live elements are scanned linearly: O(sqrt N).
func (t *T[V]) locate(value V) (found bool, index, p, local int) {
	p = t.findPartition(value, false)
	if t.count == 0 {
		return false, 0, p, 0
	}
	s := partitionStart(p)
	for i, v := range t.view(p) {
		if v == value {
			return true, s + i, p, i
		}
	}
	return false, 0, p, 0
}

// initHeaps turns an arbitrarily ordered buffer of count elements into
// the partitioned heap structure: a full sort establishes the
// inter-partition ordering, then each partition is heapified in place.
// Partition 0 holds a single element and is trivially a heap.
func (t *T[V]) initHeaps() {
	slices.Sort(t.a[:t.count])
	for p := 1; p <= t.finalPartition(); p++ {
		mmheap.Make(t.view(p))
	}
}

// ceilSqrt returns the smallest k such that k*k >= n. The float result
// is adjusted to be exact for all int inputs.
func ceilSqrt(n int) int {
	if n <= 0 {
		return 0
	}
	k := int(math.Sqrt(float64(n)))
	for k*k < n {
		k++
	}
	for k > 0 && (k-1)*(k-1) >= n {
		k--
	}
	return k
}

// floorSqrt returns the largest k such that k*k <= n.
func floorSqrt(n int) int {
	if n <= 0 {
		return 0
	}
	k := int(math.Sqrt(float64(n)))
	for (k+1)*(k+1) <= n {
		k++
	}
	for k*k > n {
		k--
	}
	return k
}
