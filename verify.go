// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heaparray

import (
	"fmt"

	"cloudeng.io/errors"

	"cloudeng.io/heaparray/mmheap"
)

// Verify checks the container's internal invariants and returns an
// error describing every violation found. It is intended for tests and
// debugging. The invariants checked are:
//
//   - the storage is a perfect square (skipped while the storage is
//     unrounded, as for a reservation that has never been resized or a
//     fixed-size bulk build, whose storage is used exactly as given);
//   - every partition satisfies the min-max heap invariant;
//   - every partition before the final one is full;
//   - the final partition's count is within its capacity;
//   - the maximum of each partition is <= the minimum of the next.
func (t *T[V]) Verify() error {
	errs := errors.M{}
	if n := len(t.a); n > 0 && !t.unrounded {
		if k := floorSqrt(n); k*k != n {
			errs.Append(fmt.Errorf("storage %v is not a perfect square", n))
		}
	}
	if t.count == 0 {
		return errs.Err()
	}
	fp := t.finalPartition()
	for p := 0; p <= fp; p++ {
		h := t.view(p)
		if err := mmheap.Verify(h); err != nil {
			errs.Append(fmt.Errorf("partition %v: %w", p, err))
		}
		if p < fp {
			if got, want := len(h), partitionSize(p); got != want {
				errs.Append(fmt.Errorf("partition %v holds %v of %v elements", p, got, want))
			}
			pmax := t.maxInPartition(p)
			if next := t.a[partitionStart(p+1)]; pmax > next {
				errs.Append(fmt.Errorf("partition %v max %v exceeds partition %v min %v", p, pmax, p+1, next))
			}
			continue
		}
		if len(h) < 1 || len(h) > partitionSize(p) {
			errs.Append(fmt.Errorf("final partition %v holds %v elements, capacity %v", p, len(h), partitionSize(p)))
		}
	}
	return errs.Err()
}
