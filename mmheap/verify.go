// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mmheap

import (
	"fmt"

	"cloudeng.io/errors"
	"golang.org/x/exp/constraints"
)

// Verify checks that h satisfies the min-max heap invariant and returns
// an error describing every violation found. It is intended for tests
// and debugging. Each element is compared against its parent and
// grandparent; by transitivity this establishes the ordering over all
// descendants.
func Verify[T constraints.Ordered](h []T) error {
	errs := errors.M{}
	for i := 1; i < len(h); i++ {
		p := parent(i)
		if MinLevel(p) {
			if h[i] < h[p] {
				errs.Append(fmt.Errorf("min level parent [%v] %v > child [%v] %v", p, h[p], i, h[i]))
			}
		} else {
			if h[i] > h[p] {
				errs.Append(fmt.Errorf("max level parent [%v] %v < child [%v] %v", p, h[p], i, h[i]))
			}
		}
		if !hasGParent(i) {
			continue
		}
		g := gparent(i)
		if MinLevel(g) {
			if h[i] < h[g] {
				errs.Append(fmt.Errorf("min level grandparent [%v] %v > grandchild [%v] %v", g, h[g], i, h[i]))
			}
		} else {
			if h[i] > h[g] {
				errs.Append(fmt.Errorf("max level grandparent [%v] %v < grandchild [%v] %v", g, h[g], i, h[i]))
			}
		}
	}
	return errs.Err()
}
