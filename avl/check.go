// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify ordering, cached heights, balance and node count
func (tree *Tree[T]) Check() error {
	n, err := check(tree.root, nil, nil, tree.compare)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrTreeCount
	}
	return nil
}

// internal: consistency checker, low and high are the exclusive
// bounds inherited from the ancestors, nil if unbounded
func check[T any](p *Node[T], low *T, high *T, compare CompareFunc[T]) (int, error) {
	if nil == p {
		return 0, nil
	}
	if nil != low && compare(*low, p.item) >= 0 {
		return 0, fault.ErrTreeOrder
	}
	if nil != high && compare(p.item, *high) >= 0 {
		return 0, fault.ErrTreeOrder
	}

	nl, err := check(p.left, low, &p.item, compare)
	if nil != err {
		return 0, err
	}
	nr, err := check(p.right, &p.item, high, compare)
	if nil != err {
		return 0, err
	}

	if p.height != 1+max(height(p.left), height(p.right)) {
		return 0, fault.ErrTreeHeight
	}
	if b := p.Balance(); b < -1 || b > 1 {
		return 0, fault.ErrTreeBalance
	}
	return 1 + nl + nr, nil
}
