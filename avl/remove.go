// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// RemoveMinimum - detach the lowest item from the tree
// returns false if the tree was empty
func (tree *Tree[T]) RemoveMinimum() (T, bool) {
	p := removeMinimum(&tree.root)
	if nil == p {
		var zero T
		return zero, false
	}
	tree.count -= 1
	tree.stamp += 1
	return p.item, true
}

// internal: detach the leftmost node of the sub-tree in *pp and
// rebalance the path back up to pp
func removeMinimum[T any](pp **Node[T]) *Node[T] {
	p := *pp
	if nil == p {
		return nil
	}

	if nil != p.left {
		q := removeMinimum(&p.left)
		rebalance(pp)
		return q
	}

	// leftmost node: can only have a right sub-tree
	*pp = p.right
	p.right = nil
	return p
}
