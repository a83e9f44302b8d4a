// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new item into the tree
// returns false if an equal item was already present, in which case
// the tree is unchanged
func (tree *Tree[T]) Insert(item T) bool {
	added := insert(item, &tree.root, tree.compare)
	if added {
		tree.count += 1
		tree.stamp += 1
	}
	return added
}

// internal routine for insert
func insert[T any](item T, pp **Node[T], compare CompareFunc[T]) bool {
	p := *pp
	if nil == p { // insert new node
		*pp = newNode(item)
		return true
	}

	added := false
	switch c := compare(item, p.item); {
	case c < 0:
		added = insert(item, &p.left, compare)
	case c > 0:
		added = insert(item, &p.right, compare)
	default: // duplicate
		return false
	}

	// heights only change if a node was created below
	if added {
		rebalance(pp)
	}
	return added
}
