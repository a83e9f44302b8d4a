// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item
// returns the stored item, which may differ from target in any fields
// not used by the compare function
func (tree *Tree[T]) Search(target T) (T, bool) {
	p := search(target, tree.root, tree.compare)
	if nil == p {
		var zero T
		return zero, false
	}
	return p.item, true
}

// Has - true if an item equal to target is present
func (tree *Tree[T]) Has(target T) bool {
	return nil != search(target, tree.root, tree.compare)
}

func search[T any](target T, tree *Node[T], compare CompareFunc[T]) *Node[T] {
	if nil == tree {
		return nil
	}

	switch c := compare(target, tree.item); {
	case c < 0:
		return search(target, tree.left, compare)
	case c > 0:
		return search(target, tree.right, compare)
	default:
		return tree
	}
}

// Minimum - the lowest item without removing it
func (tree *Tree[T]) Minimum() (T, bool) {
	p := tree.root.first()
	if nil == p {
		var zero T
		return zero, false
	}
	return p.item, true
}

// Maximum - the highest item without removing it
func (tree *Tree[T]) Maximum() (T, bool) {
	p := tree.root.last()
	if nil == p {
		var zero T
		return zero, false
	}
	return p.item, true
}

// internal: lowest node in a sub-tree
func (p *Node[T]) first() *Node[T] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *Node[T]) last() *Node[T] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}
