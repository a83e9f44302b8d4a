// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"

	"github.com/bitmark-inc/avltree/fault"
)

// Iterator - ascending traversal that leaves the tree unchanged
//
// the tree must not be modified until the iterator is exhausted or
// discarded
type Iterator[T any] struct {
	tree    *Tree[T]
	stamp   uint64
	current *Node[T]
	stack   []*Node[T]
}

// Iterator - start an ascending traversal of the tree
func (tree *Tree[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		tree:    tree,
		stamp:   tree.stamp,
		current: tree.root,
		stack:   make([]*Node[T], 0, tree.Height()),
	}
}

// Next - return the next item in ascending order or false when there
// are no more items
func (it *Iterator[T]) Next() (T, bool) {
	if nil == it.current && 0 == len(it.stack) {
		var zero T
		return zero, false
	}
	if it.stamp != it.tree.stamp {
		fault.Panic("avl: tree modified during iteration")
	}

	for nil != it.current {
		it.stack = append(it.stack, it.current)
		it.current = it.current.left
	}

	n := len(it.stack) - 1
	p := it.stack[n]
	it.stack[n] = nil
	it.stack = it.stack[:n]

	it.current = p.right
	return p.item, true
}

// All - range over the items in ascending order
func (tree *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := tree.Iterator()
		for {
			item, ok := it.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Drain - ascending traversal that removes each item as it is returned
type Drain[T any] struct {
	tree Tree[T]
}

// Drain - move all nodes into a Drain, leaving this tree empty
func (tree *Tree[T]) Drain() *Drain[T] {
	d := &Drain[T]{
		tree: Tree[T]{
			root:    tree.root,
			count:   tree.count,
			compare: tree.compare,
		},
	}
	tree.Clear()
	return d
}

// Next - remove and return the lowest remaining item or false when
// empty
func (d *Drain[T]) Next() (T, bool) {
	return d.tree.RemoveMinimum()
}

// Size - number of items not yet returned
func (d *Drain[T]) Size() int {
	return d.tree.count
}

// All - range over the remaining items in ascending order, removing
// each one, stopping early keeps the rest in the drain
func (d *Drain[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := d.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}
