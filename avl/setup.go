// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/avltree/fault"
)

// CompareFunc - returns <0 if a < b, 0 if a == b and >0 if a > b
type CompareFunc[T any] func(a T, b T) int

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	root    *Node[T]
	count   int
	compare CompareFunc[T]
	stamp   uint64 // changed by every modification
}

// New - create an initially empty tree of naturally ordered items
func New[T cmp.Ordered]() *Tree[T] {
	return NewFunc(cmp.Compare[T])
}

// NewFunc - create an initially empty tree ordered by a compare function
func NewFunc[T any](compare CompareFunc[T]) *Tree[T] {
	if nil == compare {
		fault.Panic("avl: nil compare function")
	}
	return &Tree[T]{
		root:    nil,
		count:   0,
		compare: compare,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Size - number of nodes currently in the tree
func (tree *Tree[T]) Size() int {
	return tree.count
}

// Count - same as Size
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Height - height of the whole tree, zero when empty
func (tree *Tree[T]) Height() int {
	return height(tree.root)
}

// Root - return the root node of the tree
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}

// Clear - discard all nodes
func (tree *Tree[T]) Clear() {
	tree.root = nil
	tree.count = 0
	tree.stamp += 1
}
