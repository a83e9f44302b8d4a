// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node[T any] struct {
	left   *Node[T] // left sub-tree
	right  *Node[T] // right sub-tree
	item   T        // ordered data
	height int      // empty sub-tree: 0, leaf: 1
}

func newNode[T any](item T) *Node[T] {
	return &Node[T]{
		item:   item,
		height: 1,
	}
}

// Item - read the item from a node
func (p *Node[T]) Item() T {
	return p.item
}

// Left - the left sub-tree, nil if empty
func (p *Node[T]) Left() *Node[T] {
	return p.left
}

// Right - the right sub-tree, nil if empty
func (p *Node[T]) Right() *Node[T] {
	return p.right
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node[T]) Height() int {
	return p.height
}

// Balance - height of right sub-tree minus height of left sub-tree
func (p *Node[T]) Balance() int {
	return height(p.right) - height(p.left)
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node[T]) GetChildrenByDepth(depth uint) []*Node[T] {
	if depth == 0 {
		return []*Node[T]{p}
	}
	nodes := []*Node[T]{}
	if nil != p.left {
		nodes = append(nodes, p.left.GetChildrenByDepth(depth-1)...)
	}
	if nil != p.right {
		nodes = append(nodes, p.right.GetChildrenByDepth(depth-1)...)
	}
	return nodes
}

// height of a possibly empty sub-tree
func height[T any](p *Node[T]) int {
	if nil == p {
		return 0
	}
	return p.height
}

// recompute the cached height, children must already be correct
func (p *Node[T]) update() {
	p.height = 1 + max(height(p.left), height(p.right))
}
