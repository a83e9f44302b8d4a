// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// single left rotation: the right child of *pp takes its place
//
//	  p                x
//	 / \              / \
//	a   x     →      p   c
//	   / \          / \
//	  b   c        a   b
func rotateLeft[T any](pp **Node[T]) {
	p := *pp
	x := p.right
	b := x.left

	// detach everything first
	p.right = nil
	x.left = nil

	p.right = b
	x.left = p
	*pp = x

	p.update()
	x.update()
}

// single right rotation: the left child of *pp takes its place
//
//	    p            x
//	   / \          / \
//	  x   c   →    a   p
//	 / \              / \
//	a   b            b   c
func rotateRight[T any](pp **Node[T]) {
	p := *pp
	x := p.left
	b := x.right

	p.left = nil
	x.right = nil

	p.left = b
	x.right = p
	*pp = x

	p.update()
	x.update()
}

// recompute the height of *pp and restore its balance, both children
// must already be balanced with correct heights
func rebalance[T any](pp **Node[T]) {
	p := *pp
	p.update()

	switch b := p.Balance(); b {
	case -1, 0, +1:
		// nothing to do

	case -2: // left branch is too tall
		if p.left.Balance() > 0 {
			// double LR rotation
			rotateLeft(&p.left)
		}
		rotateRight(pp)

	case +2: // right branch is too tall
		if p.right.Balance() < 0 {
			// double RL rotation
			rotateRight(&p.right)
		}
		rotateLeft(pp)

	default:
		fault.Panicf("avl: balance factor: %d out of range at height: %d", b, p.height)
	}
}
