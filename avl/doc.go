// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree holding an ordered set of items
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  A tree must not be modified while an Iterator is in
//       use, doing so will panic on the next call to the iterator.
//
// Each node caches the height of its sub-tree and after every
// insertion or removal the nodes along the modified path have their
// heights recomputed and are rotated back into balance, so the
// heights of the left and right sub-trees of any node never differ
// by more than one.
//
// Every sub-tree is owned by exactly one slot, either the left or
// right link of its parent or the root of the tree.  The internal
// routines operate on the address of that slot so that a rotation can
// replace the sub-tree in place.
//
// Inserting an item that compares equal to one already in the tree
// does nothing, the first item inserted is kept.  Items are only
// removed in ascending order, either one at a time by RemoveMinimum or
// all of them by Drain.
package avl
