// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/merkle"
)

// SHA3-256 over the items in ascending order, each preceded by its
// length as a uvarint so that adjacent items cannot run together
func digestTree(tree *avl.Tree[string]) string {
	h := sha3.New256()
	buffer := make([]byte, binary.MaxVarintLen64)

	for item := range tree.All() {
		n := binary.PutUvarint(buffer, uint64(len(item)))
		h.Write(buffer[:n])
		h.Write([]byte(item))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Merkle root with one leaf per item in ascending order
func merkleRoot(tree *avl.Tree[string]) merkle.Digest {
	leaves := make([]merkle.Digest, 0, tree.Size())
	for item := range tree.All() {
		leaves = append(leaves, merkle.NewDigest([]byte(item)))
	}
	return merkle.Root(leaves)
}
