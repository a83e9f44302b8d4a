// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

// FullTree - all levels of the Merkle tree over a set of leaf digests
//
// structure is:
//  1. N * leaf digests
//  2. level 1..m digests
//  3. merkle root digest
//
// an odd digest at the end of a level is paired with itself, an empty
// set gives a single zero digest
func FullTree(leaves []Digest) []Digest {

	// compute length of leaves + all tree levels including root
	leafCount := len(leaves)

	totalLength := 1 // all leaves + space for the final root
	for n := leafCount; n > 1; n = (n + 1) / 2 {
		totalLength += n
	}

	tree := make([]Digest, totalLength)
	copy(tree, leaves)

	n := leafCount
	j := 0
	for workLength := leafCount; workLength > 1; workLength = (workLength + 1) / 2 {
		for i := 0; i < workLength; i += 2 {
			k := j + 1
			if i+1 == workLength {
				k = j // compensate for odd number
			}
			pair := make([]byte, 0, 2*DigestLength)
			pair = append(pair, tree[j][:]...)
			pair = append(pair, tree[k][:]...)
			tree[n] = NewDigest(pair)
			n += 1
			j = k + 1
		}
	}
	return tree
}

// Root - the final digest of the full tree
func Root(leaves []Digest) Digest {
	tree := FullTree(leaves)
	return tree[len(tree)-1]
}
