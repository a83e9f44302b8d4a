// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/merkle"
)

func pair(a merkle.Digest, b merkle.Digest) merkle.Digest {
	return merkle.NewDigest(append(a[:], b[:]...))
}

func TestDigestText(t *testing.T) {
	// SHA3-256 of no input
	expected := "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"

	d := merkle.NewDigest(nil)
	assert.Equal(t, expected, d.String(), "wrong string")
	assert.Equal(t, expected, fmt.Sprintf("%s", d), "wrong %%s")
	assert.Equal(t, "<SHA3-256:"+expected+">", fmt.Sprintf("%#v", d), "wrong %%#v")

	text, err := d.MarshalText()
	assert.NoError(t, err, "marshal error")
	assert.Equal(t, expected, string(text), "wrong text")
}

func TestRootEmpty(t *testing.T) {
	assert.Equal(t, merkle.Digest{}, merkle.Root(nil), "empty root not zero")
}

func TestRootSingle(t *testing.T) {
	d := merkle.NewDigest([]byte("one"))
	assert.Equal(t, d, merkle.Root([]merkle.Digest{d}), "single leaf is not the root")
}

func TestFullTreeOdd(t *testing.T) {
	d1 := merkle.NewDigest([]byte("one"))
	d2 := merkle.NewDigest([]byte("two"))
	d3 := merkle.NewDigest([]byte("three"))

	d12 := pair(d1, d2)
	d33 := pair(d3, d3)
	root := pair(d12, d33)

	tree := merkle.FullTree([]merkle.Digest{d1, d2, d3})
	assert.Equal(t, []merkle.Digest{d1, d2, d3, d12, d33, root}, tree, "wrong tree")
	assert.Equal(t, root, merkle.Root([]merkle.Digest{d1, d2, d3}), "wrong root")
}

func TestFullTreeEven(t *testing.T) {
	leaves := make([]merkle.Digest, 4)
	for i := range leaves {
		leaves[i] = merkle.NewDigest([]byte{byte(i)})
	}

	root := pair(pair(leaves[0], leaves[1]), pair(leaves[2], leaves[3]))
	tree := merkle.FullTree(leaves)
	assert.Equal(t, 7, len(tree), "wrong tree length")
	assert.Equal(t, root, tree[6], "wrong root")
}
