// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/source"
)

// counts from a single load
type loadStatistics struct {
	read       int // items delivered by the source
	duplicates int // items already present in the tree
}

// read every item from the source into a new tree
//
// the source is released before returning
func loadTree(log *logger.L, src source.ItemSource, encode func([]byte) string) (*avl.Tree[string], loadStatistics, error) {
	defer src.Release()

	tree := avl.New[string]()
	stats := loadStatistics{}

	for src.Next() {
		item := encode(src.Item())
		stats.read += 1
		if !tree.Insert(item) {
			stats.duplicates += 1
			log.Debugf("duplicate item: %q", item)
		}
	}
	if err := src.Error(); nil != err {
		log.Errorf("source error: %s after: %d items", err, stats.read)
		return nil, stats, err
	}

	log.Infof("read: %d  duplicates: %d  size: %d  height: %d", stats.read, stats.duplicates, tree.Size(), tree.Height())
	return tree, stats, nil
}
