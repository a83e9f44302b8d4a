// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package source - sequences of byte string items for loading a tree
package source

import (
	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

// ItemSource - iterate over a sequence of items
//
//	for s.Next() {
//	    item := s.Item()
//	}
//	err := s.Error()
//	s.Release()
type ItemSource interface {
	Next() bool   // advance, false at end or on error
	Item() []byte // current item, copied so it may be retained
	Error() error // the error that stopped Next, if any
	Release()     // free any resources
}

// Open - open a source of the given kind
func Open(kind string, name string, prefix []byte) (ItemSource, error) {
	switch kind {
	case configuration.SourceLines:
		return OpenLines(name)
	case configuration.SourceLevelDB:
		return OpenLevelDB(name, prefix)
	default:
		return nil, fault.ErrInvalidSourceKind
	}
}
