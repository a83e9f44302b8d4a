// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package source

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

type levelDBSource struct {
	db       *leveldb.DB
	iter     iterator.Iterator
	released bool
}

// OpenLevelDB - items are the keys of an existing database that start
// with prefix, the database is opened read only
func OpenLevelDB(name string, prefix []byte) (ItemSource, error) {
	if !configuration.EnsureFileExists(name) {
		return nil, fault.ErrMissingFile
	}

	options := &opt.Options{
		ErrorIfMissing: true,
		ReadOnly:       true,
	}
	db, err := leveldb.OpenFile(name, options)
	if nil != err {
		return nil, err
	}

	return &levelDBSource{
		db:   db,
		iter: db.NewIterator(ldb_util.BytesPrefix(prefix), nil),
	}, nil
}

func (s *levelDBSource) Next() bool {
	if s.released {
		return false
	}
	return s.iter.Next()
}

func (s *levelDBSource) Item() []byte {
	key := s.iter.Key()
	item := make([]byte, len(key))
	copy(item, key)
	return item
}

func (s *levelDBSource) Error() error {
	if s.released {
		return fault.ErrSourceReleased
	}
	return s.iter.Error()
}

func (s *levelDBSource) Release() {
	if s.released {
		return
	}
	s.released = true
	s.iter.Release()
	s.db.Close()
}
