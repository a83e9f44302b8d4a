// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package source

import (
	"bufio"
	"io"
	"os"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

// name that selects standard input
const stdinName = "-"

type lineSource struct {
	closer   io.Closer // nil for standard input
	scanner  *bufio.Scanner
	released bool
	err      error
}

// OpenLines - items are the non-empty lines of a text file or of
// standard input if the name is "-"
func OpenLines(name string) (ItemSource, error) {
	if stdinName == name {
		return NewLines(os.Stdin, nil), nil
	}
	if !configuration.EnsureFileExists(name) {
		return nil, fault.ErrMissingFile
	}
	f, err := os.Open(name)
	if nil != err {
		return nil, err
	}
	return NewLines(f, f), nil
}

// NewLines - items are the non-empty lines read from r, closer is
// closed on Release if not nil
func NewLines(r io.Reader, closer io.Closer) ItemSource {
	return &lineSource{
		closer:  closer,
		scanner: bufio.NewScanner(r),
	}
}

func (s *lineSource) Next() bool {
	if s.released {
		s.err = fault.ErrSourceReleased
		return false
	}
	for s.scanner.Scan() {
		if len(s.scanner.Bytes()) > 0 {
			return true
		}
	}
	return false
}

func (s *lineSource) Item() []byte {
	b := s.scanner.Bytes()
	item := make([]byte, len(b))
	copy(item, b)
	return item
}

func (s *lineSource) Error() error {
	if nil != s.err {
		return s.err
	}
	return s.scanner.Err()
}

func (s *lineSource) Release() {
	if s.released {
		return
	}
	s.released = true
	if nil != s.closer {
		s.closer.Close()
	}
}
