// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/source"
)

// name of the source that reads standard input
const stdinName = "-"

// command names and the minimum number of arguments after the source
var commands = map[string]int{
	"check":  0,
	"digest": 0,
	"drain":  0,
	"merkle": 0,
	"print":  0,
	"search": 1,
	"sort":   0,
}

// parameters shared by all commands
type commandData struct {
	log     *logger.L
	loadLog *logger.L
	kind    string // source kind
	prefix  []byte // leveldb key prefix
	heights bool   // print heights and balance
}

// processCommand - open the source named by the second argument, load
// it into a tree and run the command named by the first
func processCommand(w io.Writer, data *commandData, dataDirectory string, arguments []string) error {
	if len(arguments) < 2 {
		return fault.ErrMissingArguments
	}

	command := arguments[0]
	name := arguments[1]
	arguments = arguments[2:]

	minimum, ok := commands[command]
	if !ok {
		return fault.ErrUnknownCommand
	}
	if len(arguments) < minimum {
		return fault.ErrMissingArguments
	}

	if stdinName != name {
		name = configuration.EnsureAbsolute(dataDirectory, name)
	}
	data.log.Infof("command: %s  source: %s  kind: %s", command, name, data.kind)

	src, err := source.Open(data.kind, name, data.prefix)
	if nil != err {
		return err
	}

	tree, _, err := loadTree(data.loadLog, src, itemEncoder(data.kind))
	if nil != err {
		return err
	}

	return runCommand(w, data, command, tree, arguments)
}

// run a single command on an already loaded tree
func runCommand(w io.Writer, data *commandData, command string, tree *avl.Tree[string], arguments []string) error {

	switch command {
	case "sort":
		for item := range tree.All() {
			fmt.Fprintln(w, item)
		}

	case "drain":
		d := tree.Drain()
		for item := range d.All() {
			fmt.Fprintln(w, item)
		}
		data.log.Infof("drained: tree size: %d  remaining: %d", tree.Size(), d.Size())

	case "search":
		parse := keyParser(data.kind)
		for _, argument := range arguments {
			key, err := parse(argument)
			if nil != err {
				data.log.Errorf("search key: %q  error: %s", argument, err)
				return err
			}
			if tree.Has(key) {
				fmt.Fprintf(w, "found: %s\n", key)
			} else {
				fmt.Fprintf(w, "not found: %s\n", key)
			}
		}

	case "print":
		depth := tree.Print(w, data.heights)
		fmt.Fprintf(w, "depth: %d\n", depth)

	case "check":
		if err := tree.Check(); nil != err {
			data.log.Criticalf("check failed: %s", err)
			return err
		}
		fmt.Fprintf(w, "size: %d  height: %d", tree.Size(), tree.Height())
		if minimum, ok := tree.Minimum(); ok {
			maximum, _ := tree.Maximum()
			fmt.Fprintf(w, "  minimum: %s  maximum: %s", minimum, maximum)
		}
		fmt.Fprintln(w)

	case "digest":
		fmt.Fprintln(w, digestTree(tree))

	case "merkle":
		fmt.Fprintln(w, merkleRoot(tree))

	default:
		return fault.ErrUnknownCommand
	}

	return nil
}

// database keys are binary so they are held as lower case hex which
// keeps their byte order
func itemEncoder(kind string) func([]byte) string {
	if configuration.SourceLevelDB == kind {
		return hex.EncodeToString
	}
	return func(item []byte) string {
		return string(item)
	}
}

// convert a command line key to the form held in the tree
func keyParser(kind string) func(string) (string, error) {
	if configuration.SourceLevelDB == kind {
		return func(key string) (string, error) {
			b, err := hex.DecodeString(strings.TrimPrefix(key, "0x"))
			if nil != err {
				return "", fault.ErrInvalidKey
			}
			return hex.EncodeToString(b), nil
		}
	}
	return func(key string) (string, error) {
		if "" == key {
			return "", fault.ErrInvalidKey
		}
		return key, nil
	}
}
