// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "heights", HasArg: getoptions.NO_ARGUMENT, Short: 'H'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "source", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "prefix", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'p'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		usage(program)
		return
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	theConfiguration := configuration.Default()
	if 1 == len(options["config-file"]) {
		configurationFile := options["config-file"][0]
		theConfiguration, err = configuration.Read(configurationFile)
		if nil != err {
			exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
		}
	}

	// command line overrides the configuration file
	if n := len(options["source"]); n > 0 {
		theConfiguration.Source = strings.ToLower(options["source"][n-1])
	}
	if n := len(options["prefix"]); n > 0 {
		theConfiguration.Database.Prefix = options["prefix"][n-1]
	}
	if len(options["heights"]) > 0 {
		theConfiguration.Output.Heights = true
	}
	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
		theConfiguration.Logging.Levels["main"] = "debug"
		theConfiguration.Logging.Levels["load"] = "debug"
	}
	if len(options["quiet"]) > 0 {
		theConfiguration.Logging.Console = false
	}

	prefix, err := theConfiguration.Validate()
	if nil != err {
		exitwithstatus.Message("%s: invalid source: %q  prefix: %q  error: %s", program, theConfiguration.Source, theConfiguration.Database.Prefix, err)
	}

	if len(arguments) < 2 {
		exitwithstatus.Message("%s: at least 2 arguments are required, use --help for usage", program)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	data := &commandData{
		log:     log,
		loadLog: logger.New("load"),
		kind:    theConfiguration.Source,
		prefix:  prefix,
		heights: theConfiguration.Output.Heights,
	}

	err = processCommand(os.Stdout, data, theConfiguration.DataDirectory, arguments)
	if nil != err {
		log.Errorf("command: %s  error: %s", arguments[0], err)
		exitwithstatus.Message("%s: command: %s  error: %s", program, arguments[0], err)
	}
}

func usage(program string) {
	fmt.Printf("usage: %s [options] command source [key...]\n", program)
	fmt.Printf("options:\n" +
		"  --help             -h         this message\n" +
		"  --verbose          -v         log to console at debug level\n" +
		"  --quiet            -q         no console logging\n" +
		"  --version          -V         display version\n" +
		"  --heights          -H         print heights and balance factors\n" +
		"  --config-file=FILE -c FILE    Lua configuration file\n" +
		"  --source=KIND      -s KIND    lines or leveldb\n" +
		"  --prefix=HEX       -p HEX     only leveldb keys with this prefix\n" +
		"commands:\n" +
		"  sort    source                print items in ascending order\n" +
		"  drain   source                print items in ascending order while removing them\n" +
		"  search  source key...         report whether each key is present\n" +
		"  print   source                draw the tree and its depth\n" +
		"  check   source                verify the tree and show size, height and range\n" +
		"  digest  source                SHA3-256 of the items in ascending order\n" +
		"  merkle  source                Merkle root over the items in ascending order\n" +
		"sources:\n" +
		"  lines: a text file with one item per line, - for standard input\n" +
		"  leveldb: a LevelDB directory, items are its keys shown in hex\n")
}
