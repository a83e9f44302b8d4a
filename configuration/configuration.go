// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// source kinds
const (
	SourceLines   = "lines"   // newline separated text file
	SourceLevelDB = "leveldb" // keys of a LevelDB database
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "."
	defaultSource        = SourceLines

	defaultLogDirectory = "."
	defaultLogFile      = "avltool.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"load":            "info",
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - LevelDB source options
type DatabaseType struct {
	Prefix string `gluamapper:"prefix" json:"prefix"` // hex, only keys starting with these bytes
}

// OutputType - presentation options
type OutputType struct {
	Heights bool `gluamapper:"heights" json:"heights"` // print heights and balance factors
}

// Configuration - everything read from the Lua file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Source        string               `gluamapper:"source" json:"source"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Output        OutputType           `gluamapper:"output" json:"output"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Default - configuration used when no file is given
func Default() *Configuration {
	// the decoder merges into an existing map so never share it
	levels := make(map[string]string, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	return &Configuration{
		DataDirectory: defaultDataDirectory,
		Source:        defaultSource,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}
}

// Read - read, decode and verify the configuration
func Read(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}
	if !EnsureFileExists(configurationFileName) {
		return nil, fault.ErrMissingFile
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := Default()

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.Source = strings.ToLower(options.Source)
	if _, err := options.Validate(); nil != err {
		return nil, err
	}

	// "." is the same directory as the config file
	if "" == options.DataDirectory || "." == options.DataDirectory {
		options.DataDirectory = dataDirectory
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.ErrNotADirectory
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = EnsureAbsolute(options.DataDirectory, *f)
	}

	return options, nil
}

// Validate - check source kind and decode the key prefix
func (c *Configuration) Validate() ([]byte, error) {
	switch c.Source {
	case SourceLines, SourceLevelDB:
	default:
		return nil, fault.ErrInvalidSourceKind
	}
	prefix, err := hex.DecodeString(c.Database.Prefix)
	if nil != err {
		return nil, fault.ErrInvalidPrefix
	}
	return prefix, nil
}

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - check if file exists
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}
