// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/structures/configuration"
	"github.com/bitmark-inc/structures/script"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "structdemo.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Demo - one structure and the steps applied to it
type Demo struct {
	Name  string        `gluamapper:"name" json:"name"`
	Kind  string        `gluamapper:"kind" json:"kind"`
	Steps []script.Step `gluamapper:"steps" json:"steps"`
}

// Configuration - the whole program configuration
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Verify        bool                 `gluamapper:"verify" json:"verify"`
	Demos         []Demo               `gluamapper:"demos" json:"demos"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		Verify:        true,
		Demos:         []Demo{},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, errors.New(fmt.Sprintf("Path: %q is not a valid directory", options.DataDirectory))
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, errors.New(fmt.Sprintf("Path: %q is not a directory", options.DataDirectory))
	}

	// every demo must name a known structure and only known actions
	for i, d := range options.Demos {
		if "" == d.Name {
			options.Demos[i].Name = fmt.Sprintf("demo-%d", i+1)
		}
		if !validKind(d.Kind) {
			return nil, errors.New(fmt.Sprintf("Demo: %q kind: %q is not supported", options.Demos[i].Name, d.Kind))
		}
		for _, s := range d.Steps {
			if !validAction(s.Action) {
				return nil, errors.New(fmt.Sprintf("Demo: %q action: %q is not supported", options.Demos[i].Name, s.Action))
			}
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, errors.New(fmt.Sprintf("Files: %q is not plain name", options.Logging.File))
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = ensureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// ensureAbsolute - if not an absolute path then join to directory
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

func validKind(kind string) bool {
	kind = strings.ToLower(kind)
	for _, k := range script.Kinds() {
		if k == kind {
			return true
		}
	}
	return false
}

func validAction(action string) bool {
	switch strings.ToLower(action) {
	case script.ActionInsert, script.ActionDelete, script.ActionSearch, script.ActionPrint:
		return true
	default:
		return false
	}
}
