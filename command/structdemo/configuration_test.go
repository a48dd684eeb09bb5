// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfiguration = `
local M = {}
M.data_directory = "."
M.verify = false
M.demos = {
    {
        kind = "AVL",
        steps = {
            { action = "insert", values = { 3, 1, 2 } },
            { action = "print" },
        },
    },
    {
        name = "list",
        kind = "doubly",
        steps = {
            { action = "insert", values = { 7 } },
        },
    },
}
M.logging = {
    levels = {
        DEFAULT = "debug",
    },
}
return M
`

func writeConfiguration(t *testing.T, content string) (string, string) {
	dir, err := ioutil.TempDir("", "structdemo")
	require.NoError(t, err)

	fileName := filepath.Join(dir, "structdemo.conf")
	err = ioutil.WriteFile(fileName, []byte(content), 0600)
	require.NoError(t, err)
	return dir, fileName
}

func TestGetConfiguration(t *testing.T) {
	dir, fileName := writeConfiguration(t, testConfiguration)
	defer os.RemoveAll(dir)

	cfg, err := getConfiguration(fileName)
	require.NoError(t, err)

	assert.Equal(t, filepath.Clean(dir), cfg.DataDirectory, "data directory")
	assert.False(t, cfg.Verify, "verify")
	require.Len(t, cfg.Demos, 2)
	assert.Equal(t, "demo-1", cfg.Demos[0].Name, "default name")
	assert.Equal(t, "AVL", cfg.Demos[0].Kind)
	assert.Equal(t, []int{3, 1, 2}, cfg.Demos[0].Steps[0].Values)
	assert.Equal(t, "list", cfg.Demos[1].Name)

	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), cfg.Logging.Directory, "log directory")
	assert.Equal(t, defaultLogFile, cfg.Logging.File, "log file")
	assert.Equal(t, defaultLogCount, cfg.Logging.Count, "log count")
	assert.Equal(t, "debug", cfg.Logging.Levels["DEFAULT"], "log level")

	info, err := os.Stat(cfg.Logging.Directory)
	require.NoError(t, err, "log directory not created")
	assert.True(t, info.IsDir())
}

func TestGetConfigurationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no data directory", `return { demos = {} }`},
		{"missing data directory", `return { data_directory = "/does/not/exist" }`},
		{"unknown kind", `return { data_directory = ".", demos = { { kind = "heap" } } }`},
		{"unknown action", `return { data_directory = ".", demos = { { kind = "bst", steps = { { action = "sort" } } } } }`},
		{"log file path", `return { data_directory = ".", logging = { file = "a/b.log" } }`},
		{"syntax", `return {`},
	}

	for _, test := range tests {
		dir, fileName := writeConfiguration(t, test.content)
		_, err := getConfiguration(fileName)
		assert.Error(t, err, test.name)
		os.RemoveAll(dir)
	}
}

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/a/b/c", ensureAbsolute("/a", "b/c"))
	assert.Equal(t, "/x/y", ensureAbsolute("/a", "/x/y/"))
	assert.Equal(t, "/a", ensureAbsolute("/a/b", ".."))
}
