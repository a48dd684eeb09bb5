// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/structures/configuration"
	"github.com/bitmark-inc/structures/fault"
)

type step struct {
	Action string `gluamapper:"action"`
	Values []int  `gluamapper:"values"`
}

type demo struct {
	Name  string `gluamapper:"name"`
	Kind  string `gluamapper:"kind"`
	Steps []step `gluamapper:"steps"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Verify        bool              `gluamapper:"verify"`
	Levels        map[string]string `gluamapper:"levels"`
	Demos         []demo            `gluamapper:"demos"`
	Source        string            `gluamapper:"source"`
}

const chunk = `
local M = {}
M.data_directory = "."
M.verify = true
M.levels = { main = "info", script = "debug" }
M.demos = {
    {
        name = "rotations",
        kind = "avl",
        steps = {
            { action = "insert", values = { 10, 20, 30 } },
            { action = "print" },
        },
    },
}
M.source = arg[0]
return M
`

func TestParseConfigurationString(t *testing.T) {
	cfg := testConfiguration{
		DataDirectory: "default",
	}
	err := configuration.ParseConfigurationString("memory", chunk, &cfg)
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.DataDirectory)
	assert.True(t, cfg.Verify)
	assert.Equal(t, "debug", cfg.Levels["script"])
	assert.Equal(t, "memory", cfg.Source, "arg[0]")
	require.Len(t, cfg.Demos, 1)
	assert.Equal(t, "rotations", cfg.Demos[0].Name)
	assert.Equal(t, "avl", cfg.Demos[0].Kind)
	require.Len(t, cfg.Demos[0].Steps, 2)
	assert.Equal(t, "insert", cfg.Demos[0].Steps[0].Action)
	assert.Equal(t, []int{10, 20, 30}, cfg.Demos[0].Steps[0].Values)
	assert.Equal(t, "print", cfg.Demos[0].Steps[1].Action)
}

func TestParseConfigurationFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(fileName, []byte(chunk), 0600)
	require.NoError(t, err)

	cfg := testConfiguration{}
	err = configuration.ParseConfigurationFile(fileName, &cfg)
	require.NoError(t, err)
	assert.Equal(t, fileName, cfg.Source, "arg[0]")
	assert.Len(t, cfg.Demos, 1)
}

func TestParseErrors(t *testing.T) {
	cfg := testConfiguration{}

	err := configuration.ParseConfigurationString("bad", "return {", &cfg)
	assert.Error(t, err, "syntax error")

	err = configuration.ParseConfigurationString("number", "return 42", &cfg)
	assert.Equal(t, fault.ErrMissingConfiguration, err)

	err = configuration.ParseConfigurationString("nil", "return {}", cfg)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a pointer")

	err = configuration.ParseConfigurationString("nil", "return {}", (*testConfiguration)(nil))
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "nil pointer")

	err = configuration.ParseConfigurationFile("/does/not/exist.conf", &cfg)
	assert.Error(t, err, "missing file")
}
