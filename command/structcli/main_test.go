// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, arguments ...string) (string, error) {
	dir, err := ioutil.TempDir("", "structcli")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	var w bytes.Buffer
	var e bytes.Buffer
	app := newApp(&w, &e)

	args := append([]string{"structcli", "--log-directory", dir}, arguments...)
	err = app.Run(args)
	return w.String(), err
}

func TestRunAVL(t *testing.T) {
	out, err := runApp(t, "--kind=avl", "run", "insert=10,20,30,20", "delete=10", "print")
	require.NoError(t, err)

	assert.Contains(t, out, "avl: count: 2")
	assert.Contains(t, out, "values: [20 30]")
}

func TestRunJSON(t *testing.T) {
	out, err := runApp(t, "--json", "--kind=doubly", "run", "insert=3,1,3", "search=1,9")
	require.NoError(t, err)

	var r runResult
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "doubly", r.Kind)
	assert.Equal(t, 3, r.Result.Inserted)
	assert.Equal(t, 1, r.Result.Found)
	assert.Equal(t, 1, r.Result.NotFound)
	assert.Equal(t, []int{3, 1, 3}, r.Result.Values)
}

func TestRunUnknownKind(t *testing.T) {
	_, err := runApp(t, "--kind=heap", "run", "insert=1")
	assert.Error(t, err)
}

func TestTraverse(t *testing.T) {
	out, err := runApp(t, "--json", "traverse", "20", "10", "30", "5", "25", "35")
	require.NoError(t, err)

	var r traverseResult
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 3, r.Height)
	assert.Equal(t, 6, r.Count)
	assert.Equal(t, []int{5, 10, 20, 25, 30, 35}, r.InOrder)
	assert.Equal(t, []int{20, 10, 5, 30, 25, 35}, r.PreOrder)
	assert.Equal(t, []int{5, 10, 25, 35, 30, 20}, r.PostOrder)
	assert.Equal(t, []int{20, 10, 30, 5, 25, 35}, r.LevelOrder)
}

func TestKinds(t *testing.T) {
	out, err := runApp(t, "kinds")
	require.NoError(t, err)
	assert.Contains(t, out, "singly-circular\n")
}
