// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/structures/bst"
	"github.com/bitmark-inc/structures/script"
)

type runResult struct {
	Kind   string        `json:"kind"`
	Result script.Result `json:"result"`
}

type traverseResult struct {
	Height     int   `json:"height"`
	Count      int   `json:"count"`
	InOrder    []int `json:"inorder"`
	PreOrder   []int `json:"preorder"`
	PostOrder  []int `json:"postorder"`
	LevelOrder []int `json:"levelorder"`
}

func runSteps(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	steps, err := parseSteps(c.Args())
	if nil != err {
		return err
	}

	target, err := script.NewTarget(m.kind)
	if nil != err {
		return err
	}

	r, err := script.New(m.kind, target, m.log)
	if nil != err {
		return err
	}
	if !m.json {
		r.SetOutput(m.w)
	}

	result, err := r.Run(steps)
	if nil != err {
		return err
	}
	if err := script.Verify(target); nil != err {
		return err
	}

	if m.json {
		return printJson(m.w, runResult{
			Kind:   m.kind,
			Result: result,
		})
	}

	if m.verbose {
		fmt.Fprintf(m.w, "inserted: %d  duplicates: %d  deleted: %d  missing: %d  found: %d  not found: %d\n",
			result.Inserted,
			result.Duplicates,
			result.Deleted,
			result.Missing,
			result.Found,
			result.NotFound,
		)
	}
	fmt.Fprintf(m.w, "values: %v\n", result.Values)
	return nil
}

func runTraverse(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	values, err := parseValues(c.Args())
	if nil != err {
		return err
	}

	tree := bst.New()
	for _, v := range values {
		tree.Insert(v)
	}
	m.log.Debugf("traverse: %d values", tree.Count())

	result := traverseResult{
		Height:     tree.Height(),
		Count:      tree.Count(),
		InOrder:    tree.InOrder(),
		PreOrder:   tree.PreOrder(),
		PostOrder:  tree.PostOrder(),
		LevelOrder: tree.LevelOrder(),
	}

	if m.json {
		return printJson(m.w, result)
	}

	fmt.Fprintf(m.w, "height:     %d\n", result.Height)
	fmt.Fprintf(m.w, "count:      %d\n", result.Count)
	fmt.Fprintf(m.w, "inorder:    %s\n", joinValues(result.InOrder))
	fmt.Fprintf(m.w, "preorder:   %s\n", joinValues(result.PreOrder))
	fmt.Fprintf(m.w, "postorder:  %s\n", joinValues(result.PostOrder))
	fmt.Fprintf(m.w, "levelorder: %s\n", joinValues(result.LevelOrder))
	return nil
}

func runKinds(c *cli.Context) error {
	kinds := script.Kinds()
	if c.GlobalBool("json") {
		return printJson(c.App.Writer, kinds)
	}
	fmt.Fprintf(c.App.Writer, "%s\n", strings.Join(kinds, "\n"))
	return nil
}

func joinValues(values []int) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, "\t")
}

func printJson(handle io.Writer, message interface{}) error {
	enc := json.NewEncoder(handle)
	enc.SetIndent("", "  ")
	return enc.Encode(message)
}
