// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/structures/script"
)

type metadata struct {
	kind    string
	json    bool
	verbose bool
	log     *logger.L
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "structcli"
	app.Usage = "drive an ordered structure from the command line"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e
	app.Metadata = map[string]interface{}{}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "json, j",
			Usage: " output results as JSON",
		},
		cli.StringFlag{
			Name:  "kind, k",
			Value: script.KindAVL,
			Usage: " structure `KIND` [avl|bst|singly|doubly|singly-circular|doubly-circular]",
		},
		cli.StringFlag{
			Name:  "log-directory, l",
			Value: filepath.Join(os.TempDir(), "structcli"),
			Usage: " write the log files to `DIR`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "run",
			Usage:     "apply steps to an empty structure",
			ArgsUsage: "ACTION[=V1,V2,...]...\n   actions: insert, delete, search, print",
			Flags:     []cli.Flag{},
			Action:    runSteps,
		},
		{
			Name:      "traverse",
			Usage:     "insert values into a binary search tree and list its traversals",
			ArgsUsage: "V1 V2 ...",
			Flags:     []cli.Flag{},
			Action:    runTraverse,
		},
		{
			Name:      "kinds",
			Usage:     "list the structure kinds",
			ArgsUsage: " ",
			Flags:     []cli.Flag{},
			Action:    runKinds,
		},
		{
			Name:      "version",
			Usage:     "display structcli version",
			ArgsUsage: " ",
			Flags:     []cli.Flag{},
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// start logging
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress logging for certain commands
		command := c.Args().Get(0)
		if "version" == command || "" == command || "help" == command || "h" == command {
			return nil
		}

		directory := c.GlobalString("log-directory")
		if err := os.MkdirAll(directory, 0700); nil != err {
			return err
		}

		level := "critical"
		if verbose {
			level = "debug"
			fmt.Fprintf(e, "log directory: %q\n", directory)
		}
		logging := logger.Configuration{
			Directory: directory,
			File:      "structcli.log",
			Size:      1048576,
			Count:     10,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: level,
			},
		}
		if err := logger.Initialise(logging); nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			kind:    c.GlobalString("kind"),
			json:    c.GlobalBool("json"),
			verbose: verbose,
			log:     logger.New("structcli"),
			e:       e,
			w:       w,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); ok {
			logger.Finalise()
			delete(c.App.Metadata, "config")
		}
		return nil
	}

	return app
}
