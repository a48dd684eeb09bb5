// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/structures/fault"
	"github.com/bitmark-inc/structures/script"
)

// run each configured demo in turn writing its output to out
func runDemos(cfg *Configuration, out io.Writer, verbose bool) error {
	log := logger.New("script")

	for i, demo := range cfg.Demos {
		target, err := script.NewTarget(demo.Kind)
		if nil != err {
			return err
		}

		r, err := script.New(demo.Name, target, log)
		if nil != err {
			return err
		}
		r.SetOutput(out)

		fmt.Fprintf(out, "\n== %d: %s (%s) ==\n", i+1, demo.Name, demo.Kind)
		result, err := r.Run(demo.Steps)
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(out, "inserted: %d  duplicates: %d  deleted: %d  missing: %d  found: %d  not found: %d\n",
				result.Inserted,
				result.Duplicates,
				result.Deleted,
				result.Missing,
				result.Found,
				result.NotFound,
			)
		}
		fmt.Fprintf(out, "values: %v\n", result.Values)

		if !cfg.Verify {
			continue
		}
		if err := script.Verify(target); nil != err {
			log.Criticalf("%s: verification error: %s", demo.Name, err)
			return fault.ErrVerificationFailed
		}
		log.Infof("%s: verified", demo.Name)
	}
	return nil
}
