// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"io"
	"io/ioutil"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/structures/fault"
)

// step actions
const (
	ActionInsert = "insert"
	ActionDelete = "delete"
	ActionSearch = "search"
	ActionPrint  = "print"
)

// Step - one action applied to each of its values in order
type Step struct {
	Action string `gluamapper:"action" json:"action"`
	Values []int  `gluamapper:"values" json:"values"`
}

// Result - tally of a complete run
type Result struct {
	Inserted   int   `json:"inserted"`
	Duplicates int   `json:"duplicates"`
	Deleted    int   `json:"deleted"`
	Missing    int   `json:"missing"`
	Found      int   `json:"found"`
	NotFound   int   `json:"not_found"`
	Values     []int `json:"values"`
}

// Runner - applies steps to a single target
type Runner struct {
	name   string
	target Target
	log    *logger.L
	out    io.Writer
}

// New - create a runner, print steps are discarded until SetOutput
// is called
func New(name string, target Target, log *logger.L) (*Runner, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	return &Runner{
		name:   name,
		target: target,
		log:    log,
		out:    ioutil.Discard,
	}, nil
}

// SetOutput - destination for print steps
func (r *Runner) SetOutput(w io.Writer) {
	r.out = w
}

// Target - the structure being driven
func (r *Runner) Target() Target {
	return r.target
}

// Run - apply all steps, stopping at the first unknown action
//
// the result always holds the values present when the run stopped
func (r *Runner) Run(steps []Step) (Result, error) {
	log := r.log
	result := Result{}

	log.Infof("%s: run %d steps", r.name, len(steps))

	for i, step := range steps {
		switch strings.ToLower(step.Action) {

		case ActionInsert:
			for _, v := range step.Values {
				if r.target.Insert(v) {
					result.Inserted += 1
					log.Debugf("%s: step[%d] insert: %d", r.name, i, v)
				} else {
					result.Duplicates += 1
					log.Debugf("%s: step[%d] insert: %d  duplicate ignored", r.name, i, v)
				}
			}

		case ActionDelete:
			for _, v := range step.Values {
				if r.target.Delete(v) {
					result.Deleted += 1
					log.Debugf("%s: step[%d] delete: %d", r.name, i, v)
				} else {
					result.Missing += 1
					log.Debugf("%s: step[%d] delete: %d  not present", r.name, i, v)
				}
			}

		case ActionSearch:
			for _, v := range step.Values {
				found := r.target.Contains(v)
				if found {
					result.Found += 1
				} else {
					result.NotFound += 1
				}
				log.Debugf("%s: step[%d] search: %d  found: %t", r.name, i, v, found)
			}

		case ActionPrint:
			log.Debugf("%s: step[%d] print", r.name, i)
			r.target.Render(r.out)

		default:
			log.Errorf("%s: step[%d] unknown action: %q", r.name, i, step.Action)
			result.Values = r.target.Values()
			return result, fault.ErrUnknownAction
		}
	}

	result.Values = r.target.Values()

	log.Infof("%s: inserted: %d  duplicates: %d  deleted: %d  missing: %d  found: %d  not found: %d",
		r.name,
		result.Inserted,
		result.Duplicates,
		result.Deleted,
		result.Missing,
		result.Found,
		result.NotFound,
	)
	log.Debugf("%s: values: %v", r.name, result.Values)

	return result, nil
}
