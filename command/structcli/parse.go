// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/structures/fault"
	"github.com/bitmark-inc/structures/script"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidValue = fault.InvalidError("invalid integer value")
	ErrMissingSteps = fault.InvalidError("no steps given")
)

// convert each "action=v1,v2" argument into a step
func parseSteps(arguments []string) ([]script.Step, error) {
	if 0 == len(arguments) {
		return nil, ErrMissingSteps
	}

	steps := make([]script.Step, 0, len(arguments))
	for _, a := range arguments {
		s := strings.SplitN(a, "=", 2)

		step := script.Step{
			Action: strings.ToLower(strings.TrimSpace(s[0])),
		}
		switch step.Action {
		case script.ActionInsert, script.ActionDelete, script.ActionSearch, script.ActionPrint:
		default:
			return nil, fault.ErrUnknownAction
		}

		if 2 == len(s) && "" != s[1] {
			values, err := parseValues(strings.Split(s[1], ","))
			if nil != err {
				return nil, err
			}
			step.Values = values
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func parseValues(arguments []string) ([]int, error) {
	values := make([]int, 0, len(arguments))
	for _, a := range arguments {
		v, err := strconv.Atoi(strings.TrimSpace(a))
		if nil != err {
			return nil, ErrInvalidValue
		}
		values = append(values, v)
	}
	return values, nil
}
