// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/structures/fault"
	"github.com/bitmark-inc/structures/script"
)

func TestParseSteps(t *testing.T) {
	steps, err := parseSteps([]string{"insert=10,20, 30", "DELETE=20", "search=", "print"})
	require.NoError(t, err)

	expected := []script.Step{
		{Action: "insert", Values: []int{10, 20, 30}},
		{Action: "delete", Values: []int{20}},
		{Action: "search"},
		{Action: "print"},
	}
	assert.Equal(t, expected, steps)
}

func TestParseStepsErrors(t *testing.T) {
	_, err := parseSteps(nil)
	assert.Equal(t, ErrMissingSteps, err, "no steps")

	_, err = parseSteps([]string{"sort=1,2"})
	assert.Equal(t, fault.ErrUnknownAction, err, "bad action")

	_, err = parseSteps([]string{"insert=1,x"})
	assert.Equal(t, ErrInvalidValue, err, "bad value")
	assert.True(t, fault.IsErrInvalid(err))
}

func TestParseValues(t *testing.T) {
	values, err := parseValues([]string{"3", " -1", "7 "})
	require.NoError(t, err)
	assert.Equal(t, []int{3, -1, 7}, values)

	values, err = parseValues([]string{})
	require.NoError(t, err)
	assert.Empty(t, values)
}
