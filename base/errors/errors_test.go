// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func parse(s string) (int, error) {
	if s == "" {
		return 0, New("empty input")
	}
	return len(s), nil
}

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("boom")
	assert.Equal(t, err, Log(err))
	assert.Equal(t, 3, Log1(parse("abc")))
	assert.Equal(t, 0, Log1(parse("")))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("boom")) })
	assert.Equal(t, 2, Must1(parse("ab")))
	assert.Panics(t, func() { Must1(parse("")) })
	assert.Equal(t, 0, Ignore1(parse("")))
}

func TestCallerInfo(t *testing.T) {
	info := func() string { return CallerInfo() }()
	assert.True(t, strings.Contains(info, "errors_test.go"), info)
}
