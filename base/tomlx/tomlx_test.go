// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testKnobs struct {
	Name       string
	Multiplier float32
	Bounce     bool
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "knobs.toml")
	in := &testKnobs{Name: "wheel", Multiplier: 5, Bounce: true}
	assert.NoError(t, Save(in, fn))
	out := &testKnobs{}
	assert.NoError(t, Open(out, fn))
	assert.Equal(t, in, out)
}

func TestOpenFilesOverride(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.toml")
	b := filepath.Join(dir, "b.toml")
	assert.NoError(t, Save(&testKnobs{Name: "a", Multiplier: 1}, a))
	assert.NoError(t, Save(&testKnobs{Name: "b", Multiplier: 2}, b))
	out := &testKnobs{}
	assert.NoError(t, OpenFiles(out, a, b))
	assert.Equal(t, "b", out.Name)
	assert.Equal(t, float32(2), out.Multiplier)

	assert.Error(t, OpenFiles(out, filepath.Join(dir, "missing.toml")))
}

func TestBytes(t *testing.T) {
	b, err := WriteBytes(&testKnobs{Name: "x", Multiplier: 3})
	assert.NoError(t, err)
	out := &testKnobs{}
	assert.NoError(t, ReadBytes(out, b))
	assert.Equal(t, "x", out.Name)
}
