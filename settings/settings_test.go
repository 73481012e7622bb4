// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	s := New()
	assert.Equal(t, 425*time.Millisecond, s.LongPressInterval)
	assert.Equal(t, 350*time.Millisecond, s.TapInterval)
	assert.Equal(t, float32(8), s.TapDistance)
	assert.Equal(t, float32(5), s.WheelMultiplier)
	assert.Equal(t, float32(5000), s.DecelerationA)
	assert.Equal(t, float32(25000), s.BounceMinA)
	assert.Equal(t, float32(50), s.OverscrollDivisor)
	assert.Equal(t, float32(64), s.OverscrollCapMax)
	assert.Equal(t, 2*time.Second, s.IndicatorHold)
	assert.Equal(t, float32(20), s.IndicatorMinLen)
	assert.Equal(t, 300*time.Millisecond, s.FlexAutoCompleteDurMax)
	assert.Equal(t, float32(8), s.SafeTriggerDefault)
}

func TestClone(t *testing.T) {
	s := New()
	c := s.Clone()
	assert.Equal(t, s, c)
	c.WheelMultiplier = 2
	assert.Equal(t, float32(5), s.WheelMultiplier)
}

func TestLerp(t *testing.T) {
	assert.InDelta(t, 0.09, Lerp(0, 300*time.Millisecond, 0.3), 1e-6)
	assert.InDelta(t, 0.3, Lerp(0, 300*time.Millisecond, 2), 1e-6)
	assert.InDelta(t, 0.15, Lerp(150*time.Millisecond, 450*time.Millisecond, -1), 1e-6)
}

func TestLoadSave(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.toml")
	s, err := Load(fn)
	assert.NoError(t, err)
	assert.Equal(t, New(), s)

	s.WheelMultiplier = 3
	s.IndicatorHold = time.Second
	assert.NoError(t, s.Save(fn))

	l, err := Load(fn)
	assert.NoError(t, err)
	assert.Equal(t, float32(3), l.WheelMultiplier)
	assert.Equal(t, time.Second, l.IndicatorHold)
	assert.Equal(t, float32(5000), l.DecelerationA)
}

func TestFilename(t *testing.T) {
	assert.True(t, strings.HasSuffix(Filename(), filepath.Join(".config", "scroll", "settings.toml")))
}

func TestWatch(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.toml")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	got := make(chan *Scroll, 64)
	w, err := NewWatcher(fn)
	require.NoError(t, err)
	ran := make(chan error, 1)
	go func() { ran <- w.Run(ctx, func(s *Scroll) { got <- s }) }()

	s := New()
	s.TapDistance = 12
	assert.NoError(t, s.Save(fn))
	timeout := time.After(5 * time.Second)
	for {
		select {
		case r := <-got:
			if r.TapDistance == 12 {
				_ = os.Remove(fn)
				cancel()
				assert.NoError(t, <-ran)
				return
			}
		case <-timeout:
			t.Fatal("settings were not reloaded")
		}
	}
}
