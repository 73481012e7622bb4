// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"

	"cogentcore.org/scroll/base/errors"
	"cogentcore.org/scroll/base/tomlx"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// File is the path of the settings file relative to the
// user configuration directory.
var File = filepath.Join("scroll", "settings.toml")

// Filename returns the full path at which the settings are stored
// by default: ~/.config/scroll/settings.toml.
func Filename() string {
	home := errors.Log1(homedir.Dir())
	return filepath.Join(home, ".config", File)
}

// Open opens the given settings from the given TOML file.
// Fields that are not present in the file keep their current value.
func (s *Scroll) Open(filename string) error {
	return tomlx.Open(s, filename)
}

// Save saves the given settings to the given TOML file.
func (s *Scroll) Save(filename string) error {
	return tomlx.Save(s, filename)
}

// Load sets the defaults of, and then opens, the settings from
// the given file. A missing file is not an error: the settings
// then simply keep their default values.
func Load(filename string) (*Scroll, error) {
	s := New()
	err := s.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	return s, err
}

// Watcher reloads the settings from a file whenever it changes.
// The containing directory is watched so that editors replacing the
// file are handled as well.
type Watcher struct {
	filename string
	w        *fsnotify.Watcher
}

// NewWatcher starts watching the given settings file. Changes are
// delivered by [Watcher.Run].
func NewWatcher(filename string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(filename)); err != nil {
		w.Close()
		return nil, err
	}
	return &Watcher{filename: filename, w: w}, nil
}

// Run calls apply with the freshly loaded settings after every change
// of the file, until ctx is done, and then closes the watcher. apply is
// called on the goroutine of Run; a scene hands the settings over to its
// own goroutine with its Post method.
func (wt *Watcher) Run(ctx context.Context, apply func(s *Scroll)) error {
	defer wt.w.Close()
	base := filepath.Base(wt.filename)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-wt.w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			s, err := Load(wt.filename)
			if err != nil {
				slog.Error("settings: reload failed", "file", wt.filename, "err", err)
				continue
			}
			apply(s)
		case err, ok := <-wt.w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
